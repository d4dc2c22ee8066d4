package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

type pairKey struct {
	first  uuid.UUID
	second uuid.UUID
}

// fakeLedger mirrors the transactional ledger semantics in memory: attendance
// and activity scores are set-per-pair, manual transactions append.
type fakeLedger struct {
	attendance     map[pairKey]domain.EventStudent
	activityScores map[pairKey]domain.ActivityGroup
	transactions   []domain.StudentTransaction
	groupRows      []domain.GroupTransaction
	eventTypes     map[uuid.UUID]uuid.UUID // eventID -> eventTypeID
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		attendance:     make(map[pairKey]domain.EventStudent),
		activityScores: make(map[pairKey]domain.ActivityGroup),
		eventTypes:     make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeLedger) SetEventStudentPoints(_ context.Context, record domain.EventStudent, comment *string, profileID uuid.UUID) error {
	key := pairKey{record.StudentID, record.EventID}
	record.UpdatedAt = time.Now()
	f.attendance[key] = record

	kept := f.transactions[:0]
	for _, tx := range f.transactions {
		if tx.StudentID == record.StudentID && tx.EventID != nil && *tx.EventID == record.EventID {
			continue
		}
		kept = append(kept, tx)
	}
	f.transactions = kept

	eventID := record.EventID
	f.transactions = append(f.transactions, domain.StudentTransaction{
		ID:        uuid.New(),
		StudentID: record.StudentID,
		Points:    record.Points,
		Comment:   comment,
		EventID:   &eventID,
		ProfileID: profileID,
		CreatedAt: time.Now(),
	})

	return nil
}

func (f *fakeLedger) SetActivityGroupPoints(_ context.Context, record domain.ActivityGroup, comment *string, profileID uuid.UUID) error {
	key := pairKey{record.ActivityID, record.GroupID}
	record.UpdatedAt = time.Now()
	f.activityScores[key] = record

	kept := f.groupRows[:0]
	for _, tx := range f.groupRows {
		if tx.GroupID == record.GroupID && tx.ActivityID != nil && *tx.ActivityID == record.ActivityID {
			continue
		}
		kept = append(kept, tx)
	}
	f.groupRows = kept

	activityID := record.ActivityID
	f.groupRows = append(f.groupRows, domain.GroupTransaction{
		ID:         uuid.New(),
		GroupID:    record.GroupID,
		ActivityID: &activityID,
		Points:     record.Points,
		Comment:    comment,
		ProfileID:  profileID,
		CreatedAt:  time.Now(),
	})

	return nil
}

func (f *fakeLedger) AppendTransaction(_ context.Context, transaction domain.StudentTransaction) (domain.StudentTransaction, error) {
	transaction.ID = uuid.New()
	transaction.CreatedAt = time.Now()
	f.transactions = append(f.transactions, transaction)

	return transaction, nil
}

func (f *fakeLedger) GetBalance(_ context.Context, studentID uuid.UUID) (int, error) {
	balance := 0
	for _, tx := range f.transactions {
		if tx.StudentID == studentID {
			balance += tx.Points
		}
	}

	return balance, nil
}

func (f *fakeLedger) FindTransactions(_ context.Context, studentID uuid.UUID) ([]domain.StudentTransaction, error) {
	var found []domain.StudentTransaction
	for _, tx := range f.transactions {
		if tx.StudentID == studentID {
			found = append(found, tx)
		}
	}

	return found, nil
}

func (f *fakeLedger) FindAttendanceByEvent(_ context.Context, eventID uuid.UUID) ([]domain.EventStudent, error) {
	var found []domain.EventStudent
	for key, record := range f.attendance {
		if key.second == eventID {
			found = append(found, record)
		}
	}

	return found, nil
}

func (f *fakeLedger) FindAttendanceByStudent(_ context.Context, studentID uuid.UUID) ([]domain.EventStudent, error) {
	var found []domain.EventStudent
	for key, record := range f.attendance {
		if key.first == studentID {
			found = append(found, record)
		}
	}

	return found, nil
}

func (f *fakeLedger) FindAttendanceByEventType(_ context.Context, _, eventTypeID uuid.UUID) ([]domain.EventStudent, error) {
	var found []domain.EventStudent
	for key, record := range f.attendance {
		if f.eventTypes[key.second] == eventTypeID {
			found = append(found, record)
		}
	}

	return found, nil
}

func (f *fakeLedger) FindAttendance(_ context.Context, studentID, eventID uuid.UUID) (domain.EventStudent, bool, error) {
	record, ok := f.attendance[pairKey{studentID, eventID}]

	return record, ok, nil
}

type fakeEventRepo struct {
	events map[uuid.UUID]domain.Event
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{events: make(map[uuid.UUID]domain.Event)}
	for _, e := range events {
		f.events[e.ID] = e
	}

	return f
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uuid.New()
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeEventRepo) FindBySpaceID(_ context.Context, spaceID uuid.UUID) ([]domain.Event, error) {
	var found []domain.Event
	for _, e := range f.events {
		if e.SpaceID == spaceID {
			found = append(found, e)
		}
	}

	return found, nil
}

func (f *fakeEventRepo) FindByEventTypeID(_ context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.Event, error) {
	var found []domain.Event
	for _, e := range f.events {
		if e.SpaceID == spaceID && e.EventTypeID == eventTypeID {
			found = append(found, e)
		}
	}

	return found, nil
}

func (f *fakeEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	if _, ok := f.events[event.ID]; !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.events, id)

	return nil
}

type fakeEventTypeRepo struct {
	eventTypes map[uuid.UUID]domain.EventType
}

func newFakeEventTypeRepo(eventTypes ...domain.EventType) *fakeEventTypeRepo {
	f := &fakeEventTypeRepo{eventTypes: make(map[uuid.UUID]domain.EventType)}
	for _, et := range eventTypes {
		f.eventTypes[et.ID] = et
	}

	return f
}

func (f *fakeEventTypeRepo) Create(_ context.Context, eventType domain.EventType) (domain.EventType, error) {
	eventType.ID = uuid.New()
	f.eventTypes[eventType.ID] = eventType

	return eventType, nil
}

func (f *fakeEventTypeRepo) FindByID(_ context.Context, id uuid.UUID) (domain.EventType, error) {
	eventType, ok := f.eventTypes[id]
	if !ok {
		return domain.EventType{}, repository.ErrEventTypeNotFound
	}

	return eventType, nil
}

func (f *fakeEventTypeRepo) FindBySpaceID(_ context.Context, spaceID uuid.UUID) ([]domain.EventType, error) {
	var found []domain.EventType
	for _, et := range f.eventTypes {
		if et.SpaceID == spaceID {
			found = append(found, et)
		}
	}

	return found, nil
}

func (f *fakeEventTypeRepo) Update(_ context.Context, eventType domain.EventType) (domain.EventType, error) {
	if _, ok := f.eventTypes[eventType.ID]; !ok {
		return domain.EventType{}, repository.ErrEventTypeNotFound
	}
	f.eventTypes[eventType.ID] = eventType

	return eventType, nil
}

func (f *fakeEventTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.eventTypes[id]; !ok {
		return repository.ErrEventTypeNotFound
	}
	delete(f.eventTypes, id)

	return nil
}

type fakeGroupRepo struct {
	groups   map[uuid.UUID]domain.Group
	students map[uuid.UUID]int // groupID -> student count
}

func newFakeGroupRepo(groups ...domain.Group) *fakeGroupRepo {
	f := &fakeGroupRepo{
		groups:   make(map[uuid.UUID]domain.Group),
		students: make(map[uuid.UUID]int),
	}
	for _, g := range groups {
		f.groups[g.ID] = g
	}

	return f
}

func (f *fakeGroupRepo) Create(_ context.Context, group domain.Group) (domain.Group, error) {
	group.ID = uuid.New()
	f.groups[group.ID] = group

	return group, nil
}

func (f *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return domain.Group{}, repository.ErrGroupNotFound
	}

	return group, nil
}

func (f *fakeGroupRepo) FindBySpaceID(_ context.Context, spaceID uuid.UUID) ([]domain.Group, error) {
	var found []domain.Group
	for _, g := range f.groups {
		if g.SpaceID == spaceID {
			found = append(found, g)
		}
	}

	return found, nil
}

func (f *fakeGroupRepo) Update(_ context.Context, group domain.Group) (domain.Group, error) {
	if _, ok := f.groups[group.ID]; !ok {
		return domain.Group{}, repository.ErrGroupNotFound
	}
	f.groups[group.ID] = group

	return group, nil
}

func (f *fakeGroupRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.groups[id]; !ok {
		return repository.ErrGroupNotFound
	}
	delete(f.groups, id)

	return nil
}

func (f *fakeGroupRepo) CountChildren(_ context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, g := range f.groups {
		if g.ParentID != nil && *g.ParentID == id {
			count++
		}
	}

	return count, nil
}

func (f *fakeGroupRepo) CountStudents(_ context.Context, id uuid.UUID) (int64, error) {
	return int64(f.students[id]), nil
}

func (f *fakeGroupRepo) FindWithPointsBySpaceID(_ context.Context, spaceID uuid.UUID) ([]domain.GroupPoints, error) {
	var found []domain.GroupPoints
	for _, g := range f.groups {
		if g.SpaceID == spaceID {
			found = append(found, domain.GroupPoints{GroupID: g.ID, GroupName: g.Name})
		}
	}

	return found, nil
}
