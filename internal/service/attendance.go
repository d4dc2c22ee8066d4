package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
)

type LedgerRepository interface {
	SetEventStudentPoints(ctx context.Context, record domain.EventStudent, comment *string, profileID uuid.UUID) error
	SetActivityGroupPoints(ctx context.Context, record domain.ActivityGroup, comment *string, profileID uuid.UUID) error
	AppendTransaction(ctx context.Context, transaction domain.StudentTransaction) (domain.StudentTransaction, error)
	GetBalance(ctx context.Context, studentID uuid.UUID) (int, error)
	FindTransactions(ctx context.Context, studentID uuid.UUID) ([]domain.StudentTransaction, error)
	FindAttendanceByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.EventStudent, error)
	FindAttendanceByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.EventStudent, error)
	FindAttendanceByEventType(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.EventStudent, error)
	FindAttendance(ctx context.Context, studentID, eventID uuid.UUID) (domain.EventStudent, bool, error)
}

// AttendanceService runs the scoring engine on top of the ledger. Saving
// attendance computes the point delta and stores it idempotently per
// (student, event).
type AttendanceService struct {
	ledger        LedgerRepository
	eventRepo     EventRepository
	eventTypeRepo EventTypeRepository
}

func NewAttendanceService(ledger LedgerRepository, eventRepo EventRepository, eventTypeRepo EventTypeRepository) *AttendanceService {
	return &AttendanceService{
		ledger:        ledger,
		eventRepo:     eventRepo,
		eventTypeRepo: eventTypeRepo,
	}
}

// SaveAttendance scores and persists one attendance save. The previously
// stored selection is merged in so explicit zero resets survive; an
// unresolvable event or event type aborts the whole save, while stale
// selection categories are silently skipped by the scoring rules.
func (s *AttendanceService) SaveAttendance(ctx context.Context, spaceID, studentID, eventID uuid.UUID, isPresent bool, selection domain.Selection, profileID uuid.UUID) (domain.EventStudent, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return domain.EventStudent{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}
	if event.SpaceID != spaceID {
		return domain.EventStudent{}, ErrEventNotFound
	}

	eventType, err := s.eventTypeRepo.FindByID(ctx, event.EventTypeID)
	if err != nil {
		return domain.EventStudent{}, fmt.Errorf("s.eventTypeRepo.FindByID -> %w", err)
	}

	var original domain.Selection
	existing, found, err := s.ledger.FindAttendance(ctx, studentID, eventID)
	if err != nil {
		return domain.EventStudent{}, fmt.Errorf("s.ledger.FindAttendance -> %w", err)
	}
	if found {
		original = domain.ParseSelection(existing.Description)
	} else {
		original = domain.Selection{}
	}

	score, err := domain.ComputeAttendance(eventType, isPresent, original, selection)
	if err != nil {
		return domain.EventStudent{}, fmt.Errorf("domain.ComputeAttendance -> %w", err)
	}

	record := domain.EventStudent{
		StudentID:   studentID,
		EventID:     eventID,
		IsPresent:   isPresent,
		Points:      score.Points,
		Description: score.Description,
	}

	comment := fmt.Sprintf("Attendance: %v", event.Name)
	if err = s.ledger.SetEventStudentPoints(ctx, record, &comment, profileID); err != nil {
		return domain.EventStudent{}, fmt.Errorf("s.ledger.SetEventStudentPoints -> %w", err)
	}

	return record, nil
}

func (s *AttendanceService) GetEventAttendance(ctx context.Context, spaceID, eventID uuid.UUID) ([]domain.EventStudent, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}
	if event.SpaceID != spaceID {
		return nil, ErrEventNotFound
	}

	records, err := s.ledger.FindAttendanceByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.ledger.FindAttendanceByEvent -> %w", err)
	}

	return records, nil
}

func (s *AttendanceService) GetStudentAttendance(ctx context.Context, studentID uuid.UUID) ([]domain.EventStudent, error) {
	records, err := s.ledger.FindAttendanceByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.ledger.FindAttendanceByStudent -> %w", err)
	}

	return records, nil
}

func (s *AttendanceService) GetEventTypeAttendance(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.EventStudent, error) {
	records, err := s.ledger.FindAttendanceByEventType(ctx, spaceID, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("s.ledger.FindAttendanceByEventType -> %w", err)
	}

	return records, nil
}
