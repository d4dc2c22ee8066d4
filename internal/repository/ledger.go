package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

type LedgerDAO interface {
	SetEventStudentPoints(ctx context.Context, record dao.EventStudent, comment *string, profileID uuid.UUID) error
	SetActivityGroupPoints(ctx context.Context, record dao.ActivityGroup, comment *string, profileID uuid.UUID) error
	InsertStudentTransaction(ctx context.Context, transaction dao.StudentTransaction) (dao.StudentTransaction, error)
	SumStudentPoints(ctx context.Context, studentID uuid.UUID) (int, error)
	FindStudentTransactions(ctx context.Context, studentID uuid.UUID) ([]dao.StudentTransaction, error)
	FindEventStudentsByEventID(ctx context.Context, eventID uuid.UUID) ([]dao.EventStudent, error)
	FindEventStudentsByStudentID(ctx context.Context, studentID uuid.UUID) ([]dao.EventStudent, error)
	FindEventStudentsByEventTypeID(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]dao.EventStudent, error)
	FindEventStudent(ctx context.Context, studentID, eventID uuid.UUID) (dao.EventStudent, bool, error)
}

// LedgerRepository owns both sides of the points ledger: student
// transactions with their attendance records, and group transactions with
// their activity scores.
type LedgerRepository struct {
	dao LedgerDAO
}

func NewLedgerRepository(dao LedgerDAO) *LedgerRepository {
	return &LedgerRepository{
		dao: dao,
	}
}

// SetEventStudentPoints replaces the stored result for (student, event).
// Calling it twice leaves the balance reflecting only the latest call.
func (r *LedgerRepository) SetEventStudentPoints(ctx context.Context, record domain.EventStudent, comment *string, profileID uuid.UUID) error {
	err := r.dao.SetEventStudentPoints(ctx, dao.EventStudent{
		StudentID:   record.StudentID,
		EventID:     record.EventID,
		IsPresent:   record.IsPresent,
		Points:      record.Points,
		Description: record.Description,
	}, comment, profileID)
	if err != nil {
		return fmt.Errorf("r.dao.SetEventStudentPoints -> %w", err)
	}

	return nil
}

// SetActivityGroupPoints replaces the stored score for (activity, group).
func (r *LedgerRepository) SetActivityGroupPoints(ctx context.Context, record domain.ActivityGroup, comment *string, profileID uuid.UUID) error {
	err := r.dao.SetActivityGroupPoints(ctx, dao.ActivityGroup{
		ActivityID: record.ActivityID,
		GroupID:    record.GroupID,
		Points:     record.Points,
	}, comment, profileID)
	if err != nil {
		return fmt.Errorf("r.dao.SetActivityGroupPoints -> %w", err)
	}

	return nil
}

// AppendTransaction inserts a manual ledger row; repeated calls stack.
func (r *LedgerRepository) AppendTransaction(ctx context.Context, transaction domain.StudentTransaction) (domain.StudentTransaction, error) {
	created, err := r.dao.InsertStudentTransaction(ctx, dao.StudentTransaction{
		StudentID: transaction.StudentID,
		Points:    transaction.Points,
		Comment:   transaction.Comment,
		ProfileID: transaction.ProfileID,
	})
	if err != nil {
		return domain.StudentTransaction{}, fmt.Errorf("r.dao.InsertStudentTransaction -> %w", err)
	}

	return r.transactionDAOToDomain(created), nil
}

func (r *LedgerRepository) GetBalance(ctx context.Context, studentID uuid.UUID) (int, error) {
	balance, err := r.dao.SumStudentPoints(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumStudentPoints -> %w", err)
	}

	return balance, nil
}

func (r *LedgerRepository) FindTransactions(ctx context.Context, studentID uuid.UUID) ([]domain.StudentTransaction, error) {
	found, err := r.dao.FindStudentTransactions(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStudentTransactions -> %w", err)
	}

	transactions := make([]domain.StudentTransaction, 0, len(found))
	for _, t := range found {
		transactions = append(transactions, r.transactionDAOToDomain(t))
	}

	return transactions, nil
}

func (r *LedgerRepository) FindAttendanceByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.EventStudent, error) {
	found, err := r.dao.FindEventStudentsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventStudentsByEventID -> %w", err)
	}

	return r.attendanceDAOsToDomains(found), nil
}

func (r *LedgerRepository) FindAttendanceByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.EventStudent, error) {
	found, err := r.dao.FindEventStudentsByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventStudentsByStudentID -> %w", err)
	}

	return r.attendanceDAOsToDomains(found), nil
}

func (r *LedgerRepository) FindAttendanceByEventType(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.EventStudent, error) {
	found, err := r.dao.FindEventStudentsByEventTypeID(ctx, spaceID, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventStudentsByEventTypeID -> %w", err)
	}

	return r.attendanceDAOsToDomains(found), nil
}

// FindAttendance returns the stored record for (student, event), with found
// reporting whether one exists.
func (r *LedgerRepository) FindAttendance(ctx context.Context, studentID, eventID uuid.UUID) (domain.EventStudent, bool, error) {
	record, found, err := r.dao.FindEventStudent(ctx, studentID, eventID)
	if err != nil {
		return domain.EventStudent{}, false, fmt.Errorf("r.dao.FindEventStudent -> %w", err)
	}
	if !found {
		return domain.EventStudent{}, false, nil
	}

	return r.attendanceDAOToDomain(record), true, nil
}

func (r *LedgerRepository) transactionDAOToDomain(t dao.StudentTransaction) domain.StudentTransaction {
	return domain.StudentTransaction{
		ID:        t.ID,
		StudentID: t.StudentID,
		Points:    t.Points,
		Comment:   t.Comment,
		EventID:   t.EventID,
		ProfileID: t.ProfileID,
		CreatedAt: t.CreatedAt,
	}
}

func (r *LedgerRepository) attendanceDAOToDomain(e dao.EventStudent) domain.EventStudent {
	return domain.EventStudent{
		StudentID:   e.StudentID,
		EventID:     e.EventID,
		IsPresent:   e.IsPresent,
		Points:      e.Points,
		Description: e.Description,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *LedgerRepository) attendanceDAOsToDomains(found []dao.EventStudent) []domain.EventStudent {
	records := make([]domain.EventStudent, 0, len(found))
	for _, e := range found {
		records = append(records, r.attendanceDAOToDomain(e))
	}

	return records
}
