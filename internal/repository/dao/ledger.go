package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStudent struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID   uuid.UUID `gorm:"type:uuid;primaryKey"`

	IsPresent   bool `gorm:"not null"`
	Points      int  `gorm:"not null"`
	Description *string

	UpdatedAt time.Time `gorm:"not null"`
}

func (EventStudent) TableName() string {
	return "event_students"
}

type StudentTransaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Points    int       `gorm:"not null"`
	Comment   *string
	EventID   *uuid.UUID `gorm:"type:uuid;index"`
	ProfileID uuid.UUID  `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type ActivityGroup struct {
	ActivityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID    uuid.UUID `gorm:"type:uuid;primaryKey"`

	Points int `gorm:"not null"`

	UpdatedAt time.Time `gorm:"not null"`
}

func (ActivityGroup) TableName() string {
	return "activity_groups"
}

type GroupTransaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	GroupID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityID *uuid.UUID `gorm:"type:uuid;index"`
	Points     int       `gorm:"not null"`
	Comment    *string
	ProfileID  uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

// SetEventStudentPoints saves one attendance result. The event_students row
// is updated in place (inserted if absent) and the event-tied ledger row is
// replaced, all in one transaction: resaving corrects the ledger instead of
// compounding it, and a failure leaves neither side half-applied.
func (d *LedgerDAO) SetEventStudentPoints(ctx context.Context, record EventStudent, comment *string, profileID uuid.UUID) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing EventStudent
		err := tx.Where("student_id = ? AND event_id = ?", record.StudentID, record.EventID).
			First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"is_present":  record.IsPresent,
				"points":      record.Points,
				"description": record.Description,
			}
			if err = tx.Model(&EventStudent{}).
				Where("student_id = ? AND event_id = ?", record.StudentID, record.EventID).
				Updates(updates).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err = tx.Create(&record).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err = tx.Where("student_id = ? AND event_id = ?", record.StudentID, record.EventID).
			Delete(&StudentTransaction{}).Error; err != nil {
			return err
		}

		return tx.Create(&StudentTransaction{
			ID:        uuid.New(),
			StudentID: record.StudentID,
			Points:    record.Points,
			Comment:   comment,
			EventID:   &record.EventID,
			ProfileID: profileID,
		}).Error
	})
}

// SetActivityGroupPoints is the group-side twin of SetEventStudentPoints,
// keyed on (activity, group).
func (d *LedgerDAO) SetActivityGroupPoints(ctx context.Context, record ActivityGroup, comment *string, profileID uuid.UUID) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing ActivityGroup
		err := tx.Where("activity_id = ? AND group_id = ?", record.ActivityID, record.GroupID).
			First(&existing).Error
		switch {
		case err == nil:
			if err = tx.Model(&ActivityGroup{}).
				Where("activity_id = ? AND group_id = ?", record.ActivityID, record.GroupID).
				Update("points", record.Points).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err = tx.Create(&record).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err = tx.Where("group_id = ? AND activity_id = ?", record.GroupID, record.ActivityID).
			Delete(&GroupTransaction{}).Error; err != nil {
			return err
		}

		return tx.Create(&GroupTransaction{
			ID:         uuid.New(),
			GroupID:    record.GroupID,
			ActivityID: &record.ActivityID,
			Points:     record.Points,
			Comment:    comment,
			ProfileID:  profileID,
		}).Error
	})
}

// InsertStudentTransaction appends a manual ledger row. Manual rows carry no
// event and are never deduplicated.
func (d *LedgerDAO) InsertStudentTransaction(ctx context.Context, transaction StudentTransaction) (StudentTransaction, error) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&transaction)
	if result.Error != nil {
		return StudentTransaction{}, result.Error
	}

	return transaction, nil
}

func (d *LedgerDAO) SumStudentPoints(ctx context.Context, studentID uuid.UUID) (int, error) {
	var balance int

	result := d.db.WithContext(ctx).
		Model(&StudentTransaction{}).
		Select("COALESCE(SUM(points), 0)").
		Where("student_id = ?", studentID).
		Scan(&balance)
	if result.Error != nil {
		return 0, result.Error
	}

	return balance, nil
}

func (d *LedgerDAO) FindStudentTransactions(ctx context.Context, studentID uuid.UUID) ([]StudentTransaction, error) {
	var transactions []StudentTransaction

	result := d.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

func (d *LedgerDAO) FindEventStudentsByEventID(ctx context.Context, eventID uuid.UUID) ([]EventStudent, error) {
	var records []EventStudent

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *LedgerDAO) FindEventStudentsByStudentID(ctx context.Context, studentID uuid.UUID) ([]EventStudent, error) {
	var records []EventStudent

	result := d.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// FindEventStudentsByEventTypeID fetches the attendance rows of every event
// of one type in a space.
func (d *LedgerDAO) FindEventStudentsByEventTypeID(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]EventStudent, error) {
	var records []EventStudent

	result := d.db.WithContext(ctx).
		Joins("JOIN events ON events.id = event_students.event_id").
		Where("events.space_id = ? AND events.event_type_id = ?", spaceID, eventTypeID).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *LedgerDAO) FindEventStudent(ctx context.Context, studentID, eventID uuid.UUID) (EventStudent, bool, error) {
	var record EventStudent

	err := d.db.WithContext(ctx).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventStudent{}, false, nil
		}

		return EventStudent{}, false, err
	}

	return record, true, nil
}
