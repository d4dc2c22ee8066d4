package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrMissingNotFound = errors.New("missing record not found")
)

type Student struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name      string `gorm:"not null"`
	DOB       string
	Gender    string
	ImagePath string
	Embedding string
	GroupID   *uuid.UUID `gorm:"type:uuid;index"`
	MentorID  *uuid.UUID `gorm:"type:uuid"`
	SpaceID   uuid.UUID  `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Missing struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	Notes     string
	Persons   string
	SpaceID   uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Missing) TableName() string {
	return "student_missings"
}

type StudentDAO struct {
	db *gorm.DB
}

func NewStudentDAO(db *gorm.DB) *StudentDAO {
	return &StudentDAO{
		db: db,
	}
}

func (d *StudentDAO) Insert(ctx context.Context, student Student) (Student, error) {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&student)
	if result.Error != nil {
		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) FindByID(ctx context.Context, id uuid.UUID) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).First(&student, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]Student, error) {
	var students []Student

	result := d.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("name").Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}

	return students, nil
}

func (d *StudentDAO) FindByGroupIDs(ctx context.Context, spaceID uuid.UUID, groupIDs []uuid.UUID) ([]Student, error) {
	var students []Student

	result := d.db.WithContext(ctx).
		Where("space_id = ? AND group_id IN ?", spaceID, groupIDs).
		Order("name").
		Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}

	return students, nil
}

func (d *StudentDAO) Update(ctx context.Context, student Student) (Student, error) {
	result := d.db.WithContext(ctx).
		Model(&Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"name":       student.Name,
			"dob":        student.DOB,
			"gender":     student.Gender,
			"image_path": student.ImagePath,
			"embedding":  student.Embedding,
			"group_id":   student.GroupID,
			"mentor_id":  student.MentorID,
		})
	if result.Error != nil {
		return Student{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Student{}, ErrStudentNotFound
	}

	return d.FindByID(ctx, student.ID)
}

func (d *StudentDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Student{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}

	return nil
}

type MissingDAO struct {
	db *gorm.DB
}

func NewMissingDAO(db *gorm.DB) *MissingDAO {
	return &MissingDAO{
		db: db,
	}
}

func (d *MissingDAO) Insert(ctx context.Context, missing Missing) (Missing, error) {
	if missing.ID == uuid.Nil {
		missing.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&missing)
	if result.Error != nil {
		return Missing{}, result.Error
	}

	return missing, nil
}

func (d *MissingDAO) FindByID(ctx context.Context, id uuid.UUID) (Missing, error) {
	var missing Missing

	result := d.db.WithContext(ctx).First(&missing, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Missing{}, ErrMissingNotFound
		}

		return Missing{}, result.Error
	}

	return missing, nil
}

func (d *MissingDAO) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]Missing, error) {
	var missings []Missing

	result := d.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&missings)
	if result.Error != nil {
		return nil, result.Error
	}

	return missings, nil
}

func (d *MissingDAO) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]Missing, error) {
	var missings []Missing

	result := d.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("date DESC").
		Find(&missings)
	if result.Error != nil {
		return nil, result.Error
	}

	return missings, nil
}

func (d *MissingDAO) Update(ctx context.Context, missing Missing) (Missing, error) {
	result := d.db.WithContext(ctx).
		Model(&Missing{}).
		Where("id = ?", missing.ID).
		Updates(map[string]interface{}{
			"date":    missing.Date,
			"type":    missing.Type,
			"notes":   missing.Notes,
			"persons": missing.Persons,
		})
	if result.Error != nil {
		return Missing{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Missing{}, ErrMissingNotFound
	}

	var updated Missing
	if err := d.db.WithContext(ctx).First(&updated, "id = ?", missing.ID).Error; err != nil {
		return Missing{}, err
	}

	return updated, nil
}

func (d *MissingDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Missing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMissingNotFound
	}

	return nil
}
