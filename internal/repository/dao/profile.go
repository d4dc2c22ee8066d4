package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrProfileEmailExists = errors.New("profile already exists")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrSpaceNotFound      = errors.New("space not found")
	ErrNotSpaceMember     = errors.New("profile is not a member of the space")
)

type Profile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Space struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProfileSpace struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpaceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ProfileSpace) TableName() string {
	return "profile_spaces"
}

type ProfileDAO struct {
	db *gorm.DB
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{
		db: db,
	}
}

func (d *ProfileDAO) Insert(ctx context.Context, profile Profile) (Profile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&profile)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Profile{}, ErrProfileEmailExists
		}

		return Profile{}, result.Error
	}

	return profile, nil
}

func (d *ProfileDAO) FindByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	var profile Profile

	result := d.db.WithContext(ctx).First(&profile, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Profile{}, ErrProfileNotFound
		}

		return Profile{}, result.Error
	}

	return profile, nil
}

func (d *ProfileDAO) FindByEmail(ctx context.Context, email string) (Profile, error) {
	var profile Profile

	result := d.db.WithContext(ctx).First(&profile, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Profile{}, ErrProfileNotFound
		}

		return Profile{}, result.Error
	}

	return profile, nil
}

type SpaceDAO struct {
	db *gorm.DB
}

func NewSpaceDAO(db *gorm.DB) *SpaceDAO {
	return &SpaceDAO{
		db: db,
	}
}

// InsertWithMembership creates the space and enrolls the creating profile in
// one transaction.
func (d *SpaceDAO) InsertWithMembership(ctx context.Context, space Space, profileID uuid.UUID) (Space, error) {
	if space.ID == uuid.Nil {
		space.ID = uuid.New()
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&space).Error; err != nil {
			return err
		}

		return tx.Create(&ProfileSpace{ProfileID: profileID, SpaceID: space.ID}).Error
	})
	if err != nil {
		return Space{}, err
	}

	return space, nil
}

func (d *SpaceDAO) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Space, error) {
	var spaces []Space

	result := d.db.WithContext(ctx).
		Joins("JOIN profile_spaces ON profile_spaces.space_id = spaces.id").
		Where("profile_spaces.profile_id = ?", profileID).
		Find(&spaces)
	if result.Error != nil {
		return nil, result.Error
	}

	return spaces, nil
}

func (d *SpaceDAO) FindByID(ctx context.Context, id uuid.UUID) (Space, error) {
	var space Space

	result := d.db.WithContext(ctx).First(&space, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Space{}, ErrSpaceNotFound
		}

		return Space{}, result.Error
	}

	return space, nil
}

// IsMember reports whether the profile belongs to the space.
func (d *SpaceDAO) IsMember(ctx context.Context, profileID, spaceID uuid.UUID) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&ProfileSpace{}).
		Where("profile_id = ? AND space_id = ?", profileID, spaceID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
