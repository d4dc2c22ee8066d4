package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type Activity struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name        string `gorm:"not null"`
	Description string
	EventID     *uuid.UUID `gorm:"type:uuid;index"`
	SpaceID     uuid.UUID  `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

type ActivityPointsRow struct {
	ActivityID   uuid.UUID `gorm:"column:activity_id"`
	ActivityName string    `gorm:"column:activity_name"`
	GroupID      uuid.UUID `gorm:"column:group_id"`
	GroupName    string    `gorm:"column:group_name"`
	Points       int       `gorm:"column:points"`
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uuid.UUID) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("created_at").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) Update(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"name":        activity.Name,
			"description": activity.Description,
			"event_id":    activity.EventID,
		})
	if result.Error != nil {
		return Activity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Activity{}, ErrActivityNotFound
	}

	return d.FindByID(ctx, activity.ID)
}

func (d *ActivityDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Activity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// FindPointsBySpaceID lists scored (activity, group) pairs with names joined
// in, optionally narrowed to one activity and/or one group.
func (d *ActivityDAO) FindPointsBySpaceID(ctx context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]ActivityPointsRow, error) {
	query := d.db.WithContext(ctx).
		Table("activity_groups ag").
		Select("ag.activity_id, a.name AS activity_name, ag.group_id, g.name AS group_name, ag.points").
		Joins("JOIN activities a ON a.id = ag.activity_id").
		Joins("JOIN groups g ON g.id = ag.group_id").
		Where("a.space_id = ?", spaceID)

	if activityID != nil {
		query = query.Where("ag.activity_id = ?", *activityID)
	}
	if groupID != nil {
		query = query.Where("ag.group_id = ?", *groupID)
	}

	var rows []ActivityPointsRow
	result := query.Order("a.created_at DESC").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
