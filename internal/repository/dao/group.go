package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGroupNotFound = errors.New("group not found")

type Group struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name     string     `gorm:"not null"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	SpaceID  uuid.UUID  `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GroupPointsRow struct {
	GroupID     uuid.UUID `gorm:"column:group_id"`
	GroupName   string    `gorm:"column:group_name"`
	TotalPoints int       `gorm:"column:total_points"`
}

type GroupDAO struct {
	db *gorm.DB
}

func NewGroupDAO(db *gorm.DB) *GroupDAO {
	return &GroupDAO{
		db: db,
	}
}

func (d *GroupDAO) Insert(ctx context.Context, group Group) (Group, error) {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&group)
	if result.Error != nil {
		return Group{}, result.Error
	}

	return group, nil
}

func (d *GroupDAO) FindByID(ctx context.Context, id uuid.UUID) (Group, error) {
	var group Group

	result := d.db.WithContext(ctx).First(&group, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Group{}, ErrGroupNotFound
		}

		return Group{}, result.Error
	}

	return group, nil
}

func (d *GroupDAO) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]Group, error) {
	var groups []Group

	result := d.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("name").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

func (d *GroupDAO) Update(ctx context.Context, group Group) (Group, error) {
	result := d.db.WithContext(ctx).
		Model(&Group{}).
		Where("id = ?", group.ID).
		Updates(map[string]interface{}{
			"name":      group.Name,
			"parent_id": group.ParentID,
		})
	if result.Error != nil {
		return Group{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Group{}, ErrGroupNotFound
	}

	return d.FindByID(ctx, group.ID)
}

func (d *GroupDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Group{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

func (d *GroupDAO) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Group{}).Where("parent_id = ?", id).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *GroupDAO) CountStudents(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Student{}).Where("group_id = ?", id).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// FindWithPointsBySpaceID aggregates each group's ledger total. Groups with
// no ledger rows still appear, with a zero total.
func (d *GroupDAO) FindWithPointsBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]GroupPointsRow, error) {
	var rows []GroupPointsRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT g.id AS group_id, g.name AS group_name, COALESCE(SUM(t.points), 0) AS total_points
		FROM groups g
		LEFT JOIN group_transactions t ON t.group_id = g.id
		WHERE g.space_id = ?
		GROUP BY g.id, g.name
		ORDER BY g.name`, spaceID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
