package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

type fakeEventTypeDAO struct {
	stored dao.EventType
}

func (f *fakeEventTypeDAO) Insert(_ context.Context, eventType dao.EventType) (dao.EventType, error) {
	eventType.ID = uuid.New()
	f.stored = eventType

	return eventType, nil
}

func (f *fakeEventTypeDAO) FindByID(_ context.Context, id uuid.UUID) (dao.EventType, error) {
	if f.stored.ID != id {
		return dao.EventType{}, dao.ErrEventTypeNotFound
	}

	return f.stored, nil
}

func (f *fakeEventTypeDAO) FindBySpaceID(_ context.Context, _ uuid.UUID) ([]dao.EventType, error) {
	return []dao.EventType{f.stored}, nil
}

func (f *fakeEventTypeDAO) Update(_ context.Context, eventType dao.EventType) (dao.EventType, error) {
	f.stored = eventType

	return eventType, nil
}

func (f *fakeEventTypeDAO) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func TestEventTypeRepository_ExtraPointsRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakeEventTypeDAO{}
	repo := NewEventTypeRepository(fake)

	created, err := repo.Create(ctx, domain.EventType{
		Name:             "training",
		AttendancePoints: 10,
		ExtraPoints: []domain.ExtraPointCategory{
			{Name: "homework", UnitPoints: 2, MaxUnits: 3},
			{Name: "verse", UnitPoints: 5, MaxUnits: 1},
		},
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ExtraPoints, found.ExtraPoints)
	assert.Equal(t, "homework", found.ExtraPoints[0].Name)
	assert.Equal(t, 2, found.ExtraPoints[0].UnitPoints)
	assert.Equal(t, 3, found.ExtraPoints[0].MaxUnits)
}

func TestEventTypeRepository_NoCategories(t *testing.T) {
	ctx := context.Background()
	fake := &fakeEventTypeDAO{}
	repo := NewEventTypeRepository(fake)

	created, err := repo.Create(ctx, domain.EventType{Name: "plain"})
	require.NoError(t, err)
	assert.Nil(t, fake.stored.ExtraPoints)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.ExtraPoints)
}

func TestParseExtraPoints(t *testing.T) {
	t.Run("nil reads as none", func(t *testing.T) {
		assert.Nil(t, parseExtraPoints(nil))
	})

	t.Run("malformed JSON reads as none", func(t *testing.T) {
		raw := "[broken"
		assert.Nil(t, parseExtraPoints(&raw))
	})

	t.Run("valid list parses", func(t *testing.T) {
		raw := `[{"name":"homework","points":2,"max_points":3}]`
		categories := parseExtraPoints(&raw)
		require.Len(t, categories, 1)
		assert.Equal(t, "homework", categories[0].Name)
		assert.Equal(t, 2, categories[0].UnitPoints)
		assert.Equal(t, 3, categories[0].MaxUnits)
	})
}
