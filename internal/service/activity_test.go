package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

type fakeActivityRepo struct {
	activities map[uuid.UUID]domain.Activity
}

func newFakeActivityRepo(activities ...domain.Activity) *fakeActivityRepo {
	f := &fakeActivityRepo{activities: make(map[uuid.UUID]domain.Activity)}
	for _, a := range activities {
		f.activities[a.ID] = a
	}

	return f
}

func (f *fakeActivityRepo) Create(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	activity.ID = uuid.New()
	f.activities[activity.ID] = activity

	return activity, nil
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}

	return activity, nil
}

func (f *fakeActivityRepo) FindBySpaceID(_ context.Context, spaceID uuid.UUID) ([]domain.Activity, error) {
	var found []domain.Activity
	for _, a := range f.activities {
		if a.SpaceID == spaceID {
			found = append(found, a)
		}
	}

	return found, nil
}

func (f *fakeActivityRepo) FindByEventID(_ context.Context, eventID uuid.UUID) ([]domain.Activity, error) {
	var found []domain.Activity
	for _, a := range f.activities {
		if a.EventID != nil && *a.EventID == eventID {
			found = append(found, a)
		}
	}

	return found, nil
}

func (f *fakeActivityRepo) Update(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	if _, ok := f.activities[activity.ID]; !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}
	f.activities[activity.ID] = activity

	return activity, nil
}

func (f *fakeActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.activities[id]; !ok {
		return repository.ErrActivityNotFound
	}
	delete(f.activities, id)

	return nil
}

func (f *fakeActivityRepo) FindPointsBySpaceID(_ context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]domain.ActivityGroupPoints, error) {
	return nil, nil
}

func TestActivityService_SetGroupPoints(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()
	profileID := uuid.New()
	activity := domain.Activity{ID: uuid.New(), Name: "relay race", SpaceID: spaceID}

	t.Run("resetting replaces the pair's score", func(t *testing.T) {
		ledger := newFakeLedger()
		svc := NewActivityService(newFakeActivityRepo(activity), ledger)
		groupID := uuid.New()

		require.NoError(t, svc.SetGroupPoints(ctx, spaceID, activity.ID, groupID, 10, nil, profileID))
		require.NoError(t, svc.SetGroupPoints(ctx, spaceID, activity.ID, groupID, 15, nil, profileID))

		score := ledger.activityScores[pairKey{activity.ID, groupID}]
		assert.Equal(t, 15, score.Points)
		assert.Len(t, ledger.groupRows, 1)
		assert.Equal(t, 15, ledger.groupRows[0].Points)
	})

	t.Run("groups are scored independently", func(t *testing.T) {
		ledger := newFakeLedger()
		svc := NewActivityService(newFakeActivityRepo(activity), ledger)
		red := uuid.New()
		blue := uuid.New()

		require.NoError(t, svc.SetGroupPoints(ctx, spaceID, activity.ID, red, 10, nil, profileID))
		require.NoError(t, svc.SetGroupPoints(ctx, spaceID, activity.ID, blue, 20, nil, profileID))
		require.NoError(t, svc.SetGroupPoints(ctx, spaceID, activity.ID, red, 5, nil, profileID))

		assert.Equal(t, 5, ledger.activityScores[pairKey{activity.ID, red}].Points)
		assert.Equal(t, 20, ledger.activityScores[pairKey{activity.ID, blue}].Points)
	})

	t.Run("activity from another space reads as not found", func(t *testing.T) {
		svc := NewActivityService(newFakeActivityRepo(activity), newFakeLedger())

		err := svc.SetGroupPoints(ctx, uuid.New(), activity.ID, uuid.New(), 10, nil, profileID)
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	t.Run("unknown activity aborts", func(t *testing.T) {
		svc := NewActivityService(newFakeActivityRepo(), newFakeLedger())

		err := svc.SetGroupPoints(ctx, spaceID, uuid.New(), uuid.New(), 10, nil, profileID)
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}
