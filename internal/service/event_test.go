package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointspace/pointspace-api/internal/domain"
)

func TestEventService_GetEvents(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()
	eventType := domain.EventType{ID: uuid.New(), Name: "training", SpaceID: spaceID}

	past := time.Now().Add(-48 * time.Hour)
	pastEnd := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	undated := domain.Event{ID: uuid.New(), Name: "undated", EventTypeID: eventType.ID, SpaceID: spaceID}
	over := domain.Event{ID: uuid.New(), Name: "over", StartDate: &past, EndDate: &pastEnd, EventTypeID: eventType.ID, SpaceID: spaceID}
	upcoming := domain.Event{ID: uuid.New(), Name: "upcoming", StartDate: &future, EventTypeID: eventType.ID, SpaceID: spaceID}
	running := domain.Event{ID: uuid.New(), Name: "running", StartDate: &past, EndDate: &future, EventTypeID: eventType.ID, SpaceID: spaceID}

	svc := NewEventService(
		newFakeEventRepo(undated, over, upcoming, running),
		newFakeEventTypeRepo(eventType),
	)

	t.Run("all events without the filter", func(t *testing.T) {
		events, err := svc.GetEvents(ctx, spaceID, false)
		require.NoError(t, err)
		assert.Len(t, events, 4)
	})

	t.Run("active filter keeps running and undated events", func(t *testing.T) {
		events, err := svc.GetEvents(ctx, spaceID, true)
		require.NoError(t, err)

		names := make([]string, 0, len(events))
		for _, e := range events {
			names = append(names, e.Name)
		}
		assert.ElementsMatch(t, []string{"undated", "running"}, names)
	})
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()
	eventType := domain.EventType{ID: uuid.New(), Name: "training", SpaceID: spaceID}

	t.Run("event type must live in the same space", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), newFakeEventTypeRepo(eventType))

		_, err := svc.CreateEvent(ctx, domain.Event{
			Name:        "camp",
			EventTypeID: eventType.ID,
			SpaceID:     uuid.New(),
		})
		assert.ErrorIs(t, err, ErrEventTypeNotFound)
	})

	t.Run("valid event creates", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), newFakeEventTypeRepo(eventType))

		created, err := svc.CreateEvent(ctx, domain.Event{
			Name:        "camp",
			EventTypeID: eventType.ID,
			SpaceID:     spaceID,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})
}
