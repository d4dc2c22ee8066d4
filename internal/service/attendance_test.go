package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointspace/pointspace-api/internal/domain"
)

func newAttendanceFixture() (*AttendanceService, *fakeLedger, domain.Event, domain.EventType, uuid.UUID) {
	spaceID := uuid.New()

	eventType := domain.EventType{
		ID:               uuid.New(),
		Name:             "training",
		AttendancePoints: 10,
		ExtraPoints: []domain.ExtraPointCategory{
			{Name: "homework", UnitPoints: 2, MaxUnits: 3},
		},
		SpaceID: spaceID,
	}
	event := domain.Event{
		ID:          uuid.New(),
		Name:        "Tuesday training",
		EventTypeID: eventType.ID,
		SpaceID:     spaceID,
	}

	ledger := newFakeLedger()
	ledger.eventTypes[event.ID] = eventType.ID
	svc := NewAttendanceService(ledger, newFakeEventRepo(event), newFakeEventTypeRepo(eventType))

	return svc, ledger, event, eventType, spaceID
}

func TestAttendanceService_SaveAttendance(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	t.Run("present with extras", func(t *testing.T) {
		svc, ledger, event, _, spaceID := newAttendanceFixture()
		studentID := uuid.New()

		record, err := svc.SaveAttendance(ctx, spaceID, studentID, event.ID, true, domain.Selection{"homework": 2}, profileID)
		require.NoError(t, err)
		assert.Equal(t, 14, record.Points)
		assert.True(t, record.IsPresent)

		balance, err := NewLedgerService(ledger).GetBalance(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 14, balance)
	})

	t.Run("resaving replaces instead of stacking", func(t *testing.T) {
		svc, ledger, event, _, spaceID := newAttendanceFixture()
		studentID := uuid.New()

		_, err := svc.SaveAttendance(ctx, spaceID, studentID, event.ID, true, domain.Selection{"homework": 1}, profileID)
		require.NoError(t, err)

		record, err := svc.SaveAttendance(ctx, spaceID, studentID, event.ID, true, domain.Selection{"homework": 3}, profileID)
		require.NoError(t, err)
		assert.Equal(t, 16, record.Points)

		balance, err := NewLedgerService(ledger).GetBalance(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 16, balance)

		transactions, err := ledger.FindTransactions(ctx, studentID)
		require.NoError(t, err)
		assert.Len(t, transactions, 1)
	})

	t.Run("reset to zero survives a resave", func(t *testing.T) {
		svc, _, event, _, spaceID := newAttendanceFixture()
		studentID := uuid.New()

		_, err := svc.SaveAttendance(ctx, spaceID, studentID, event.ID, true, domain.Selection{"homework": 2}, profileID)
		require.NoError(t, err)

		record, err := svc.SaveAttendance(ctx, spaceID, studentID, event.ID, true, domain.Selection{"homework": 0}, profileID)
		require.NoError(t, err)
		assert.Equal(t, 10, record.Points)
		assert.Equal(t, domain.Selection{"homework": 0}, domain.ParseSelection(record.Description))
	})

	t.Run("manual transactions survive an attendance resave", func(t *testing.T) {
		svc, ledger, event, _, spaceID := newAttendanceFixture()
		studentID := uuid.New()
		ledgerSvc := NewLedgerService(ledger)

		_, err := ledgerSvc.RecordManualTransaction(ctx, studentID, 5, false, nil, profileID)
		require.NoError(t, err)

		_, err = svc.SaveAttendance(ctx, spaceID, studentID, event.ID, true, nil, profileID)
		require.NoError(t, err)
		_, err = svc.SaveAttendance(ctx, spaceID, studentID, event.ID, false, nil, profileID)
		require.NoError(t, err)

		balance, err := ledgerSvc.GetBalance(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 5, balance)
	})

	t.Run("unknown event aborts", func(t *testing.T) {
		svc, _, _, _, spaceID := newAttendanceFixture()

		_, err := svc.SaveAttendance(ctx, spaceID, uuid.New(), uuid.New(), true, nil, profileID)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("event from another space reads as not found", func(t *testing.T) {
		svc, _, event, _, _ := newAttendanceFixture()

		_, err := svc.SaveAttendance(ctx, uuid.New(), uuid.New(), event.ID, true, nil, profileID)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestAttendanceService_Reads(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	svc, _, event, eventType, spaceID := newAttendanceFixture()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.SaveAttendance(ctx, spaceID, alice, event.ID, true, nil, profileID)
	require.NoError(t, err)
	_, err = svc.SaveAttendance(ctx, spaceID, bob, event.ID, false, nil, profileID)
	require.NoError(t, err)

	t.Run("by event", func(t *testing.T) {
		records, err := svc.GetEventAttendance(ctx, spaceID, event.ID)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("by event rejects foreign space", func(t *testing.T) {
		_, err := svc.GetEventAttendance(ctx, uuid.New(), event.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("by student", func(t *testing.T) {
		records, err := svc.GetStudentAttendance(ctx, alice)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, event.ID, records[0].EventID)
	})

	t.Run("by event type", func(t *testing.T) {
		records, err := svc.GetEventTypeAttendance(ctx, spaceID, eventType.ID)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
