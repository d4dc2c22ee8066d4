package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// startPostgres spins up a throwaway postgres container. Tests are skipped
// when no docker daemon is reachable.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, could not connect to docker: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=test",
		"POSTGRES_PASSWORD=test",
		"POSTGRES_DB=pointspace_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf("host=localhost port=%v user=test password=test dbname=pointspace_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func TestLedgerDAO_SetEventStudentPoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	ctx := context.Background()
	d := NewLedgerDAO(db)

	studentID := uuid.New()
	eventID := uuid.New()
	profileID := uuid.New()
	comment := "Attendance: Tuesday training"

	record := EventStudent{
		StudentID: studentID,
		EventID:   eventID,
		IsPresent: true,
		Points:    10,
	}
	require.NoError(t, d.SetEventStudentPoints(ctx, record, &comment, profileID))

	t.Run("first save creates record and ledger row", func(t *testing.T) {
		saved, found, err := d.FindEventStudent(ctx, studentID, eventID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 10, saved.Points)

		balance, err := d.SumStudentPoints(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 10, balance)
	})

	t.Run("resave replaces both sides", func(t *testing.T) {
		record.Points = 15
		require.NoError(t, d.SetEventStudentPoints(ctx, record, &comment, profileID))

		saved, found, err := d.FindEventStudent(ctx, studentID, eventID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 15, saved.Points)

		transactions, err := d.FindStudentTransactions(ctx, studentID)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, 15, transactions[0].Points)

		balance, err := d.SumStudentPoints(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 15, balance)
	})

	t.Run("manual rows survive resaves", func(t *testing.T) {
		_, err := d.InsertStudentTransaction(ctx, StudentTransaction{
			StudentID: studentID,
			Points:    5,
			ProfileID: profileID,
		})
		require.NoError(t, err)

		record.Points = 20
		require.NoError(t, d.SetEventStudentPoints(ctx, record, &comment, profileID))

		balance, err := d.SumStudentPoints(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 25, balance)
	})

	t.Run("other events are untouched", func(t *testing.T) {
		otherEvent := uuid.New()
		require.NoError(t, d.SetEventStudentPoints(ctx, EventStudent{
			StudentID: studentID,
			EventID:   otherEvent,
			IsPresent: true,
			Points:    7,
		}, nil, profileID))

		balance, err := d.SumStudentPoints(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 32, balance)

		records, err := d.FindEventStudentsByStudentID(ctx, studentID)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestLedgerDAO_SetActivityGroupPoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	ctx := context.Background()
	d := NewLedgerDAO(db)

	activityID := uuid.New()
	red := uuid.New()
	blue := uuid.New()
	profileID := uuid.New()

	require.NoError(t, d.SetActivityGroupPoints(ctx, ActivityGroup{
		ActivityID: activityID,
		GroupID:    red,
		Points:     10,
	}, nil, profileID))
	require.NoError(t, d.SetActivityGroupPoints(ctx, ActivityGroup{
		ActivityID: activityID,
		GroupID:    blue,
		Points:     20,
	}, nil, profileID))

	// Resetting red leaves blue alone.
	require.NoError(t, d.SetActivityGroupPoints(ctx, ActivityGroup{
		ActivityID: activityID,
		GroupID:    red,
		Points:     5,
	}, nil, profileID))

	var rows []GroupTransaction
	require.NoError(t, db.WithContext(ctx).Order("points").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, 5, rows[0].Points)
	assert.Equal(t, red, rows[0].GroupID)
	assert.Equal(t, 20, rows[1].Points)
	assert.Equal(t, blue, rows[1].GroupID)
}
