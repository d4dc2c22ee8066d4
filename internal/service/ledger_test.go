package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_RecordManualTransaction(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	t.Run("deposits stack", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedger())
		studentID := uuid.New()

		_, err := svc.RecordManualTransaction(ctx, studentID, 10, false, nil, profileID)
		require.NoError(t, err)
		_, err = svc.RecordManualTransaction(ctx, studentID, 10, false, nil, profileID)
		require.NoError(t, err)

		balance, err := svc.GetBalance(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 20, balance)

		transactions, err := svc.GetTransactions(ctx, studentID)
		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("withdrawals store the negated amount", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedger())
		studentID := uuid.New()

		tx, err := svc.RecordManualTransaction(ctx, studentID, 7, true, nil, profileID)
		require.NoError(t, err)
		assert.Equal(t, -7, tx.Points)
	})

	t.Run("balance may go negative", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedger())
		studentID := uuid.New()

		_, err := svc.RecordManualTransaction(ctx, studentID, 5, false, nil, profileID)
		require.NoError(t, err)
		_, err = svc.RecordManualTransaction(ctx, studentID, 8, true, nil, profileID)
		require.NoError(t, err)

		balance, err := svc.GetBalance(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, -3, balance)
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedger())

		_, err := svc.RecordManualTransaction(ctx, uuid.New(), 0, false, nil, profileID)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = svc.RecordManualTransaction(ctx, uuid.New(), -5, true, nil, profileID)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("empty ledger reads as zero balance", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedger())

		balance, err := svc.GetBalance(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 0, balance)
	})
}
