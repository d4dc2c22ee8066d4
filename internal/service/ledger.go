package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero")

// LedgerService exposes the student account: balance, history, and manual
// deposits/withdrawals.
type LedgerService struct {
	ledger LedgerRepository
}

func NewLedgerService(ledger LedgerRepository) *LedgerService {
	return &LedgerService{
		ledger: ledger,
	}
}

func (s *LedgerService) GetBalance(ctx context.Context, studentID uuid.UUID) (int, error) {
	balance, err := s.ledger.GetBalance(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("s.ledger.GetBalance -> %w", err)
	}

	return balance, nil
}

func (s *LedgerService) GetTransactions(ctx context.Context, studentID uuid.UUID) ([]domain.StudentTransaction, error) {
	transactions, err := s.ledger.FindTransactions(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.ledger.FindTransactions -> %w", err)
	}

	return transactions, nil
}

// RecordManualTransaction appends a deposit or withdrawal. Withdrawals store
// the negated amount; the balance is allowed to go negative. Each call is a
// distinct permanent row, repeated identical calls stack.
func (s *LedgerService) RecordManualTransaction(ctx context.Context, studentID uuid.UUID, amount int, withdraw bool, comment *string, profileID uuid.UUID) (domain.StudentTransaction, error) {
	if amount <= 0 {
		return domain.StudentTransaction{}, ErrInvalidAmount
	}
	if withdraw {
		amount = -amount
	}

	created, err := s.ledger.AppendTransaction(ctx, domain.StudentTransaction{
		StudentID: studentID,
		Points:    amount,
		Comment:   comment,
		ProfileID: profileID,
	})
	if err != nil {
		return domain.StudentTransaction{}, fmt.Errorf("s.ledger.AppendTransaction -> %w", err)
	}

	return created, nil
}
