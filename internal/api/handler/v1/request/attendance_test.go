package request

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSaveAttendanceRequestValidate(t *testing.T) {
	valid := SaveAttendanceRequest{
		StudentID:   uuid.New(),
		EventID:     uuid.New(),
		IsPresent:   true,
		ExtraPoints: map[string]int{"homework": 2},
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero student id is rejected", func(t *testing.T) {
		req := valid
		req.StudentID = uuid.Nil
		assert.Error(t, req.Validate())
	})

	t.Run("zero event id is rejected", func(t *testing.T) {
		req := valid
		req.EventID = uuid.Nil
		assert.Error(t, req.Validate())
	})
}

func TestManualTransactionRequestValidate(t *testing.T) {
	valid := ManualTransactionRequest{
		StudentID: uuid.New(),
		Amount:    10,
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero student id is rejected", func(t *testing.T) {
		req := valid
		req.StudentID = uuid.Nil
		assert.Error(t, req.Validate())
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		req := valid
		req.Amount = 0
		assert.Error(t, req.Validate())
	})
}
