package request

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventRequestValidate(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	valid := EventRequest{
		Name:        "summer camp",
		StartDate:   &start,
		EndDate:     &end,
		EventTypeID: uuid.New(),
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("dates are optional", func(t *testing.T) {
		req := valid
		req.StartDate = nil
		req.EndDate = nil
		assert.NoError(t, req.Validate())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		req := valid
		req.StartDate = &end
		req.EndDate = &start
		assert.Error(t, req.Validate())
	})

	t.Run("missing event type", func(t *testing.T) {
		req := valid
		req.EventTypeID = uuid.Nil
		assert.Error(t, req.Validate())
	})
}

func TestEventTypeRequestValidate(t *testing.T) {
	valid := EventTypeRequest{
		Name:             "training",
		AttendancePoints: 10,
		ExtraPoints: []ExtraPointCategory{
			{Name: "homework", Points: 2, MaxPoints: 3},
		},
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("category without a name is rejected", func(t *testing.T) {
		req := valid
		req.ExtraPoints = []ExtraPointCategory{{Points: 2, MaxPoints: 3}}
		assert.Error(t, req.Validate())
	})

	t.Run("negative max units is rejected", func(t *testing.T) {
		req := valid
		req.ExtraPoints = []ExtraPointCategory{{Name: "homework", Points: 2, MaxPoints: -1}}
		assert.Error(t, req.Validate())
	})

	t.Run("negative attendance points is rejected", func(t *testing.T) {
		req := valid
		req.AttendancePoints = -5
		assert.Error(t, req.Validate())
	})
}
