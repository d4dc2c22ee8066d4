package request

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSetActivityPointsRequestValidate(t *testing.T) {
	valid := SetActivityPointsRequest{
		ActivityID: uuid.New(),
		GroupID:    uuid.New(),
		Points:     15,
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero activity id is rejected", func(t *testing.T) {
		req := valid
		req.ActivityID = uuid.Nil
		assert.Error(t, req.Validate())
	})

	t.Run("zero group id is rejected", func(t *testing.T) {
		req := valid
		req.GroupID = uuid.Nil
		assert.Error(t, req.Validate())
	})
}

func TestMissingRequestValidate(t *testing.T) {
	valid := MissingRequest{
		StudentID: uuid.New(),
		Date:      "2026-07-01",
		Type:      "sick",
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero student id is rejected", func(t *testing.T) {
		req := valid
		req.StudentID = uuid.Nil
		assert.Error(t, req.Validate())
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		req := valid
		req.Date = "yesterday"
		assert.Error(t, req.Validate())
	})
}
