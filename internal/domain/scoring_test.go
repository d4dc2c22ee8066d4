package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func trainingEventType() EventType {
	return EventType{
		Name:             "training",
		AttendancePoints: 10,
		ExtraPoints: []ExtraPointCategory{
			{Name: "homework", UnitPoints: 2, MaxUnits: 3},
			{Name: "verse", UnitPoints: 5, MaxUnits: 1},
		},
	}
}

func TestParseSelection(t *testing.T) {
	t.Run("nil reads as empty", func(t *testing.T) {
		assert.Equal(t, Selection{}, ParseSelection(nil))
	})

	t.Run("empty string reads as empty", func(t *testing.T) {
		assert.Equal(t, Selection{}, ParseSelection(strPtr("")))
	})

	t.Run("malformed JSON reads as empty", func(t *testing.T) {
		assert.Equal(t, Selection{}, ParseSelection(strPtr("{broken")))
	})

	t.Run("JSON null reads as empty", func(t *testing.T) {
		assert.Equal(t, Selection{}, ParseSelection(strPtr("null")))
	})

	t.Run("valid JSON parses", func(t *testing.T) {
		sel := ParseSelection(strPtr(`{"homework":2,"verse":1}`))
		assert.Equal(t, Selection{"homework": 2, "verse": 1}, sel)
	})
}

func TestSelectionSerialize(t *testing.T) {
	t.Run("empty selection serializes to nil", func(t *testing.T) {
		description, err := Selection{}.Serialize()
		require.NoError(t, err)
		assert.Nil(t, description)
	})

	t.Run("round trip", func(t *testing.T) {
		sel := Selection{"homework": 2, "verse": 0}

		description, err := sel.Serialize()
		require.NoError(t, err)
		require.NotNil(t, description)

		assert.Equal(t, sel, ParseSelection(description))
	})
}

func TestSelectionClamp(t *testing.T) {
	eventType := trainingEventType()

	t.Run("caps known categories at max units", func(t *testing.T) {
		clamped := Selection{"homework": 99}.Clamp(eventType)
		assert.Equal(t, Selection{"homework": 3}, clamped)
	})

	t.Run("negative counts become zero", func(t *testing.T) {
		clamped := Selection{"homework": -4}.Clamp(eventType)
		assert.Equal(t, Selection{"homework": 0}, clamped)
	})

	t.Run("stale categories keep their count", func(t *testing.T) {
		clamped := Selection{"retired": 7}.Clamp(eventType)
		assert.Equal(t, Selection{"retired": 7}, clamped)
	})
}

func TestMergeSelection(t *testing.T) {
	t.Run("zero for a never-set category is dropped", func(t *testing.T) {
		merged := MergeSelection(Selection{}, Selection{"homework": 0})
		assert.Empty(t, merged)
	})

	t.Run("zero overwriting a stored nonzero is kept", func(t *testing.T) {
		merged := MergeSelection(Selection{"homework": 2}, Selection{"homework": 0})
		assert.Equal(t, Selection{"homework": 0}, merged)
	})

	t.Run("untouched categories survive", func(t *testing.T) {
		merged := MergeSelection(Selection{"homework": 2}, Selection{"verse": 1})
		assert.Equal(t, Selection{"homework": 2, "verse": 1}, merged)
	})

	t.Run("new counts overwrite old ones", func(t *testing.T) {
		merged := MergeSelection(Selection{"homework": 1}, Selection{"homework": 3})
		assert.Equal(t, Selection{"homework": 3}, merged)
	})
}

func TestComputeAttendance(t *testing.T) {
	eventType := trainingEventType()

	t.Run("presence alone grants base points", func(t *testing.T) {
		score, err := ComputeAttendance(eventType, true, Selection{}, Selection{})
		require.NoError(t, err)
		assert.Equal(t, 10, score.Points)
		assert.Nil(t, score.Description)
	})

	t.Run("absence alone is worth nothing", func(t *testing.T) {
		score, err := ComputeAttendance(eventType, false, Selection{}, Selection{})
		require.NoError(t, err)
		assert.Equal(t, 0, score.Points)
	})

	t.Run("extras are additive on top of presence", func(t *testing.T) {
		score, err := ComputeAttendance(eventType, true, Selection{}, Selection{"homework": 2, "verse": 1})
		require.NoError(t, err)
		assert.Equal(t, 10+2*2+5, score.Points)
	})

	t.Run("extras still count when absent", func(t *testing.T) {
		score, err := ComputeAttendance(eventType, false, Selection{}, Selection{"homework": 3})
		require.NoError(t, err)
		assert.Equal(t, 6, score.Points)
	})

	t.Run("unit counts are clamped before scoring", func(t *testing.T) {
		score, err := ComputeAttendance(eventType, false, Selection{}, Selection{"homework": 99})
		require.NoError(t, err)
		assert.Equal(t, 3*2, score.Points)
	})

	t.Run("stale categories are skipped but preserved", func(t *testing.T) {
		score, err := ComputeAttendance(eventType, false, Selection{"retired": 2}, Selection{})
		require.NoError(t, err)
		assert.Equal(t, 0, score.Points)
		assert.Equal(t, Selection{"retired": 2}, ParseSelection(score.Description))
	})

	t.Run("resaving with a reset to zero removes the extra points", func(t *testing.T) {
		first, err := ComputeAttendance(eventType, true, Selection{}, Selection{"homework": 2})
		require.NoError(t, err)
		assert.Equal(t, 14, first.Points)

		second, err := ComputeAttendance(eventType, true, ParseSelection(first.Description), Selection{"homework": 0})
		require.NoError(t, err)
		assert.Equal(t, 10, second.Points)
		assert.Equal(t, Selection{"homework": 0}, ParseSelection(second.Description))
	})
}
