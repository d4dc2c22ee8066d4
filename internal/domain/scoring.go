package domain

import (
	"encoding/json"
	"fmt"
)

// Selection maps an extra-point category name to the number of units an
// admin selected for one student at one event.
type Selection map[string]int

// ParseSelection decodes the stored description column. It fails closed: a
// nil, empty or malformed description reads as "no extra points recorded".
func ParseSelection(description *string) Selection {
	if description == nil || *description == "" {
		return Selection{}
	}

	var sel Selection
	if err := json.Unmarshal([]byte(*description), &sel); err != nil {
		return Selection{}
	}
	if sel == nil {
		return Selection{}
	}

	return sel
}

// Serialize encodes the selection for the description column. An empty
// selection serializes to nil so "never touched" stays distinguishable from
// "explicitly reset to zero".
func (s Selection) Serialize() (*string, error) {
	if len(s) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	out := string(raw)
	return &out, nil
}

// Clamp re-validates unit counts server-side: counts for known categories are
// clamped to [0, MaxUnits], counts for stale categories keep their value but
// never go negative. Scoring skips stale names either way.
func (s Selection) Clamp(eventType EventType) Selection {
	clamped := make(Selection, len(s))
	for name, units := range s {
		if units < 0 {
			units = 0
		}
		if cat, ok := eventType.FindExtraPointCategory(name); ok && units > cat.MaxUnits {
			units = cat.MaxUnits
		}
		clamped[name] = units
	}

	return clamped
}

// MergeSelection folds a new selection into the previously stored one. A zero
// count is dropped when the category was never previously set, but kept when
// it overwrites a stored nonzero value, so an explicit reset to zero persists
// instead of silently vanishing from the map.
func MergeSelection(original, updated Selection) Selection {
	merged := make(Selection, len(original)+len(updated))
	for name, units := range original {
		merged[name] = units
	}
	for name, units := range updated {
		if units <= 0 && original[name] <= 0 {
			continue
		}
		merged[name] = units
	}

	return merged
}

// AttendanceScore is what one saved attendance is worth, plus the serialized
// selection that justifies it.
type AttendanceScore struct {
	Points      int
	Description *string
}

// ComputeAttendance runs the scoring rules for one (student, event) save.
// Presence grants the event type's base points; extra points are additive on
// top and still count when the student was absent. Unit counts are clamped
// and merged with the previously stored selection before scoring.
func ComputeAttendance(eventType EventType, isPresent bool, original, updated Selection) (AttendanceScore, error) {
	merged := MergeSelection(original, updated.Clamp(eventType))

	points := 0
	if isPresent {
		points = eventType.AttendancePoints
	}
	for name, units := range merged {
		cat, ok := eventType.FindExtraPointCategory(name)
		if !ok {
			continue
		}
		points += units * cat.UnitPoints
	}

	description, err := merged.Serialize()
	if err != nil {
		return AttendanceScore{}, err
	}

	return AttendanceScore{Points: points, Description: description}, nil
}
