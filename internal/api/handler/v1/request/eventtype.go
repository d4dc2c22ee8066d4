package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ExtraPointCategory struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
}

func (c ExtraPointCategory) Validate() error {
	return validation.ValidateStruct(
		&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&c.MaxPoints, validation.Min(0)),
	)
}

type EventTypeRequest struct {
	Name              string               `json:"name" binding:"required"`
	Icon              string               `json:"icon"`
	AttendancePoints  int                  `json:"attendance_points"`
	AcceptsActivities bool                 `json:"accepts_activities"`
	ExtraPoints       []ExtraPointCategory `json:"extra_points"`
}

func (req *EventTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.AttendancePoints, validation.Min(0)),
		validation.Field(&req.ExtraPoints),
	)
}
