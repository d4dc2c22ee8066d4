package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type SaveAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	EventID   uuid.UUID `json:"event_id" binding:"required"`
	IsPresent bool      `json:"is_present"`
	// ExtraPoints maps category name to selected unit count. Counts are
	// re-clamped server-side against the event type's category caps.
	ExtraPoints map[string]int `json:"extra_points"`
}

func (req *SaveAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, requiredUUID),
		validation.Field(&req.EventID, requiredUUID),
	)
}

type ManualTransactionRequest struct {
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	Amount    int       `json:"amount" binding:"required,min=1"`
	Withdraw  bool      `json:"withdraw"`
	Comment   *string   `json:"comment"`
}

func (req *ManualTransactionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, requiredUUID),
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
	)
}
