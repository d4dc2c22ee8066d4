package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type StudentRequest struct {
	Name      string     `json:"name" binding:"required"`
	DOB       string     `json:"dob"`
	Gender    string     `json:"gender"`
	ImagePath string     `json:"image_path"`
	Embedding string     `json:"embedding"`
	GroupID   *uuid.UUID `json:"group_id"`
	MentorID  *uuid.UUID `json:"mentor_id"`
}

func (req *StudentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Gender, validation.In("", "male", "female")),
		validation.Field(&req.DOB, validation.Date("2006-01-02")),
	)
}

type MissingRequest struct {
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Notes     string    `json:"notes"`
	Persons   string    `json:"persons"`
}

func (req *MissingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, requiredUUID),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Type, validation.Required, validation.Length(1, 50)),
	)
}
