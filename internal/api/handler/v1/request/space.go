package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSpaceRequest struct {
	Name string `json:"name" binding:"required"`
}

func (req *CreateSpaceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}
