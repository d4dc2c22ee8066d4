package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// At least 8 characters with one letter and one digit. regexp2 is needed for
// the lookaheads, which stdlib regexp does not support.
var passwordPattern = regexp2.MustCompile(`^(?=.*[A-Za-z])(?=.*\d)\S{8,}$`, regexp2.None)

func checkPasswordStrength(value interface{}) error {
	password, _ := value.(string)

	ok, err := passwordPattern.MatchString(password)
	if err != nil || !ok {
		return errors.New("must be at least 8 characters and contain a letter and a digit")
	}

	return nil
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (req *SignupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(checkPasswordStrength)),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
