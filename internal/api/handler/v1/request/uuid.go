package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

// requiredUUID rejects the zero UUID. validation.Required cannot do this:
// uuid.UUID is a [16]byte array, which ozzo always treats as non-empty.
var requiredUUID = validation.By(func(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("cannot be blank")
	}

	return nil
})
