package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Email:    "admin@example.com",
		Password: "secret1234",
		Name:     "Admin",
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "ab1"
		assert.Error(t, req.Validate())
	})

	t.Run("password needs a digit", func(t *testing.T) {
		req := valid
		req.Password = "onlyletters"
		assert.Error(t, req.Validate())
	})

	t.Run("password needs a letter", func(t *testing.T) {
		req := valid
		req.Password = "1234567890"
		assert.Error(t, req.Validate())
	})

	t.Run("name too short", func(t *testing.T) {
		req := valid
		req.Name = "A"
		assert.Error(t, req.Validate())
	})
}
