package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func validate(t *testing.T, req sampleRequest) error {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(req)
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	err := validate(t, sampleRequest{Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestPwdAlias(t *testing.T) {
	err := validate(t, sampleRequest{Name: "Ana", Email: "ana@example.com", Password: "five5"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "password")

	err = validate(t, sampleRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestMissingFields(t *testing.T) {
	err := validate(t, sampleRequest{})
	assert.True(t, MissingFields(err))

	err = validate(t, sampleRequest{Name: "Ana", Email: "nope", Password: "secret1"})
	require.Error(t, err)
	assert.False(t, MissingFields(err))

	assert.False(t, MissingFields(nil))
}
