package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string   `json:"name" validate:"required,max=5"`
	Latitude *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Internal string   `json:"-" validate:"max=1"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 91.0

	assert.NoError(t, v.Validate(&sampleRequest{Name: "ok"}))

	err := v.Validate(&sampleRequest{Latitude: &lat})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name failed on required")
	assert.Contains(t, err.Error(), "latitude failed on max=90")

	err = v.Validate(&sampleRequest{Name: "toolong"})
	require.Error(t, err)
	assert.Equal(t, "name failed on max=5", err.Error())
}
