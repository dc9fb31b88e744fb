package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	err := NotFoundf("title %d", 42)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Contains(t, err.Error(), "title 42")

	assert.True(t, errors.Is(Conflictf("user %q", "alice"), ErrConflict))
	assert.True(t, errors.Is(InvalidCredentialsf("wrong password"), ErrInvalidCredentials))
	assert.True(t, errors.Is(BadRequestf("missing field"), ErrBadRequest))
}
