package oautherrors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSerializationHidesInternalFields(t *testing.T) {
	err := Wrap(errors.New("pq: connection refused"), ErrServerError.Code, ErrServerError.Status, ErrServerError.Description)

	payload, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "server_error", decoded["error"])
	assert.NotContains(t, string(payload), "connection refused")
	assert.NotContains(t, string(payload), "Status")
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	perr := FromError(Clone(ErrInvalidGrant, "spent"))
	assert.Equal(t, "invalid_grant", perr.Code)
	assert.Equal(t, "spent", perr.Description)

	wrapped := FromError(errors.New("boom"))
	assert.Equal(t, ErrServerError.Code, wrapped.Code)
	assert.Equal(t, 500, wrapped.Status)
	assert.Equal(t, ErrServerError.Description, wrapped.Description)
}

func TestCloneDoesNotMutateTemplate(t *testing.T) {
	clone := Clone(ErrInvalidClient, "custom description")
	assert.Equal(t, "custom description", clone.Description)
	assert.NotEqual(t, clone.Description, ErrInvalidClient.Description)
	assert.Equal(t, ErrInvalidClient.Status, clone.Status)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, ErrServerError.Code, ErrServerError.Status, ErrServerError.Description)
	assert.ErrorIs(t, err, cause)

	var perr *Error
	assert.True(t, errors.As(error(err), &perr))
}
