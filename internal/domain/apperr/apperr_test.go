package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	assert.Equal(t, "Item not found", New(KindNotFound, "Item not found").Error())

	wrapped := Wrap(KindNetwork, "", errors.New("connection refused"))
	assert.Equal(t, "connection refused", wrapped.Error())

	assert.Equal(t, "server", (&Error{Kind: KindServer}).Error())
}

func TestWrap_PreservesChain(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	err := Wrap(KindNetwork, "server is unreachable", base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "server is unreachable", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(New(KindValidation, "bad input")))

	// Wrapping in plain fmt-style chains still classifies
	inner := New(KindAuthorization, "not allowed")
	outer := errors.Join(errors.New("context"), inner)
	assert.Equal(t, KindAuthorization, KindOf(outer))

	// Unclassified errors default to server
	assert.Equal(t, KindServer, KindOf(errors.New("anything")))
}

func TestIsKind(t *testing.T) {
	err := Newf(KindValidation, "field %s failed validation on %s", "Email", "email")
	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindNetwork))
	assert.Equal(t, "field Email failed validation on email", err.Error())
}
