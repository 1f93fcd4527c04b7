package sharing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := NotFound("resource %s not found", "note/note-1")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindForbidden))
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", Conflict("duplicate"))

	assert.True(t, IsKind(wrapped, KindConflict))
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestStorageUnavailableUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := StorageUnavailable(cause)

	assert.True(t, IsKind(err, KindStorageUnavailable))
	assert.ErrorIs(t, err, cause)
}
