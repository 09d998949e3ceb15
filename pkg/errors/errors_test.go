package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrGroupArity, "group must have 2 to 4 patterns")
	assert.Equal(t, ErrGroupArity, err.Code)
	assert.Equal(t, "[GROUP_ARITY] group must have 2 to 4 patterns", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrConfigLoad, "cannot load %s", "relfiles.toml")
	assert.Equal(t, "[CONFIG_LOAD] cannot load relfiles.toml", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, ErrFileAccess, "stat failed")
	assert.Equal(t, "[FILE_ACCESS] stat failed: permission denied", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))

	assert.Nil(t, Wrap(nil, ErrFileAccess, "ignored"))
}

func TestIs(t *testing.T) {
	err := New(ErrGroupArity, "too few patterns")
	assert.True(t, stderrors.Is(err, New(ErrGroupArity, "other message")))
	assert.False(t, stderrors.Is(err, New(ErrConfigLoad, "too few patterns")))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrConfigValid, "bad group")
	assert.True(t, IsErrorCode(err, ErrConfigValid))
	assert.False(t, IsErrorCode(err, ErrGroupArity))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrConfigValid))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrConfigValid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrEditorLaunch, GetErrorCode(New(ErrEditorLaunch, "spawn failed")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrGroupArity, "arity").WithDetail("count", 5)
	assert.Equal(t, 5, err.Details["count"])
}
