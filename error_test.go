package postport_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/postport"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := postport.Errorf(postport.ENOTFOUND, "directory %q not found", "exports")

	assert.Equal(t, postport.ENOTFOUND, postport.ErrorCode(err))
	assert.Equal(t, "directory \"exports\" not found", postport.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, postport.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, postport.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("parse 2019-05-10_a.html: %w", postport.Errorf(postport.EINVALID, "bad date"))

	assert.Equal(t, postport.EINVALID, postport.ErrorCode(err))
	assert.Equal(t, "bad date", postport.ErrorMessage(err))
}

func TestErrorCode_OtherError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, postport.EINTERNAL, postport.ErrorCode(err))
	assert.Equal(t, "disk full", postport.ErrorMessage(err))
}
