package easynews_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/easynews"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := easynews.Errorf(easynews.EUNAVAILABLE, "article %q unavailable", "k10014257381000")

	assert.Equal(t, easynews.EUNAVAILABLE, easynews.ErrorCode(err))
	assert.Equal(t, "article \"k10014257381000\" unavailable", easynews.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch page: %w", easynews.Errorf(easynews.EUNAVAILABLE, "HTTP 404"))

	assert.Equal(t, easynews.EUNAVAILABLE, easynews.ErrorCode(err))
	assert.Equal(t, "HTTP 404", easynews.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, easynews.EINTERNAL, easynews.ErrorCode(err))
	assert.Equal(t, "Internal error.", easynews.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, easynews.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, easynews.ErrorMessage(nil))
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch page: %w", easynews.Errorf(easynews.EUNAVAILABLE, "HTTP 404 for %s", "http://example.com"))

	assert.Equal(t, "fetch page: HTTP 404 for http://example.com", err.Error())
}
