package fault

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByReasonAndKind(t *testing.T) {
	err := fmt.Errorf("storing element: %w", NotFound(IVT0300E_ELEMENT_NOT_FOUND, "element %s not found", "leaf1"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.True(t, errors.Is(err, &Fault{Reason: IVT0300E_ELEMENT_NOT_FOUND}))
	assert.False(t, errors.Is(err, &Fault{Reason: IVT0100E_GROUP_NOT_FOUND}))
	assert.Equal(t, "storing element: element leaf1 not found", err.Error())
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	f := UniqueViolation(IVT0307E_ELEMENT_NAME_ALREADY_IN_USE, "name in use")
	f.Cause = cause
	assert.True(t, errors.Is(f, cause))
}

func TestAsAndKindOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict(IVT0341E_ELEMENT_IMAGE_ACTIVE, "image active"))
	f, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, IVT0341E_ELEMENT_IMAGE_ACTIVE, f.Reason)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, KindUniqueViolation.HTTPStatus())
	assert.Equal(t, http.StatusConflict, KindConflict.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindInvalid.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Kind("").HTTPStatus())
}

func TestErrorFallsBackToReason(t *testing.T) {
	f := &Fault{Kind: KindNotFound, Reason: IVT0200E_IMAGE_NOT_FOUND}
	assert.Equal(t, "IVT0200E_IMAGE_NOT_FOUND", f.Error())
}
