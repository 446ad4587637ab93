package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("product not found")

	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidErr("bad", nil)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundErr("missing", cause)))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ConflictErr("dup")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Wrap(errors.New("db down"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))

	wrapped := fmt.Errorf("handler: %w", NotFoundErr("missing", cause))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "missing", PublicMessage(NotFoundErr("missing", nil)))
	assert.Equal(t, defaultPublicMsg, PublicMessage(errors.New("secret detail")))
	assert.Equal(t, defaultPublicMsg, PublicMessage(Wrap(errors.New("secret detail"))))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	nf := NotFoundErr("missing", nil)
	assert.Same(t, nf, Wrap(fmt.Errorf("ctx: %w", nf)))

	cause := errors.New("boom")
	assert.ErrorIs(t, Wrap(cause), cause)
}

func TestError(t *testing.T) {
	assert.Equal(t, "internal: boom", Wrap(errors.New("boom")).Error())
	assert.Equal(t, "invalid: bad", InvalidErr("bad", nil).Error())
	assert.Equal(t, "conflict", (&AppError{Kind: Conflict}).Error())
}
