package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	notFound := NotFound("pitch not found")
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.Equal(t, "pitch not found", notFound.Message)
	assert.ErrorIs(t, notFound, ErrNotFound)

	badReq := BadRequest("pitch already submitted")
	assert.Equal(t, http.StatusBadRequest, badReq.Code)
	assert.ErrorIs(t, badReq, ErrBadRequest)

	conflict := Conflict("business name taken")
	assert.Equal(t, http.StatusConflict, conflict.Code)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	unprocessable := Unprocessable("invalid payload")
	assert.Equal(t, http.StatusUnprocessableEntity, unprocessable.Code)

	unauth := Unauthorized("token missing")
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)

	forbidden := Forbidden("admin only")
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "db down", internal.Error())
}

func TestAppError_ErrorMessageFallback(t *testing.T) {
	e := &AppError{Code: http.StatusBadRequest, Message: "plain message"}
	assert.Equal(t, "plain message", e.Error())
}
