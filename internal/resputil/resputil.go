// Package resputil provides the uniform JSON response envelope used by every
// handler. Success and error payloads share the same shape so clients can
// always unmarshal the outer structure before inspecting the code.
package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

// FieldError pinpoints one invalid field of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the data payload of a ValidationFailed response.
type ValidationErrors struct {
	Fields []FieldError `json:"fields"`
}

// Success writes a 200 response with the given data.
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code: OK,
		Data: data,
		Msg:  "",
	})
}

// HTTPError writes an error response with an explicit HTTP status.
func HTTPError(c *gin.Context, statusCode int, msg string, code ErrorCode) {
	c.JSON(statusCode, Response[any]{
		Code: code,
		Data: nil,
		Msg:  msg,
	})
}

// Error derives the HTTP status from the error code's leading digits.
func Error(c *gin.Context, msg string, code ErrorCode) {
	switch {
	case code >= 40000 && code < 40100:
		HTTPError(c, http.StatusBadRequest, msg, code)
	case code >= 40400 && code < 40500:
		HTTPError(c, http.StatusNotFound, msg, code)
	default:
		HTTPError(c, http.StatusInternalServerError, msg, code)
	}
}

// BadRequestError writes a 400 with the generic invalid-request code.
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// NotFoundError writes a 404 for a missing entity.
func NotFoundError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusNotFound, msg, NotFound)
}

// InvalidRequestWithFields writes a 400 carrying per-field validation
// errors, so the submitter gets an actionable list instead of a bare
// message.
func InvalidRequestWithFields(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, Response[ValidationErrors]{
		Code: ValidationFailed,
		Data: ValidationErrors{Fields: fields},
		Msg:  "validation failed",
	})
}
