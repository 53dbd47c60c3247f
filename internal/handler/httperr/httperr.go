package httperr

import (
	"net/http"

	"github.com/Fabri-com/esteticas/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds is advertised on 503 responses caused by transient storage failures.
const RetryAfterSeconds = "2"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// the cause stays on c.Errors for the logger
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError maps the booking error taxonomy onto HTTP. Anything outside it is a 500.
func FromError(c *gin.Context, err error) {
	var (
		verr *errs.ValidationError
		nerr *errs.NotFoundError
		cerr *errs.ConflictError
	)
	switch {
	case errs.As(err, &verr):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", FieldDetail{Field: verr.Field, Reason: verr.Reason})
	case errs.As(err, &nerr):
		AbortWithError(c, http.StatusNotFound, err, "Not found", FieldDetail{Reason: nerr.Error()})
	case errs.As(err, &cerr):
		AbortWithError(c, http.StatusConflict, err, cerr.Reason, nil)
	case errs.Is(err, errs.ErrTransientStorage):
		c.Header("Retry-After", RetryAfterSeconds)
		AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// BindError reports a request that failed gin binding or tag validation.
func BindError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", FieldDetail{Reason: err.Error()})
}
