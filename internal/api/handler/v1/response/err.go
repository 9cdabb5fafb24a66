package response

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yizeng/campus-events/internal/domain"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = 1

type Err struct {
	Err        error `json:"-"`
	StatusCode int   `json:"-"`
	RetryAfter int   `json:"-"`

	Status    string `json:"status" example:"Not Found"`
	Code      string `json:"code,omitempty" example:"event_not_found"`
	ErrorText string `json:"error,omitempty" example:"event not found"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", e.StatusCode),
			zap.Error(e.Err),
		)
	}
	if e.RetryAfter > 0 {
		ctx.Header("Retry-After", strconv.Itoa(e.RetryAfter))
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}

// FromError picks the status for err by its domain.Kind.
func FromError(err error) *Err {
	de, ok := domain.AsError(err)
	if !ok {
		return ErrInternalServerError(err)
	}

	switch de.Kind {
	case domain.KindValidation, domain.KindBusinessRule:
		return newErr(err, http.StatusBadRequest, de.Code, de.Message)
	case domain.KindNotFound:
		return newErr(err, http.StatusNotFound, de.Code, de.Message)
	case domain.KindConflict:
		return newErr(err, http.StatusConflict, de.Code, de.Message)
	case domain.KindStorageUnavailable:
		e := newErr(err, http.StatusServiceUnavailable, de.Code, de.Message)
		e.RetryAfter = retryAfterSeconds
		return e
	default:
		return ErrInternalServerError(err)
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(err, http.StatusBadRequest, "validation_error", err.Error())
}

func ErrInvalidID(param string, err error) *Err {
	return newErr(err, http.StatusBadRequest, "validation_error", "invalid "+param+" format")
}

// ErrInternalServerError hides err from the client. It is logged by RenderErr.
func ErrInternalServerError(err error) *Err {
	return newErr(err, http.StatusInternalServerError, "internal_error", "internal server error")
}

func newErr(err error, status int, code, text string) *Err {
	return &Err{
		Err:        err,
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       code,
		ErrorText:  text,
	}
}
