// Package response defines the uniform API envelope and its writers.
//
// Business failures keep HTTP 200: the envelope code is the
// only signal the frontends look at. Validation failures use HTTP 400 with
// a field→message map, auth failures 401/403, everything unanticipated 500.
package response

import (
	"errors"
	"net/http"
	"time"

	"blogapi/internal/errcode"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Envelope is the wire shape of every endpoint's response.
type Envelope struct {
	Code      int       `json:"code"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func envelope(code int, message string, data any) Envelope {
	return Envelope{Code: code, Message: message, Data: data, Timestamp: time.Now()}
}

// OK writes a success envelope with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope(errcode.Success.Code, errcode.Success.Message, data))
}

// OKMessage writes a success envelope with a custom message and no data.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope(errcode.Success.Code, message, nil))
}

// Fail translates any error into the envelope. Business errors keep HTTP
// 200; gorm's record-not-found maps to the generic 404 kind; the rest is
// reduced to a generic internal error with full detail only in the log.
func Fail(c *gin.Context, err error) {
	var be *errcode.Error
	if errors.As(err, &be) {
		c.JSON(http.StatusOK, envelope(be.Code.Code, be.Text(), nil))
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, envelope(errcode.NotFound.Code, errcode.NotFound.Message, nil))
		return
	}
	log.Error("unexpected error", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, envelope(errcode.Internal.Code, errcode.Internal.Message, nil))
}

// BadRequest writes the HTTP 400 shape for binding/validation failures,
// with a field→message map when the error is a validator error.
func BadRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, envelope(errcode.BadRequest.Code, "Validation Failed", fields))
		return
	}
	c.JSON(http.StatusBadRequest, envelope(errcode.BadRequest.Code, err.Error(), nil))
}

// Unauthorized writes a bare 401 envelope.
func Unauthorized(c *gin.Context, code errcode.Code) {
	c.JSON(http.StatusUnauthorized, envelope(code.Code, code.Message, nil))
}
