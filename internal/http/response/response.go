package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps a service error onto the wire. Taxonomy errors
// keep their message; anything else becomes a sanitized 500 with the
// cause logged server-side only.
func RespondAPIError(c *gin.Context, log *logger.Logger, err error) {
	ae := apierr.From(err)
	if ae.Status >= http.StatusInternalServerError {
		if log != nil {
			log.Error("Internal error handling request",
				"path", c.Request.URL.Path,
				"error", err,
			)
		}
		c.JSON(ae.Status, ErrorEnvelope{
			Error: APIError{
				Message: "internal error",
				Code:    ae.Code,
			},
		})
		return
	}
	RespondError(c, ae.Status, ae.Code, ae)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
