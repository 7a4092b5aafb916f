package response

import (
	"errors"
	"net/http"

	"lnurl-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// StatusError is the wire value LNURL clients switch on.
const StatusError = "ERROR"

// ErrorBody is the uniform error envelope: {"status":"ERROR","reason":...}.
type ErrorBody struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// OK sends a 200 response with the raw protocol payload. LNURL clients expect
// the protocol object at the top level, so there is no envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// LnurlError sends an in-band protocol error. The pay-flow endpoints always
// answer HTTP 200; the client reads status/reason instead of the status code.
func LnurlError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, toBody(err))
}

// Error sends an error response using the AppError's HTTP status. Used by the
// card/withdraw surface, where validation maps to 4xx and transport or empty
// ledger responses map to 5xx.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{
			Status: StatusError,
			Reason: appErr.Reason,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Status: StatusError,
		Reason: "Internal server error",
	})
}

func toBody(err error) ErrorBody {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return ErrorBody{Status: StatusError, Reason: appErr.Reason}
	}
	return ErrorBody{Status: StatusError, Reason: "Internal server error"}
}
