package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mlipatova/airgate/internal/apperr"
)

// writeError maps any error to its HTTP status and the structured payload
// {"code": <kind>, "error": <message>}. Unknown errors surface as a generic
// internal error; the original cause is attached to the context for logging.
func writeError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus(), gin.H{
		"code":  appErr.Kind,
		"error": appErr.Message,
	})
}
