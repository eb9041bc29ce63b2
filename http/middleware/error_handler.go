package middlewares

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/delcom/angkasa-api/infra"
	"github.com/delcom/angkasa-api/utils"
)

// ErrorMiddleware is the single translation point from errors to the
// response envelope. Handlers push errors with c.Error and return without
// writing a body.
func ErrorMiddleware(logger *infra.LoggerClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			utils.JSONFail(c, appErr.Code, appErr.Message, appErr.Data)
			return
		}

		logger.ErrorWithContextf(c.Request.Context(), err, "[HTTP] Unhandled error on %s %s", c.Request.Method, c.Request.URL.Path)
		utils.JSON500(c, err.Error())
	}
}
