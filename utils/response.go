package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func JSON200(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// JSONFail answers an application-level failure with the given status code.
func JSONFail(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Status:  "fail",
		Message: message,
		Data:    data,
	})
}

// JSON500 answers an unhandled failure.
func JSON500(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Response{
		Status:  "error",
		Message: message,
		Data:    nil,
	})
}
