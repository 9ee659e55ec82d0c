package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All endpoints answer with a flat {success, message, ...} JSON body. Extra
// payload fields (user, task, id) are merged in at the top level so the wire
// shape stays what the browser client expects.

func Success(c *gin.Context, status int, message string, extra gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, envelope(true, message, nil, extra))
}

func Fail(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, envelope(false, message, details, nil))
}

// AbortFail is Fail for middleware: it also stops the handler chain.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope(false, message, nil, nil))
}

func envelope(success bool, message string, details interface{}, extra gin.H) gin.H {
	body := gin.H{"success": success, "message": message}
	if details != nil {
		body["error"] = details
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}
