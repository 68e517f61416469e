package response

import (
	"net/http"

	"masterchef-rewards/pkg/errno"

	"github.com/gin-gonic/gin"
)

// Response defines the standard JSON structure
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"msg"`
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id,omitempty"`
}

// RequestIDKey 由 server 的 request-id 中间件写入
const RequestIDKey = "request_id"

// Success returns a success response with data
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{} // Return empty object instead of null
	}
	c.JSON(http.StatusOK, Response{
		Code:      errno.OK.Code,
		Message:   errno.OK.Message,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

// Error returns an error response
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, gin.H{})
}

// ErrorWithData 业务失败但仍有部分结果 (例如提案已提交、记录查询失败)
func ErrorWithData(c *gin.Context, err error, data interface{}) {
	code, msg := errno.Decode(err)
	c.JSON(http.StatusOK, Response{
		Code:      code,
		Message:   msg,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

// Abort stops the chain with a non-200 status, used by middlewares.
func Abort(c *gin.Context, status int, err error) {
	code, msg := errno.Decode(err)
	c.AbortWithStatusJSON(status, Response{
		Code:      code,
		Message:   msg,
		Data:      gin.H{},
		RequestID: c.GetString(RequestIDKey),
	})
}
