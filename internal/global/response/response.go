package response

import (
	"errors"
	"net/http"

	"school-activities-system/config"
	"school-activities-system/internal/global/logger"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体，Code 与 HTTP 状态码一致
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: http.StatusOK,
		Msg:  "OK",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// Origin 只在 debug 模式下暴露
	if e.Origin != "" && config.Get().Mode == config.ModeDebug {
		body.Data = gin.H{"origin": e.Origin}
	}
	c.JSON(int(e.Code), body)
}

// Recovery 捕获 handler panic，统一转为 500 响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recovered",
			"panic", r,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		err, ok := r.(error)
		if !ok {
			Fail(c, ErrInternal)
		} else {
			Fail(c, ErrInternal.WithOrigin(err))
		}
		c.Abort()
	}
}
