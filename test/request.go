package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"school-activities-system/internal/global/jwt"
	"school-activities-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest 直接驱动单个 handler，路径参数通过 params 注入
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, method, target string, params gin.Params, request any) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body io.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	}
	c.Request = httptest.NewRequest(method, target, body)
	c.Params = params

	handlerFunc(c)

	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoAuthedRequest 同 DoRequest，额外注入令牌 payload，跳过 Auth 中间件
func DoAuthedRequest(t *testing.T, handlerFunc gin.HandlerFunc, method, target string, params gin.Params, payload *jwt.Claims, request any) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body io.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	}
	c.Request = httptest.NewRequest(method, target, body)
	c.Params = params
	c.Set("payload", payload)

	handlerFunc(c)

	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}
