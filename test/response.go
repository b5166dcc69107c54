package test

import (
	"testing"

	"school-activities-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Message, resp.Msg)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}

// Data 取出 data 字段并断言为对象
func Data(t *testing.T, resp response.ResponseBody) map[string]any {
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp.Data)
	return data
}
