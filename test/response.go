package test

import (
	"encoding/json"
	"testing"

	"lab-website-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Message, resp.Msg)
}

// CodeEqual 只比较错误码，用于带 WithTips 动态消息的错误
func CodeEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}

// DecodeData 把响应 Data 再解析到目标结构，便于断言字段
func DecodeData(t *testing.T, resp response.ResponseBody, out any) {
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
