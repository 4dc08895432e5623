package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonthIndex(t *testing.T) {
	require.Equal(t, 1, MonthIndex("January"))
	require.Equal(t, 6, MonthIndex("June"))
	require.Equal(t, 12, MonthIndex("December"))

	// 未知月份排在同年最后
	require.Equal(t, 0, MonthIndex(""))
	require.Equal(t, 0, MonthIndex("Winter"))
	require.Equal(t, 0, MonthIndex("jan"))
}

func TestPasswordEncryptCompare(t *testing.T) {
	hash := PasswordEncrypt("pw123")
	require.NotEqual(t, "pw123", hash)
	require.True(t, PasswordCompare("pw123", hash))
	require.False(t, PasswordCompare("pw124", hash))
}
