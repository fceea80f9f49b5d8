package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanDropsUnsupportedValues(t *testing.T) {
	in := map[string]any{
		"name":   "林阿嬤",
		"age":    82,
		"height": math.NaN(),
		"weight": math.Inf(1),
		"note":   nil,
		"empty":  "",
		"zero":   0,
		"flag":   false,
	}
	out := Clean(in)

	require.Equal(t, "林阿嬤", out["name"])
	require.Equal(t, 82, out["age"])
	// 空字符串/零值/false 是合法标量，保留
	require.Contains(t, out, "empty")
	require.Contains(t, out, "zero")
	require.Contains(t, out, "flag")
	// nil 与非有限浮点数剔除
	require.NotContains(t, out, "height")
	require.NotContains(t, out, "weight")
	require.NotContains(t, out, "note")
}

func TestCleanNestedStructures(t *testing.T) {
	in := map[string]any{
		"contact": map[string]any{
			"phone": "02-1234-5678",
			"fax":   nil,
		},
		"emptyMap": map[string]any{"x": nil},
		"tags":     []any{"獨居", nil, math.NaN(), "長照2.0"},
		"emptyArr": []any{nil},
	}
	out := Clean(in)

	require.Equal(t, map[string]any{"phone": "02-1234-5678"}, out["contact"])
	require.Equal(t, []any{"獨居", "長照2.0"}, out["tags"])
	// 清理后为空的嵌套结构整体剔除
	require.NotContains(t, out, "emptyMap")
	require.NotContains(t, out, "emptyArr")
}
