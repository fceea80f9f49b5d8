package domain

import "strconv"

// 文档取值辅助：JSON 反解析后数字是 float64，历史文档里还可能是字符串。
// keys 按优先级排列（英文 key 在前，中文旧 key 兜底）。

func docString(data map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := data[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

func docInt(data map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := data[k].(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return int(f)
			}
		}
	}
	return 0
}

func docFloat(data map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := data[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func docBool(data map[string]any, keys ...string) bool {
	for _, k := range keys {
		switch v := data[k].(type) {
		case bool:
			return v
		case string:
			if v == "是" || v == "true" || v == "TRUE" {
				return true
			}
		}
	}
	return false
}
