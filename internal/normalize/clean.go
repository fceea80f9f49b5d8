package normalize

import "math"

// Clean 递归清理文档，替代来源里 JSON 序列化再反解析的写法：
// 去掉 nil、NaN/Inf 和清理后为空的嵌套结构，保证文档只含普通标量。
// 参考存储会拒绝带未支持占位值的文档。
func Clean(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		cleaned, keep := cleanValue(v)
		if keep {
			out[k] = cleaned
		}
	}
	return out
}

func cleanValue(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, false
		}
		return val, true
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return f, true
	case map[string]any:
		cleaned := Clean(val)
		if len(cleaned) == 0 {
			return nil, false
		}
		return cleaned, true
	case []any:
		cleaned := make([]any, 0, len(val))
		for _, item := range val {
			if c, keep := cleanValue(item); keep {
				cleaned = append(cleaned, c)
			}
		}
		if len(cleaned) == 0 {
			return nil, false
		}
		return cleaned, true
	default:
		return v, true
	}
}
