package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind 规范化字段的目标类型
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindStatus
)

// FieldSpec 一个规范化字段的映射与类型规则
// Aliases 按优先级排列：来源表头中第一个"出现"的别名生效（即使其值是空字符串）。
type FieldSpec struct {
	Name    string   // canonical 字段名
	Aliases []string // 来源表头别名（中文/英文/新旧制混排）
	Kind    Kind

	// DefaultToday 仅对 KindDate 生效：缺失时填当天日期而非空字符串
	DefaultToday bool
	// NoDefault 缺失且无默认值可用时报 NormalizationError（当前两套字段表均未启用）
	NoDefault bool
}

// NormalizationError 必填字段在所有别名耗尽后仍无值且无默认值
type NormalizationError struct {
	Field string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("field %q has no resolvable value and no default", e.Field)
}

// Fields 规范化输出：canonical 字段名 -> 规范化标量（string/int/float64/bool）
type Fields map[string]any

func (f Fields) String(name string) string {
	v, _ := f[name].(string)
	return v
}

func (f Fields) Int(name string) int {
	v, _ := f[name].(int)
	return v
}

func (f Fields) Float(name string) float64 {
	v, _ := f[name].(float64)
	return v
}

func (f Fields) Bool(name string) bool {
	v, _ := f[name].(bool)
	return v
}

// Row 解码后的一行：表头标签 -> 原始单元格字符串
// key 不存在表示该单元格在来源中缺失。
type Row map[string]string

// Apply 按字段表规范化一行
// now 用于日期字段的"当天"默认值，由调用方注入以便测试。
func Apply(row Row, specs []FieldSpec, statuses StatusTable, now time.Time) (Fields, error) {
	out := make(Fields, len(specs))
	for _, spec := range specs {
		raw, present := resolve(row, spec.Aliases)
		if !present && spec.NoDefault {
			return nil, &NormalizationError{Field: spec.Name}
		}
		out[spec.Name] = coerce(raw, present, spec, statuses, now)
	}
	return out, nil
}

// resolve 别名链解析：取第一个出现的别名的值
// 刻意使用"第一个出现"而非"第一个非空"——上游表格里空字符串是有意义的清空。
func resolve(row Row, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok {
			return v, true
		}
	}
	return "", false
}

func coerce(raw string, present bool, spec FieldSpec, statuses StatusTable, now time.Time) any {
	switch spec.Kind {
	case KindInt:
		// 解析失败或缺失一律回退到 0，绝不让 NaN 类值进入文档
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0
		}
		return int(f)
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return float64(0)
		}
		return f
	case KindBool:
		v := strings.TrimSpace(raw)
		return v == "是" || v == "true" || v == "TRUE"
	case KindDate:
		return coerceDate(raw, present, spec.DefaultToday, now)
	case KindStatus:
		return statuses.Map(raw)
	default:
		return strings.TrimSpace(raw)
	}
}

func coerceDate(raw string, present bool, defaultToday bool, now time.Time) string {
	v := strings.TrimSpace(raw)
	if !present || v == "" {
		if defaultToday {
			return now.Format("2006-01-02")
		}
		return ""
	}
	if serial, ok := parseDateSerial(v); ok {
		return FromDateSerial(serial).Format("2006-01-02")
	}
	// 已是字符串日期：原样透传
	return v
}

// dateSerialEpoch 表格日期序号的第 0 天
var dateSerialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// minDateSerial 小于该值的数字不视作日期序号（避免把 "1" 这类文本当 1900 年的日期）
const minDateSerial = 1000

// FromDateSerial 将表格日期序号转换为日历日期（序号 0 = 1899-12-30）
// 序号 44927 对应 2023-01-01。
func FromDateSerial(serial float64) time.Time {
	return dateSerialEpoch.AddDate(0, 0, int(serial))
}

func parseDateSerial(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < minDateSerial {
		return 0, false
	}
	return f, true
}
