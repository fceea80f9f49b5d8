package normalize

import "strings"

// StatusTable 自由文本/本地化状态到三值枚举的映射
// 查找顺序：精确匹配 -> 子串匹配 -> 默认值。
type StatusTable struct {
	Exact    map[string]string
	Contains []StatusRule // 按声明顺序尝试
	Default  string
}

// StatusRule 子串回退规则
type StatusRule struct {
	Substring string
	Status    string
}

// Map 将原始状态字符串映射为 canonical 状态
func (t StatusTable) Map(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return t.Default
	}
	if v, ok := t.Exact[s]; ok {
		return v
	}
	for _, rule := range t.Contains {
		if strings.Contains(s, rule.Substring) {
			return rule.Status
		}
	}
	return t.Default
}

// CaseStatuses 个案状态映射（服務中/暫停/已結案 -> active/pending/archived）
var CaseStatuses = StatusTable{
	Exact: map[string]string{
		"服務中":      "active",
		"active":   "active",
		"暫停":       "pending",
		"pending":  "pending",
		"已結案":      "archived",
		"archived": "archived",
	},
	Contains: []StatusRule{
		{Substring: "服務中", Status: "active"},
		{Substring: "暫停", Status: "pending"},
		{Substring: "結案", Status: "archived"},
	},
	Default: "active",
}

// CaregiverStatuses 居服員在職状态映射（在職/離職/留職停薪 -> active/inactive/suspended）
var CaregiverStatuses = StatusTable{
	Exact: map[string]string{
		"在職":        "active",
		"active":    "active",
		"離職":        "inactive",
		"inactive":  "inactive",
		"留職停薪":      "suspended",
		"suspended": "suspended",
	},
	Default: "active",
}
