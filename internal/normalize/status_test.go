package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaseStatusMapping(t *testing.T) {
	cases := map[string]string{
		"服務中":      "active",
		"active":   "active",
		"暫停":       "pending",
		"已結案":      "archived",
		"archived": "archived",
		// 子串回退
		"108/05 結案":  "archived",
		"暫停(住院中)":    "pending",
		"服務中-每週三次":   "active",
		// 未知与空值回退默认
		"???": "active",
		"":    "active",
		"  ":  "active",
	}
	for raw, want := range cases {
		require.Equal(t, want, CaseStatuses.Map(raw), "raw %q", raw)
	}
}

func TestCaregiverStatusMapping(t *testing.T) {
	cases := map[string]string{
		"在職":        "active",
		"離職":        "inactive",
		"留職停薪":      "suspended",
		"suspended": "suspended",
		"unknown":   "active",
		"":          "active",
	}
	for raw, want := range cases {
		require.Equal(t, want, CaregiverStatuses.Map(raw), "raw %q", raw)
	}
}
