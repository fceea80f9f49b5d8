// create-template 生成个案导入範本 Excel（含三筆示例数据）
// 用法: create-template [輸出路徑]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"homecare-data/internal/tabular"
)

const defaultOutputPath = "data/cases-template.xlsx"

var sampleRows = []map[string]any{
	{
		"姓名": "林阿嬤", "性別": "女", "年齡": 82,
		"電話": "0912-345-678", "地址": "台北市士林區中正路123號",
		"狀態": "服務中", "照顧等級": "CMS 4級", "居服員": "張大美",
		"上次訪視": "2025/12/15", "類別": "居家照顧",
	},
	{
		"姓名": "王伯伯", "性別": "男", "年齡": 78,
		"電話": "0922-333-444", "地址": "台北市北投區大業路456號",
		"狀態": "服務中", "照顧等級": "CMS 6級", "居服員": "李小明",
		"上次訪視": "2025/12/10", "類別": "居家照顧",
	},
	{
		"姓名": "陳張女士", "性別": "女", "年齡": 88,
		"電話": "0933-555-666", "地址": "台北市中山區北安路789號",
		"狀態": "暫停", "照顧等級": "CMS 5級", "居服員": "王美麗",
		"上次訪視": "2025/12/01", "類別": "居家照顧",
	},
}

func main() {
	outputPath := defaultOutputPath
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	data, err := tabular.GenerateCaseTemplate(sampleRows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create-template: %v\n", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "create-template: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "create-template: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("template written to %s\n", outputPath)
}
