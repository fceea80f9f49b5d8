// import-cases 从 Excel 全量导入个案
// 用法: import-cases [檔案路徑] [工作表名稱]
// 先清空 cases 集合再逐筆写入（isolated 模式：单筆失败不中断，最后汇总）。
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"homecare-data/internal/cli"
	"homecare-data/internal/importer"
	"homecare-data/internal/tabular"
)

const defaultFilePath = "data/cases.xlsx"

func main() {
	filePath := defaultFilePath
	if len(os.Args) > 1 {
		filePath = os.Args[1]
	}
	sheetName := ""
	if len(os.Args) > 2 {
		sheetName = os.Args[2]
	}

	_, log, st, err := cli.Setup("import-cases")
	if err != nil {
		fmt.Fprintf(os.Stderr, "import-cases: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("reading spreadsheet", zap.String("file", filePath), zap.String("sheet", sheetName))

	f, err := os.Open(filePath)
	if err != nil {
		log.Error("failed to open file", zap.String("file", filePath), zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()

	rows, err := tabular.DecodeXLSX(f, sheetName)
	if err != nil {
		log.Error("failed to decode spreadsheet", zap.Error(err))
		os.Exit(1)
	}
	log.Info("rows decoded", zap.Int("count", len(rows)))

	if len(rows) == 0 {
		log.Warn("no rows to import")
		os.Exit(0)
	}

	runner := importer.NewRunner(st, log)
	summary, err := runner.Run(context.Background(), rows, importer.CaseEntity, importer.Options{
		Mode:  importer.ModeIsolated,
		Reset: true,
	})
	logSummary(log, summary)
	if err != nil {
		log.Error("import failed", zap.Error(err))
		os.Exit(1)
	}
}

func logSummary(log *zap.Logger, s importer.Summary) {
	log.Info("import summary",
		zap.Int("total", s.Total),
		zap.Int("succeeded", s.Succeeded),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
		zap.Int("old_documents_deleted", s.Deleted))
}
