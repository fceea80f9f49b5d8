// import-caregivers 从 Excel 导入居服員
// 用法: import-caregivers [檔案路徑] [工作表名稱]
// 以員工編號作为文档 ID（upsert）：同一員工重复导入覆盖旧文档，不会产生重复。
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

const defaultFilePath = "data/caregivers.xlsx"

func main() {
	filePath := defaultFilePath
	if len(os.Args) > 1 {
		filePath = os.Args[1]
	}
	sheetName := ""
	if len(os.Args) > 2 {
		sheetName = os.Args[2]
	}

	_, log, st, err := cli.Setup("import-caregivers")
	if err != nil {
		fmt.Fprintf(os.Stderr, "import-caregivers: %v\n", err)
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
	summary, err := runner.Run(context.Background(), rows, importer.CaregiverEntity, importer.Options{
		Mode: importer.ModeBatched,
	})
	log.Info("import summary",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Int("batches", summary.Batches))
	if err != nil {
		log.Error("import failed", zap.Error(err))
		os.Exit(1)
	}
}
