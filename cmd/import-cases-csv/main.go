// import-cases-csv 从 CSV 批量导入个案
// 用法: import-cases-csv [檔案路徑]
// batched 模式：凑满 500 筆提交一个原子批次，首个失败批次终止运行。
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

const defaultFilePath = "data/cases.csv"

func main() {
	filePath := defaultFilePath
	if len(os.Args) > 1 {
		filePath = os.Args[1]
	}

	_, log, st, err := cli.Setup("import-cases-csv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "import-cases-csv: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("reading CSV", zap.String("file", filePath))

	f, err := os.Open(filePath)
	if err != nil {
		log.Error("failed to open file", zap.String("file", filePath), zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()

	rows, err := tabular.DecodeCSV(f)
	if err != nil {
		log.Error("failed to decode CSV", zap.Error(err))
		os.Exit(1)
	}
	log.Info("rows decoded", zap.Int("count", len(rows)))

	runner := importer.NewRunner(st, log)
	summary, err := runner.Run(context.Background(), rows, importer.CaseEntity, importer.Options{
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
