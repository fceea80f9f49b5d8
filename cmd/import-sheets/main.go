// import-sheets 从共享的 Google Sheets 链接导入个案
// 用法: import-sheets <sheets 連結>
// 把编辑链接转成 CSV 导出链接下载后按 batched 模式导入。
// 表格必须设置为「知道連結的任何人」可以檢視。
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"homecare-data/internal/cli"
	"homecare-data/internal/importer"
	"homecare-data/internal/tabular"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import-sheets <Google Sheets URL>")
		os.Exit(1)
	}
	sheetsURL := os.Args[1]

	_, log, st, err := cli.Setup("import-sheets")
	if err != nil {
		fmt.Fprintf(os.Stderr, "import-sheets: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	csvURL, err := tabular.SheetCSVURL(sheetsURL)
	if err != nil {
		log.Error("invalid sheets URL", zap.Error(err))
		os.Exit(1)
	}

	ctx := context.Background()
	body, err := tabular.FetchSheetCSV(ctx, csvURL, log)
	if err != nil {
		log.Error("failed to download sheet", zap.Error(err))
		os.Exit(1)
	}

	rows, err := tabular.DecodeCSV(bytes.NewReader(body))
	if err != nil {
		log.Error("failed to decode CSV", zap.Error(err))
		os.Exit(1)
	}
	log.Info("rows decoded", zap.Int("count", len(rows)))

	if len(rows) == 0 {
		log.Warn("no rows to import")
		os.Exit(0)
	}

	runner := importer.NewRunner(st, log)
	summary, err := runner.Run(ctx, rows, importer.CaseEntity, importer.Options{
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
