package tabular

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	gidPattern           = regexp.MustCompile(`[#&]gid=(\d+)`)
)

// SheetCSVURL 将 Google Sheets 编辑链接转换为 CSV 导出链接
// 从 URL 提取 spreadsheet ID 和工作表 gid（缺省 0）。
func SheetCSVURL(sheetsURL string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(sheetsURL)
	if m == nil {
		return "", fmt.Errorf("invalid Google Sheets URL: %s", sheetsURL)
	}
	spreadsheetID := m[1]

	gid := "0"
	if gm := gidPattern.FindStringSubmatch(sheetsURL); gm != nil {
		gid = gm[1]
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", spreadsheetID, gid), nil
}

// FetchSheetCSV 下载共享表格的 CSV 导出
// 表格必须设置为"知道连接的任何人可以检视"，否则返回 DecodeError。
func FetchSheetCSV(ctx context.Context, csvURL string, logger *zap.Logger) ([]byte, error) {
	client := resty.New().
		SetTimeout(30 * time.Second)

	logger.Info("downloading sheet CSV export", zap.String("url", csvURL))

	resp, err := client.R().SetContext(ctx).Get(csvURL)
	if err != nil {
		return nil, &DecodeError{Msg: "failed to download sheet", Err: err}
	}
	if resp.IsError() {
		return nil, &DecodeError{Msg: fmt.Sprintf(
			"sheet download returned %s (is the sheet shared as anyone-with-link?)", resp.Status())}
	}
	return resp.Body(), nil
}
