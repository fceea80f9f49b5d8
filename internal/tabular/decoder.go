package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"homecare-data/internal/normalize"
)

// DecodeError 输入流不是可识别的表格格式，或指定的工作表不存在
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode failed: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("decode failed: %s", e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeXLSX 解析二进制表格容器为行映射序列
// 第一行作为表头；sheet 为空时取第一个工作表。
// 取原始单元格值（RawCellValue），日期单元格保持数字序号而不是格式化文本，
// 序号到日历日期的转换留给规范化阶段。
// 空单元格不会出现在行映射里，对齐来源管线 sheet_to_json 的"缺失"语义。
func DecodeXLSX(r io.Reader, sheet string) ([]normalize.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &DecodeError{Msg: "not a valid spreadsheet", Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, &DecodeError{Msg: "spreadsheet has no sheets"}
		}
	} else {
		found := false
		for _, name := range f.GetSheetList() {
			if name == sheet {
				found = true
				break
			}
		}
		if !found {
			return nil, &DecodeError{Msg: fmt.Sprintf("sheet %q not found", sheet)}
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &DecodeError{Msg: "failed to read rows", Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	out := make([]normalize.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := normalize.Row{}
		for i, h := range headers {
			if h == "" || i >= len(cells) {
				continue
			}
			if v := strings.TrimSpace(cells[i]); v != "" {
				row[h] = v
			}
		}
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	return out, nil
}

// DecodeCSV 解析分隔文本为行映射序列
// 输入必须是 UTF-8；容忍并剥离 BOM，单元格两端空白会被裁剪，整行为空的行跳过。
// 与 XLSX 不同，CSV 的每个表头列都出现在行映射里（空单元格是"出现但为空"），
// 这让别名优先级规则里"空字符串也算出现"可以生效。
func DecodeCSV(r io.Reader) ([]normalize.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 容忍参差不齐的行

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &DecodeError{Msg: "not valid CSV", Err: err}
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	out := make([]normalize.Row, 0, len(records)-1)
	for _, cells := range records[1:] {
		row := normalize.Row{}
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(cells) {
				continue
			}
			v := strings.TrimSpace(cells[i])
			row[h] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}
