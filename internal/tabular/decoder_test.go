package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "個案資料"))
	require.NoError(t, f.SetCellValue("個案資料", "A1", "姓名"))
	require.NoError(t, f.SetCellValue("個案資料", "B1", "年齡"))
	require.NoError(t, f.SetCellValue("個案資料", "C1", "上次訪視"))
	require.NoError(t, f.SetCellValue("個案資料", "A2", "林阿嬤"))
	require.NoError(t, f.SetCellValue("個案資料", "B2", 82))
	require.NoError(t, f.SetCellValue("個案資料", "C2", 44927)) // 日期序号
	require.NoError(t, f.SetCellValue("個案資料", "A3", "王伯伯"))
	// B3 留空

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestDecodeXLSX(t *testing.T) {
	rows, err := DecodeXLSX(buildWorkbook(t), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "林阿嬤", rows[0]["姓名"])
	require.Equal(t, "82", rows[0]["年齡"])
	// 原始单元格值：日期保持序号，不被格式化成文本
	require.Equal(t, "44927", rows[0]["上次訪視"])

	// 空单元格不出现在行映射里
	require.Equal(t, "王伯伯", rows[1]["姓名"])
	_, present := rows[1]["年齡"]
	require.False(t, present)
}

func TestDecodeXLSXNamedSheet(t *testing.T) {
	rows, err := DecodeXLSX(buildWorkbook(t), "個案資料")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, err = DecodeXLSX(buildWorkbook(t), "不存在")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeXLSXGarbageInput(t *testing.T) {
	_, err := DecodeXLSX(strings.NewReader("this is not a spreadsheet"), "")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeCSV(t *testing.T) {
	input := "\uFEFF姓名,年齡,電話\n林阿嬤,82,02-1234-5678\n王伯伯,75,\n,,\n"
	rows, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	// 整行为空的行被跳过
	require.Len(t, rows, 2)

	// BOM 被剥离，首列表头可正常命中
	require.Equal(t, "林阿嬤", rows[0]["姓名"])
	require.Equal(t, "82", rows[0]["年齡"])

	// CSV 的空单元格"出现但为空"
	v, present := rows[1]["電話"]
	require.True(t, present)
	require.Equal(t, "", v)
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	input := "姓名,年齡,電話\n林阿嬤,82\n王伯伯,75,02-8765-4321,多余列\n"
	rows, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 短行：缺失的列不出现
	_, present := rows[0]["電話"]
	require.False(t, present)
	// 长行：多余单元格被忽略
	require.Equal(t, "02-8765-4321", rows[1]["電話"])
}

func TestDecodeCSVTrimsCells(t *testing.T) {
	input := " 姓名 , 年齡 \n  林阿嬤  , 82 \n"
	rows, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "林阿嬤", rows[0]["姓名"])
	require.Equal(t, "82", rows[0]["年齡"])
}

func TestDecodeCSVEmpty(t *testing.T) {
	rows, err := DecodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rows)
}
