package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestResolveFirstPresentAliasWins(t *testing.T) {
	specs := []FieldSpec{
		{Name: "phone", Aliases: []string{"電話", "聯絡電話", "phone"}},
	}

	// 高优先级别名即使是空字符串也胜过低优先级的非空值
	row := Row{"電話": "", "聯絡電話": "02-1234-5678"}
	fields, err := Apply(row, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "", fields.String("phone"))

	// 高优先级别名缺失时回退
	row = Row{"聯絡電話": "02-1234-5678"}
	fields, err = Apply(row, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "02-1234-5678", fields.String("phone"))

	// 全部缺失时得到空字符串默认值
	fields, err = Apply(Row{}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "", fields.String("phone"))
}

func TestNumericCoercion(t *testing.T) {
	specs := []FieldSpec{
		{Name: "age", Aliases: []string{"年齡"}, Kind: KindInt},
		{Name: "height", Aliases: []string{"身高"}, Kind: KindFloat},
	}

	fields, err := Apply(Row{"年齡": "82", "身高": "155.5"}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, 82, fields.Int("age"))
	require.Equal(t, 155.5, fields.Float("height"))

	// 解析失败回退 0，不产生 NaN
	fields, err = Apply(Row{"年齡": "八十二", "身高": "unknown"}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, 0, fields.Int("age"))
	require.Equal(t, float64(0), fields.Float("height"))

	// 缺失回退 0
	fields, err = Apply(Row{}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, 0, fields.Int("age"))
}

func TestBoolCoercion(t *testing.T) {
	specs := []FieldSpec{
		{Name: "isIndigenous", Aliases: []string{"原住民"}, Kind: KindBool},
	}

	for _, truthy := range []string{"是", "true", "TRUE"} {
		fields, err := Apply(Row{"原住民": truthy}, specs, CaregiverStatuses, testNow)
		require.NoError(t, err)
		require.True(t, fields.Bool("isIndigenous"), "token %q should be truthy", truthy)
	}

	for _, falsy := range []string{"否", "no", "1", "yes", ""} {
		fields, err := Apply(Row{"原住民": falsy}, specs, CaregiverStatuses, testNow)
		require.NoError(t, err)
		require.False(t, fields.Bool("isIndigenous"), "token %q should be falsy", falsy)
	}
}

func TestDateSerialConversion(t *testing.T) {
	// 序号 44927 = 1899-12-30 + 44927 天 = 2023-01-01
	require.Equal(t, "2023-01-01", FromDateSerial(44927).Format("2006-01-02"))

	specs := []FieldSpec{
		{Name: "birthday", Aliases: []string{"生日"}, Kind: KindDate},
	}
	fields, err := Apply(Row{"生日": "44927"}, specs, CaregiverStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "2023-01-01", fields.String("birthday"))
}

func TestDateStringPassthrough(t *testing.T) {
	specs := []FieldSpec{
		{Name: "onboardDate", Aliases: []string{"到職日"}, Kind: KindDate},
	}
	fields, err := Apply(Row{"到職日": "2023/01/15"}, specs, CaregiverStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "2023/01/15", fields.String("onboardDate"))
}

func TestDateDefaults(t *testing.T) {
	specs := []FieldSpec{
		{Name: "lastVisit", Aliases: []string{"上次訪視"}, Kind: KindDate, DefaultToday: true},
		{Name: "resignationDate", Aliases: []string{"離職日"}, Kind: KindDate},
	}
	fields, err := Apply(Row{}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "2025-06-15", fields.String("lastVisit"))
	require.Equal(t, "", fields.String("resignationDate"))
}

func TestNoDefaultFieldMissing(t *testing.T) {
	specs := []FieldSpec{
		{Name: "recordId", Aliases: []string{"紀錄編號"}, NoDefault: true},
	}
	_, err := Apply(Row{}, specs, CaseStatuses, testNow)
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
	require.Equal(t, "recordId", normErr.Field)

	// 出现即可，空字符串也算有值
	_, err = Apply(Row{"紀錄編號": ""}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.False(t, errors.As(err, &normErr))
}

func TestTrimStringFields(t *testing.T) {
	specs := []FieldSpec{
		{Name: "name", Aliases: []string{"姓名"}},
	}
	fields, err := Apply(Row{"姓名": "  林阿嬤  "}, specs, CaseStatuses, testNow)
	require.NoError(t, err)
	require.Equal(t, "林阿嬤", fields.String("name"))
}
