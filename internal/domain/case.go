package domain

// Case 个案领域模型（care recipient，对应 cases 集合）
// 文档字段名即 JSON key，跨导入工具版本保持稳定，重复导入才能幂等。
type Case struct {
	ID string `json:"id,omitempty"` // 文档 ID（自动生成）

	// 基本資料
	CaseNumber string  `json:"caseNumber,omitempty"` // 案號
	Name       string  `json:"name"`                 // 姓名
	Gender     string  `json:"gender,omitempty"`     // 性別
	BirthDate  string  `json:"birthDate,omitempty"`  // 出生年月日
	Age        int     `json:"age"`                  // 年齡
	PersonalID string  `json:"personalId,omitempty"` // 身分證字號
	Phone      string  `json:"phone"`                // 電話
	Height     float64 `json:"height,omitempty"`     // 身高
	Weight     float64 `json:"weight,omitempty"`     // 體重
	Language   string  `json:"language,omitempty"`   // 常用語言
	Education  string  `json:"education,omitempty"`  // 個案教育程度
	Source     string  `json:"source,omitempty"`     // 個案來源

	// 聯絡與居住
	City           string `json:"city,omitempty"`           // 個案居住縣市
	District       string `json:"district,omitempty"`       // 鄉鎮區
	Village        string `json:"village,omitempty"`        // 里別
	Address        string `json:"address"`                  // 個案居住地址
	LivingStatus   string `json:"livingStatus,omitempty"`   // 居住狀況
	BillingAddress string `json:"billingAddress,omitempty"` // 帳單地址

	// 身份與福利
	IsIndigenous         string `json:"isIndigenous,omitempty"`    // 原住民身份
	IndigenousTribe      string `json:"indigenousTribe,omitempty"` // 原住民族別
	WelfareStatus        string `json:"welfareStatus,omitempty"`   // 福利身份別
	SubsidyRatio         string `json:"subsidyRatio,omitempty"`    // 補助比例(%)
	PricingCategory      string `json:"pricingCategory,omitempty"` // 計價類別
	ForeignCareOrSubsidy bool   `json:"foreignCareOrSubsidy"`      // 請外勞照護或領有特照津貼

	// 照顧與身心狀況
	Status                string `json:"status"`                          // active | pending | archived
	CareLevel             string `json:"careLevel"`                       // CMS等級
	DisabilityLevel       string `json:"disabilityLevel,omitempty"`       // 障礙等級
	DisabilityCategoryNew string `json:"disabilityCategoryNew,omitempty"` // 身障類別(新制)
	DisabilityCategoryOld string `json:"disabilityCategoryOld,omitempty"` // 身障類別(舊制)
	DisabilityItem        string `json:"disabilityItem,omitempty"`        // 身障項目別
	DementiaStatus        string `json:"dementiaStatus,omitempty"`        // 失智症手冊/CDR
	Diseases              string `json:"diseases,omitempty"`              // 罹患疾病
	DiseaseHistory        string `json:"diseaseHistory,omitempty"`        // 疾病史
	BehaviorEmotion       string `json:"behaviorEmotion,omitempty"`       // 行為與情緒

	// 主要/次要照顧者與代理人
	Caregiver                  string `json:"caregiver"`                            // 主責居服員
	PrimaryCaregiver           string `json:"primaryCaregiver,omitempty"`           // 主要照顧者
	PrimaryCaregiverRelation   string `json:"primaryCaregiverRelation,omitempty"`   // 主要照顧者關係
	PrimaryCaregiverAge        int    `json:"primaryCaregiverAge,omitempty"`        // 主要照顧者年齡
	SecondaryCaregiver         string `json:"secondaryCaregiver,omitempty"`         // 次要照顧者
	SecondaryCaregiverRelation string `json:"secondaryCaregiverRelation,omitempty"` // 次要照顧者關係
	Proxy                      string `json:"proxy,omitempty"`                      // 代理人
	ProxyPhone                 string `json:"proxyPhone,omitempty"`                 // 代理人電話
	ProxyMobile                string `json:"proxyMobile,omitempty"`                // 代理人手機號碼

	// 服務團隊與A單位
	Supervisor     string `json:"supervisor,omitempty"`     // 主責督導
	ViceSupervisor string `json:"viceSupervisor,omitempty"` // 副督導
	AUnitName      string `json:"aUnitName,omitempty"`      // A單位名稱
	ACaseManager   string `json:"aCaseManager,omitempty"`   // A個管姓名
	AUnitPhone     string `json:"aUnitPhone,omitempty"`     // A單位聯絡電話
	AUnitEmail     string `json:"aUnitEmail,omitempty"`     // A單位電子郵件

	// 服務行政
	ServiceTypeApplied string `json:"serviceTypeApplied,omitempty"` // 申請服務種類
	ServiceStartDate   string `json:"serviceStartDate,omitempty"`   // 服務開始時間
	SuspensionDate     string `json:"suspensionDate,omitempty"`     // 暫停日期
	SuspensionNotes    string `json:"suspensionNotes,omitempty"`    // 暫停備註
	ClosingDate        string `json:"closingDate,omitempty"`        // 結案日期
	ClosingReason      string `json:"closingReason,omitempty"`      // 結案原因
	ClosingNotes       string `json:"closingNotes,omitempty"`       // 結案備註
	RefusalCount       int    `json:"refusalCount,omitempty"`       // 拒絕次數

	// 統計與費用
	LastVisit     string  `json:"lastVisit"`               // 上次訪視
	Category      string  `json:"category,omitempty"`      // 類別（如 "居家照顧"）
	ServiceItems  string  `json:"serviceItems,omitempty"`  // 服務項目
	ServiceCount  int     `json:"serviceCount,omitempty"`  // 服務次數
	UsageQuota    float64 `json:"usageQuota,omitempty"`    // 使用額度
	SubsidyAmount float64 `json:"subsidyAmount,omitempty"` // 補助金額
	CoPayment     float64 `json:"coPayment,omitempty"`     // 民眾負擔
	SelfPayment   float64 `json:"selfPayment,omitempty"`   // 自費
	TotalCost     float64 `json:"totalCost,omitempty"`     // 民眾總花費

	Notes     string `json:"notes,omitempty"` // 備註
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ToDocument 转成存储文档（ID 不入文档体）
// 所有字段都写入：缺省值按约定是空字符串/0/false，而不是 null 占位。
func (c Case) ToDocument() map[string]any {
	return map[string]any{
		"caseNumber": c.CaseNumber,
		"name":       c.Name,
		"gender":     c.Gender,
		"birthDate":  c.BirthDate,
		"age":        c.Age,
		"personalId": c.PersonalID,
		"phone":      c.Phone,
		"height":     c.Height,
		"weight":     c.Weight,
		"language":   c.Language,
		"education":  c.Education,
		"source":     c.Source,

		"city":           c.City,
		"district":       c.District,
		"village":        c.Village,
		"address":        c.Address,
		"livingStatus":   c.LivingStatus,
		"billingAddress": c.BillingAddress,

		"isIndigenous":         c.IsIndigenous,
		"indigenousTribe":      c.IndigenousTribe,
		"welfareStatus":        c.WelfareStatus,
		"subsidyRatio":         c.SubsidyRatio,
		"pricingCategory":      c.PricingCategory,
		"foreignCareOrSubsidy": c.ForeignCareOrSubsidy,

		"status":                c.Status,
		"careLevel":             c.CareLevel,
		"disabilityLevel":       c.DisabilityLevel,
		"disabilityCategoryNew": c.DisabilityCategoryNew,
		"disabilityCategoryOld": c.DisabilityCategoryOld,
		"disabilityItem":        c.DisabilityItem,
		"dementiaStatus":        c.DementiaStatus,
		"diseases":              c.Diseases,
		"diseaseHistory":        c.DiseaseHistory,
		"behaviorEmotion":       c.BehaviorEmotion,

		"caregiver":                  c.Caregiver,
		"primaryCaregiver":           c.PrimaryCaregiver,
		"primaryCaregiverRelation":   c.PrimaryCaregiverRelation,
		"primaryCaregiverAge":        c.PrimaryCaregiverAge,
		"secondaryCaregiver":         c.SecondaryCaregiver,
		"secondaryCaregiverRelation": c.SecondaryCaregiverRelation,
		"proxy":                      c.Proxy,
		"proxyPhone":                 c.ProxyPhone,
		"proxyMobile":                c.ProxyMobile,

		"supervisor":     c.Supervisor,
		"viceSupervisor": c.ViceSupervisor,
		"aUnitName":      c.AUnitName,
		"aCaseManager":   c.ACaseManager,
		"aUnitPhone":     c.AUnitPhone,
		"aUnitEmail":     c.AUnitEmail,

		"serviceTypeApplied": c.ServiceTypeApplied,
		"serviceStartDate":   c.ServiceStartDate,
		"suspensionDate":     c.SuspensionDate,
		"suspensionNotes":    c.SuspensionNotes,
		"closingDate":        c.ClosingDate,
		"closingReason":      c.ClosingReason,
		"closingNotes":       c.ClosingNotes,
		"refusalCount":       c.RefusalCount,

		"lastVisit":     c.LastVisit,
		"category":      c.Category,
		"serviceItems":  c.ServiceItems,
		"serviceCount":  c.ServiceCount,
		"usageQuota":    c.UsageQuota,
		"subsidyAmount": c.SubsidyAmount,
		"coPayment":     c.CoPayment,
		"selfPayment":   c.SelfPayment,
		"totalCost":     c.TotalCost,

		"notes":     c.Notes,
		"createdAt": c.CreatedAt,
		"updatedAt": c.UpdatedAt,
	}
}

// CaseFromDocument 从存储文档还原个案
// 兼容历史上直接以中文表头入库的旧文档（英文 key 缺失时回退中文 key）。
func CaseFromDocument(id string, data map[string]any) Case {
	c := Case{
		ID:         id,
		CaseNumber: docString(data, "caseNumber", "案號"),
		Name:       docString(data, "name", "姓名"),
		Gender:     docString(data, "gender", "性別"),
		BirthDate:  docString(data, "birthDate", "出生年月日"),
		Age:        docInt(data, "age", "年齡"),
		PersonalID: docString(data, "personalId", "身分證字號"),
		Phone:      docString(data, "phone", "電話"),
		Height:     docFloat(data, "height", "身高"),
		Weight:     docFloat(data, "weight", "體重"),
		Language:   docString(data, "language", "常用語言"),
		Education:  docString(data, "education", "個案教育程度"),
		Source:     docString(data, "source", "個案來源"),

		City:           docString(data, "city", "個案居住縣市"),
		District:       docString(data, "district", "鄉鎮區"),
		Village:        docString(data, "village", "里別"),
		Address:        docString(data, "address", "個案居住地址"),
		LivingStatus:   docString(data, "livingStatus", "居住狀況"),
		BillingAddress: docString(data, "billingAddress", "帳單地址"),

		IsIndigenous:         docString(data, "isIndigenous", "原住民身份"),
		IndigenousTribe:      docString(data, "indigenousTribe", "原住民族別"),
		WelfareStatus:        docString(data, "welfareStatus", "福利身份別"),
		SubsidyRatio:         docString(data, "subsidyRatio", "補助比例(%)"),
		PricingCategory:      docString(data, "pricingCategory", "計價類別"),
		ForeignCareOrSubsidy: docBool(data, "foreignCareOrSubsidy", "請外勞照護或領有特照津貼"),

		Status:                docString(data, "status", "目前狀態"),
		CareLevel:             docString(data, "careLevel", "CMS等級"),
		DisabilityLevel:       docString(data, "disabilityLevel", "障礙等級"),
		DisabilityCategoryNew: docString(data, "disabilityCategoryNew", "身障類別(新制)"),
		DisabilityCategoryOld: docString(data, "disabilityCategoryOld", "身障類別(舊制)"),
		DisabilityItem:        docString(data, "disabilityItem", "身障項目別"),
		DementiaStatus:        docString(data, "dementiaStatus", "是否具備身心障礙失智症手冊/證明或CDR1分以上"),
		Diseases:              docString(data, "diseases", "罹患疾病"),
		DiseaseHistory:        docString(data, "diseaseHistory", "疾病史"),
		BehaviorEmotion:       docString(data, "behaviorEmotion", "行為與情緒"),

		Caregiver:                  docString(data, "caregiver", "主責居服員"),
		PrimaryCaregiver:           docString(data, "primaryCaregiver", "主要照顧者"),
		PrimaryCaregiverRelation:   docString(data, "primaryCaregiverRelation", "主要照顧者關係"),
		PrimaryCaregiverAge:        docInt(data, "primaryCaregiverAge", "主要照顧者年齡"),
		SecondaryCaregiver:         docString(data, "secondaryCaregiver", "次要照顧者"),
		SecondaryCaregiverRelation: docString(data, "secondaryCaregiverRelation", "次要照顧者關係"),
		Proxy:                      docString(data, "proxy", "代理人"),
		ProxyPhone:                 docString(data, "proxyPhone", "代理人電話"),
		ProxyMobile:                docString(data, "proxyMobile", "代理人手機號碼"),

		Supervisor:     docString(data, "supervisor", "主責督導"),
		ViceSupervisor: docString(data, "viceSupervisor", "副督導"),
		AUnitName:      docString(data, "aUnitName", "A單位名稱"),
		ACaseManager:   docString(data, "aCaseManager", "A個管姓名"),
		AUnitPhone:     docString(data, "aUnitPhone", "A單位聯絡電話"),
		AUnitEmail:     docString(data, "aUnitEmail", "A單位電子郵件"),

		ServiceTypeApplied: docString(data, "serviceTypeApplied", "申請服務種類"),
		ServiceStartDate:   docString(data, "serviceStartDate", "服務開始時間"),
		SuspensionDate:     docString(data, "suspensionDate", "暫停日期"),
		SuspensionNotes:    docString(data, "suspensionNotes", "暫停備註"),
		ClosingDate:        docString(data, "closingDate", "結案日期"),
		ClosingReason:      docString(data, "closingReason", "結案原因"),
		ClosingNotes:       docString(data, "closingNotes", "結案備註"),
		RefusalCount:       docInt(data, "refusalCount", "拒絕次數"),

		LastVisit:     docString(data, "lastVisit", "上次訪視"),
		Category:      docString(data, "category", "類別"),
		ServiceItems:  docString(data, "serviceItems", "服務項目"),
		ServiceCount:  docInt(data, "serviceCount", "服務次數"),
		UsageQuota:    docFloat(data, "usageQuota", "使用額度"),
		SubsidyAmount: docFloat(data, "subsidyAmount", "補助金額"),
		CoPayment:     docFloat(data, "coPayment", "民眾負擔"),
		SelfPayment:   docFloat(data, "selfPayment", "自費"),
		TotalCost:     docFloat(data, "totalCost", "民眾總花費"),

		Notes:     docString(data, "notes", "備註"),
		CreatedAt: docString(data, "createdAt"),
		UpdatedAt: docString(data, "updatedAt"),
	}
	if c.Status == "" {
		c.Status = "active"
	}
	return c
}
