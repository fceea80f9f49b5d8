package normalize

// 别名表是规范化的唯一事实来源：每个 canonical 字段对应一组按优先级
// 排列的来源表头标签，覆盖所有已知的中英文与新旧表头变体。
// 表是配置数据，运行期间不变。

// CaseFields 个案（care recipient）字段表
var CaseFields = []FieldSpec{
	// 基本資料
	{Name: "name", Aliases: []string{"姓名", "name"}},
	{Name: "gender", Aliases: []string{"性別", "gender"}},
	{Name: "age", Aliases: []string{"年齡", "age"}, Kind: KindInt},
	{Name: "birthDate", Aliases: []string{"出生年月日", "birthDate"}, Kind: KindDate, DefaultToday: true},
	{Name: "personalId", Aliases: []string{"身分證字號", "personalId"}},
	{Name: "phone", Aliases: []string{"電話", "聯絡電話", "phone"}},
	{Name: "height", Aliases: []string{"身高", "height"}, Kind: KindFloat},
	{Name: "weight", Aliases: []string{"體重", "weight"}, Kind: KindFloat},
	{Name: "caseNumber", Aliases: []string{"案號", "caseNumber"}},
	{Name: "source", Aliases: []string{"個案來源", "source"}},
	{Name: "language", Aliases: []string{"常用語言", "language"}},
	{Name: "education", Aliases: []string{"個案教育程度", "education"}},

	// 聯絡與居住
	{Name: "city", Aliases: []string{"個案居住縣市", "city"}},
	{Name: "district", Aliases: []string{"鄉鎮區", "district"}},
	{Name: "village", Aliases: []string{"里別", "village"}},
	{Name: "address", Aliases: []string{"地址", "個案居住地址", "address"}},
	{Name: "livingStatus", Aliases: []string{"居住狀況", "livingStatus"}},
	{Name: "billingAddress", Aliases: []string{"帳單地址", "billingAddress"}},

	// 身份與福利
	{Name: "isIndigenous", Aliases: []string{"原住民身份", "isIndigenous"}},
	{Name: "indigenousTribe", Aliases: []string{"原住民族別", "indigenousTribe"}},
	{Name: "welfareStatus", Aliases: []string{"福利身份別", "welfareStatus"}},
	{Name: "subsidyRatio", Aliases: []string{"補助比例(%)", "補助比例", "subsidyRatio"}},
	{Name: "pricingCategory", Aliases: []string{"計價類別", "pricingCategory"}},
	{Name: "foreignCareOrSubsidy", Aliases: []string{"請外勞照護或領有特照津貼", "foreignCareOrSubsidy"}, Kind: KindBool},

	// 照顧與身心狀況
	{Name: "status", Aliases: []string{"狀態", "目前狀態", "status"}, Kind: KindStatus},
	{Name: "careLevel", Aliases: []string{"照顧等級", "CMS等級", "careLevel"}},
	{Name: "disabilityLevel", Aliases: []string{"障礙等級", "disabilityLevel"}},
	{Name: "disabilityCategoryNew", Aliases: []string{"身障類別(新制)", "disabilityCategoryNew"}},
	{Name: "disabilityCategoryOld", Aliases: []string{"身障類別(舊制)", "disabilityCategoryOld"}},
	{Name: "disabilityItem", Aliases: []string{"身障項目別", "disabilityItem"}},
	{Name: "dementiaStatus", Aliases: []string{"失智症手冊/CDR", "是否具備身心障礙失智症手冊/證明或CDR1分以上", "dementiaStatus"}},
	{Name: "diseases", Aliases: []string{"罹患疾病", "diseases"}},
	{Name: "diseaseHistory", Aliases: []string{"疾病史", "diseaseHistory"}},
	{Name: "behaviorEmotion", Aliases: []string{"行為與情緒", "behaviorEmotion"}},

	// 主要/次要照顧者與代理人
	{Name: "caregiver", Aliases: []string{"居服員", "主責居服員", "caregiver"}},
	{Name: "primaryCaregiver", Aliases: []string{"主要照顧者", "primaryCaregiver"}},
	{Name: "primaryCaregiverRelation", Aliases: []string{"主要照顧者關係", "primaryCaregiverRelation"}},
	{Name: "primaryCaregiverAge", Aliases: []string{"主要照顧者年齡", "primaryCaregiverAge"}, Kind: KindInt},
	{Name: "secondaryCaregiver", Aliases: []string{"次要照顧者", "secondaryCaregiver"}},
	{Name: "secondaryCaregiverRelation", Aliases: []string{"次要照顧者關係", "secondaryCaregiverRelation"}},
	{Name: "proxy", Aliases: []string{"代理人", "proxy"}},
	{Name: "proxyPhone", Aliases: []string{"代理人電話", "proxyPhone"}},
	{Name: "proxyMobile", Aliases: []string{"代理人手機號碼", "proxyMobile"}},

	// 服務團隊與A單位
	{Name: "supervisor", Aliases: []string{"主責督導", "supervisor"}},
	{Name: "viceSupervisor", Aliases: []string{"副督導", "viceSupervisor"}},
	{Name: "aUnitName", Aliases: []string{"A單位名稱", "AUnitName"}},
	{Name: "aCaseManager", Aliases: []string{"A個管姓名", "ACaseManager"}},
	{Name: "aUnitPhone", Aliases: []string{"A單位聯絡電話", "聯絡電話", "AUnitPhone"}},
	{Name: "aUnitEmail", Aliases: []string{"電子郵件", "A單位電子郵件", "AUnitEmail"}},

	// 服務行政
	{Name: "serviceTypeApplied", Aliases: []string{"申請服務種類", "serviceTypeApplied"}},
	{Name: "serviceStartDate", Aliases: []string{"服務開始時間", "serviceStartDate"}, Kind: KindDate, DefaultToday: true},
	{Name: "suspensionDate", Aliases: []string{"暫停日期", "suspensionDate"}, Kind: KindDate, DefaultToday: true},
	{Name: "suspensionNotes", Aliases: []string{"暫停備註", "suspensionNotes"}},
	{Name: "closingDate", Aliases: []string{"結案日期", "closingDate"}, Kind: KindDate, DefaultToday: true},
	{Name: "closingReason", Aliases: []string{"結案原因", "closingReason"}},
	{Name: "closingNotes", Aliases: []string{"結案備註", "closingNotes"}},
	{Name: "refusalCount", Aliases: []string{"拒絕次數", "refusalCount"}, Kind: KindInt},

	// 統計與費用
	{Name: "lastVisit", Aliases: []string{"上次訪視", "lastVisit"}, Kind: KindDate, DefaultToday: true},
	{Name: "category", Aliases: []string{"類別", "category"}},
	{Name: "serviceItems", Aliases: []string{"服務項目", "serviceItems"}},
	{Name: "serviceCount", Aliases: []string{"服務次數", "serviceCount"}, Kind: KindInt},
	{Name: "usageQuota", Aliases: []string{"使用額度", "usageQuota"}, Kind: KindFloat},
	{Name: "subsidyAmount", Aliases: []string{"補助金額", "subsidyAmount"}, Kind: KindFloat},
	{Name: "coPayment", Aliases: []string{"民眾負擔", "coPayment"}, Kind: KindFloat},
	{Name: "selfPayment", Aliases: []string{"自費", "selfPayment"}, Kind: KindFloat},
	{Name: "totalCost", Aliases: []string{"民眾總花費", "totalCost"}, Kind: KindFloat},
	{Name: "notes", Aliases: []string{"備註", "notes"}},
}

// CaregiverFields 居服員（staff）字段表
var CaregiverFields = []FieldSpec{
	{Name: "employeeId", Aliases: []string{"員工編號", "employeeId"}},
	{Name: "status", Aliases: []string{"現在狀態", "status"}, Kind: KindStatus},
	{Name: "name", Aliases: []string{"姓名", "name"}},
	{Name: "gender", Aliases: []string{"性別", "gender"}},
	{Name: "nationality", Aliases: []string{"國籍", "nationality"}},
	{Name: "idNumber", Aliases: []string{"身分證字號", "idNumber"}},
	{Name: "phone", Aliases: []string{"手機號碼", "phone"}},
	{Name: "age", Aliases: []string{"年齡", "age"}, Kind: KindInt},
	{Name: "birthday", Aliases: []string{"生日", "birthday"}, Kind: KindDate},
	{Name: "account", Aliases: []string{"帳號", "account"}},
	{Name: "role", Aliases: []string{"角色", "role"}},
	{Name: "primarySupervisor", Aliases: []string{"主責督導", "primarySupervisor"}},
	{Name: "secondarySupervisor", Aliases: []string{"副督導", "secondarySupervisor"}},
	{Name: "address", Aliases: []string{"居住地", "address"}},
	{Name: "education", Aliases: []string{"教育程度", "education"}},
	{Name: "disabilityStatus", Aliases: []string{"身心障礙者", "disabilityStatus"}},
	{Name: "isIndigenous", Aliases: []string{"原住民", "isIndigenous"}, Kind: KindBool},
	{Name: "indigenousTribe", Aliases: []string{"原住民族別", "indigenousTribe"}},
	{Name: "preferredLanguage", Aliases: []string{"常用語言", "preferredLanguage"}},
	{Name: "onboardDate", Aliases: []string{"到職日", "onboardDate"}, Kind: KindDate},
	{Name: "resignationDate", Aliases: []string{"離職日", "resignationDate"}, Kind: KindDate},
	{Name: "emergencyContactName", Aliases: []string{"緊急聯絡人姓名", "emergencyContactName"}},
	{Name: "emergencyContactPhone", Aliases: []string{"緊急連絡人電話", "emergencyContactPhone"}},
	{Name: "emergencyContactRelationship", Aliases: []string{"緊急連絡人關係", "emergencyContactRelationship"}},
	{Name: "serviceArea", Aliases: []string{"服務區域", "serviceArea"}},
	{Name: "notes", Aliases: []string{"備註", "notes"}},
}
