package domain

// Caregiver 居服員领域模型（staff，对应 caregivers 集合）
// 文档 key 取 trim 后的員工編號，重复导入覆盖同一文档；無員工編號时自动生成。
type Caregiver struct {
	ID string `json:"id,omitempty"` // 文档 ID（員工編號或自动生成）

	EmployeeID                   string `json:"employeeId"`                             // 員工編號
	Status                       string `json:"status"`                                 // active | inactive | suspended
	Name                         string `json:"name"`                                   // 姓名
	Gender                       string `json:"gender"`                                 // 性別
	Nationality                  string `json:"nationality,omitempty"`                  // 國籍
	IDNumber                     string `json:"idNumber,omitempty"`                     // 身分證字號
	Phone                        string `json:"phone"`                                  // 手機號碼
	Age                          int    `json:"age,omitempty"`                          // 年齡
	Birthday                     string `json:"birthday,omitempty"`                     // 生日
	Account                      string `json:"account,omitempty"`                      // 帳號
	Role                         string `json:"role"`                                   // 角色
	PrimarySupervisor            string `json:"primarySupervisor,omitempty"`            // 主責督導
	SecondarySupervisor          string `json:"secondarySupervisor,omitempty"`          // 副督導
	Address                      string `json:"address,omitempty"`                      // 居住地
	Education                    string `json:"education,omitempty"`                    // 教育程度
	DisabilityStatus             string `json:"disabilityStatus,omitempty"`             // 身心障礙者
	IsIndigenous                 bool   `json:"isIndigenous"`                           // 原住民
	IndigenousTribe              string `json:"indigenousTribe,omitempty"`              // 原住民族別
	PreferredLanguage            string `json:"preferredLanguage,omitempty"`            // 常用語言
	OnboardDate                  string `json:"onboardDate,omitempty"`                  // 到職日
	ResignationDate              string `json:"resignationDate,omitempty"`              // 離職日
	EmergencyContactName         string `json:"emergencyContactName,omitempty"`         // 緊急聯絡人姓名
	EmergencyContactPhone        string `json:"emergencyContactPhone,omitempty"`        // 緊急連絡人電話
	EmergencyContactRelationship string `json:"emergencyContactRelationship,omitempty"` // 緊急連絡人關係
	ServiceArea                  string `json:"serviceArea,omitempty"`                  // 服務區域
	Notes                        string `json:"notes,omitempty"`                        // 備註

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ToDocument 转成存储文档
func (c Caregiver) ToDocument() map[string]any {
	return map[string]any{
		"employeeId":                   c.EmployeeID,
		"status":                       c.Status,
		"name":                         c.Name,
		"gender":                       c.Gender,
		"nationality":                  c.Nationality,
		"idNumber":                     c.IDNumber,
		"phone":                        c.Phone,
		"age":                          c.Age,
		"birthday":                     c.Birthday,
		"account":                      c.Account,
		"role":                         c.Role,
		"primarySupervisor":            c.PrimarySupervisor,
		"secondarySupervisor":          c.SecondarySupervisor,
		"address":                      c.Address,
		"education":                    c.Education,
		"disabilityStatus":             c.DisabilityStatus,
		"isIndigenous":                 c.IsIndigenous,
		"indigenousTribe":              c.IndigenousTribe,
		"preferredLanguage":            c.PreferredLanguage,
		"onboardDate":                  c.OnboardDate,
		"resignationDate":              c.ResignationDate,
		"emergencyContactName":         c.EmergencyContactName,
		"emergencyContactPhone":        c.EmergencyContactPhone,
		"emergencyContactRelationship": c.EmergencyContactRelationship,
		"serviceArea":                  c.ServiceArea,
		"notes":                        c.Notes,
		"createdAt":                    c.CreatedAt,
		"updatedAt":                    c.UpdatedAt,
	}
}

// CaregiverFromDocument 从存储文档还原居服員
func CaregiverFromDocument(id string, data map[string]any) Caregiver {
	c := Caregiver{
		ID:                           id,
		EmployeeID:                   docString(data, "employeeId", "員工編號"),
		Status:                       docString(data, "status", "現在狀態"),
		Name:                         docString(data, "name", "姓名"),
		Gender:                       docString(data, "gender", "性別"),
		Nationality:                  docString(data, "nationality", "國籍"),
		IDNumber:                     docString(data, "idNumber", "身分證字號"),
		Phone:                        docString(data, "phone", "手機號碼"),
		Age:                          docInt(data, "age", "年齡"),
		Birthday:                     docString(data, "birthday", "生日"),
		Account:                      docString(data, "account", "帳號"),
		Role:                         docString(data, "role", "角色"),
		PrimarySupervisor:            docString(data, "primarySupervisor", "主責督導"),
		SecondarySupervisor:          docString(data, "secondarySupervisor", "副督導"),
		Address:                      docString(data, "address", "居住地"),
		Education:                    docString(data, "education", "教育程度"),
		DisabilityStatus:             docString(data, "disabilityStatus", "身心障礙者"),
		IsIndigenous:                 docBool(data, "isIndigenous", "原住民"),
		IndigenousTribe:              docString(data, "indigenousTribe", "原住民族別"),
		PreferredLanguage:            docString(data, "preferredLanguage", "常用語言"),
		OnboardDate:                  docString(data, "onboardDate", "到職日"),
		ResignationDate:              docString(data, "resignationDate", "離職日"),
		EmergencyContactName:         docString(data, "emergencyContactName", "緊急聯絡人姓名"),
		EmergencyContactPhone:        docString(data, "emergencyContactPhone", "緊急連絡人電話"),
		EmergencyContactRelationship: docString(data, "emergencyContactRelationship", "緊急連絡人關係"),
		ServiceArea:                  docString(data, "serviceArea", "服務區域"),
		Notes:                        docString(data, "notes", "備註"),
		CreatedAt:                    docString(data, "createdAt"),
		UpdatedAt:                    docString(data, "updatedAt"),
	}
	if c.Status == "" {
		c.Status = "active"
	}
	return c
}
