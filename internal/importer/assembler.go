package importer

import (
	"strings"
	"time"

	"homecare-data/internal/domain"
	"homecare-data/internal/normalize"
)

// Record 一条组装完成、待写入的文档
// Key 是自然键（居服員取 trim 后的員工編號）；为空时由写入器自动生成文档 ID。
type Record struct {
	Key string
	Doc map[string]any
}

// Entity 一种可导入实体的完整描述：目标集合、字段表、状态表、组装函数
type Entity struct {
	Collection string
	Fields     []normalize.FieldSpec
	Statuses   normalize.StatusTable
	Assemble   func(fields normalize.Fields, now time.Time) (Record, bool)
}

// CaseEntity 个案导入描述
var CaseEntity = Entity{
	Collection: "cases",
	Fields:     normalize.CaseFields,
	Statuses:   normalize.CaseStatuses,
	Assemble:   AssembleCase,
}

// CaregiverEntity 居服員导入描述
var CaregiverEntity = Entity{
	Collection: "caregivers",
	Fields:     normalize.CaregiverFields,
	Statuses:   normalize.CaregiverStatuses,
	Assemble:   AssembleCaregiver,
}

// AssembleCase 从规范化字段组装个案文档
// 返回 false 表示整行跳过（trim 后姓名为空即视为空白行）。
func AssembleCase(fields normalize.Fields, now time.Time) (Record, bool) {
	name := strings.TrimSpace(fields.String("name"))
	if name == "" {
		return Record{}, false
	}

	c := domain.Case{
		Name:       name,
		Gender:     fields.String("gender"),
		Age:        fields.Int("age"),
		BirthDate:  fields.String("birthDate"),
		PersonalID: fields.String("personalId"),
		Phone:      fields.String("phone"),
		Height:     fields.Float("height"),
		Weight:     fields.Float("weight"),
		CaseNumber: fields.String("caseNumber"),
		Source:     fields.String("source"),
		Language:   fields.String("language"),
		Education:  fields.String("education"),

		City:           fields.String("city"),
		District:       fields.String("district"),
		Village:        fields.String("village"),
		Address:        fields.String("address"),
		LivingStatus:   fields.String("livingStatus"),
		BillingAddress: fields.String("billingAddress"),

		IsIndigenous:         fields.String("isIndigenous"),
		IndigenousTribe:      fields.String("indigenousTribe"),
		WelfareStatus:        fields.String("welfareStatus"),
		SubsidyRatio:         fields.String("subsidyRatio"),
		PricingCategory:      fields.String("pricingCategory"),
		ForeignCareOrSubsidy: fields.Bool("foreignCareOrSubsidy"),

		Status:                fields.String("status"),
		CareLevel:             fields.String("careLevel"),
		DisabilityLevel:       fields.String("disabilityLevel"),
		DisabilityCategoryNew: fields.String("disabilityCategoryNew"),
		DisabilityCategoryOld: fields.String("disabilityCategoryOld"),
		DisabilityItem:        fields.String("disabilityItem"),
		DementiaStatus:        fields.String("dementiaStatus"),
		Diseases:              fields.String("diseases"),
		DiseaseHistory:        fields.String("diseaseHistory"),
		BehaviorEmotion:       fields.String("behaviorEmotion"),

		Caregiver:                  fields.String("caregiver"),
		PrimaryCaregiver:           fields.String("primaryCaregiver"),
		PrimaryCaregiverRelation:   fields.String("primaryCaregiverRelation"),
		PrimaryCaregiverAge:        fields.Int("primaryCaregiverAge"),
		SecondaryCaregiver:         fields.String("secondaryCaregiver"),
		SecondaryCaregiverRelation: fields.String("secondaryCaregiverRelation"),
		Proxy:                      fields.String("proxy"),
		ProxyPhone:                 fields.String("proxyPhone"),
		ProxyMobile:                fields.String("proxyMobile"),

		Supervisor:     fields.String("supervisor"),
		ViceSupervisor: fields.String("viceSupervisor"),
		AUnitName:      fields.String("aUnitName"),
		ACaseManager:   fields.String("aCaseManager"),
		AUnitPhone:     fields.String("aUnitPhone"),
		AUnitEmail:     fields.String("aUnitEmail"),

		ServiceTypeApplied: fields.String("serviceTypeApplied"),
		ServiceStartDate:   fields.String("serviceStartDate"),
		SuspensionDate:     fields.String("suspensionDate"),
		SuspensionNotes:    fields.String("suspensionNotes"),
		ClosingDate:        fields.String("closingDate"),
		ClosingReason:      fields.String("closingReason"),
		ClosingNotes:       fields.String("closingNotes"),
		RefusalCount:       fields.Int("refusalCount"),

		LastVisit:     fields.String("lastVisit"),
		Category:      fields.String("category"),
		ServiceItems:  fields.String("serviceItems"),
		ServiceCount:  fields.Int("serviceCount"),
		UsageQuota:    fields.Float("usageQuota"),
		SubsidyAmount: fields.Float("subsidyAmount"),
		CoPayment:     fields.Float("coPayment"),
		SelfPayment:   fields.Float("selfPayment"),
		TotalCost:     fields.Float("totalCost"),

		Notes: fields.String("notes"),
	}

	// 表里没有年龄时从出生年月日推算
	if c.Age <= 0 && c.BirthDate != "" {
		c.Age = ageFromBirthDate(c.BirthDate, now)
	}
	if c.Age < 0 {
		c.Age = 0
	}

	ts := now.UTC().Format(time.RFC3339)
	c.CreatedAt = ts
	c.UpdatedAt = ts

	return Record{Doc: normalize.Clean(c.ToDocument())}, true
}

// AssembleCaregiver 从规范化字段组装居服員文档
// Key 用 trim 后的員工編號：同一員工重复导入覆盖而不是产生重复文档。
func AssembleCaregiver(fields normalize.Fields, now time.Time) (Record, bool) {
	name := strings.TrimSpace(fields.String("name"))
	if name == "" {
		return Record{}, false
	}

	c := domain.Caregiver{
		EmployeeID:                   strings.TrimSpace(fields.String("employeeId")),
		Status:                       fields.String("status"),
		Name:                         name,
		Gender:                       fields.String("gender"),
		Nationality:                  fields.String("nationality"),
		IDNumber:                     fields.String("idNumber"),
		Phone:                        fields.String("phone"),
		Age:                          fields.Int("age"),
		Birthday:                     fields.String("birthday"),
		Account:                      fields.String("account"),
		Role:                         fields.String("role"),
		PrimarySupervisor:            fields.String("primarySupervisor"),
		SecondarySupervisor:          fields.String("secondarySupervisor"),
		Address:                      fields.String("address"),
		Education:                    fields.String("education"),
		DisabilityStatus:             fields.String("disabilityStatus"),
		IsIndigenous:                 fields.Bool("isIndigenous"),
		IndigenousTribe:              fields.String("indigenousTribe"),
		PreferredLanguage:            fields.String("preferredLanguage"),
		OnboardDate:                  fields.String("onboardDate"),
		ResignationDate:              fields.String("resignationDate"),
		EmergencyContactName:         fields.String("emergencyContactName"),
		EmergencyContactPhone:        fields.String("emergencyContactPhone"),
		EmergencyContactRelationship: fields.String("emergencyContactRelationship"),
		ServiceArea:                  fields.String("serviceArea"),
		Notes:                        fields.String("notes"),
	}

	ts := now.UTC().Format(time.RFC3339)
	c.CreatedAt = ts
	c.UpdatedAt = ts

	return Record{Key: c.EmployeeID, Doc: normalize.Clean(c.ToDocument())}, true
}

var birthDateLayouts = []string{"2006-01-02", "2006/01/02", "2006-1-2", "2006/1/2"}

func ageFromBirthDate(birthDate string, now time.Time) int {
	for _, layout := range birthDateLayouts {
		if birth, err := time.Parse(layout, birthDate); err == nil {
			return now.Year() - birth.Year()
		}
	}
	return 0
}
