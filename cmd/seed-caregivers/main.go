// seed-caregivers 写入一组固定的居服員种子数据（开发环境初始化用）
// 員工編號作为文档 ID，重复执行幂等。
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"homecare-data/internal/cli"
	"homecare-data/internal/domain"
	"homecare-data/internal/importer"
	"homecare-data/internal/normalize"
)

var caregivers = []domain.Caregiver{
	{
		EmployeeID: "EMP001", Status: "active", Name: "張大美", Gender: "female",
		Nationality: "Taiwan", IDNumber: "A223456789", Phone: "0912-345-678",
		Age: 45, Birthday: "1979-05-20", Account: "emp001", Role: "居服員",
		PrimarySupervisor: "陳督導", SecondarySupervisor: "林督導",
		Address: "台北市士林區中正路123號", Education: "大學", DisabilityStatus: "無",
		PreferredLanguage: "國語", OnboardDate: "2023-01-15",
		EmergencyContactName: "張先生", EmergencyContactPhone: "0911-111-111",
		EmergencyContactRelationship: "配偶", ServiceArea: "士林區", Notes: "資深績優員工",
	},
	{
		EmployeeID: "EMP002", Status: "active", Name: "李小明", Gender: "male",
		Nationality: "Taiwan", IDNumber: "A123456789", Phone: "0922-333-444",
		Age: 32, Birthday: "1992-08-10", Account: "emp002", Role: "居服員",
		PrimarySupervisor: "王督導",
		Address: "台北市北投區大業路456號", Education: "高中", DisabilityStatus: "無",
		PreferredLanguage: "台語", OnboardDate: "2023-03-20",
		EmergencyContactName: "李太太", EmergencyContactPhone: "0922-222-222",
		EmergencyContactRelationship: "母親", ServiceArea: "北投區",
	},
	{
		EmployeeID: "EMP003", Status: "inactive", Name: "王美麗", Gender: "female",
		Nationality: "Indonesia", IDNumber: "XYZ123456", Phone: "0933-555-666",
		Age: 28, Birthday: "1996-12-05", Account: "emp003", Role: "居服員",
		PrimarySupervisor: "陳督導",
		Address: "台北市中山區北安路789號", Education: "高中",
		PreferredLanguage: "印尼語", OnboardDate: "2022-06-01", ResignationDate: "2024-11-30",
		EmergencyContactName: "王先生", EmergencyContactPhone: "0933-333-333",
		EmergencyContactRelationship: "兄長", ServiceArea: "中山區",
	},
}

func main() {
	_, log, st, err := cli.Setup("seed-caregivers")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed-caregivers: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	now := time.Now().UTC().Format(time.RFC3339)
	records := make([]importer.Record, 0, len(caregivers))
	for _, c := range caregivers {
		c.CreatedAt = now
		c.UpdatedAt = now
		records = append(records, importer.Record{
			Key: c.EmployeeID,
			Doc: normalize.Clean(c.ToDocument()),
		})
	}

	writer := importer.NewWriter(st, log, "caregivers", importer.ModeBatched)
	counts, err := writer.Write(context.Background(), records)
	if err != nil {
		log.Error("seed failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("seed finished", zap.Int("written", counts.Success))
}
