/*
 * @module service/data_quality/cleanser_test
 * @description 数据清洗器测试，验证字段变换、幂等性、故障隔离与输入不可变性
 * @architecture 测试层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 测试数据输入 -> 清洗执行 -> 结果验证
 * @rules clean(clean(x)) == clean(x)；变换故障保留原值且不丢记录
 * @refs cleanser.go, vocabulary.go
 */

package data_quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compensation-service/service/models"
	"compensation-service/testutil"
)

// 清洗规范化各字段：去空白、折叠空格、标题化、词表规范化、货币大写
func TestCleanser_FieldTransforms(t *testing.T) {
	records := []models.EmployeeRecord{
		{
			EmployeeID: "  EMP-1001  ",
			Name:       "  john   smith ",
			Title:      "software  engineer",
			Country:    "usa",
			Salary: &models.Salary{
				Amount:   120000,
				Currency: " usd ",
			},
			PerformanceRating: testutil.StringPtr(" outstanding "),
		},
	}

	cleaned := NewCleanser().CleanData(records)

	assert.Len(t, cleaned, 1)
	assert.Equal(t, "EMP-1001", cleaned[0].EmployeeID)
	assert.Equal(t, "John Smith", cleaned[0].Name)
	assert.Equal(t, "Software Engineer", cleaned[0].Title)
	assert.Equal(t, "United States", cleaned[0].Country)
	assert.Equal(t, "USD", cleaned[0].Salary.Currency)
	assert.Equal(t, "Exceptional", *cleaned[0].PerformanceRating)
}

// 幂等性：清洗两次与清洗一次结果相同
func TestCleanser_Idempotence(t *testing.T) {
	records := []models.EmployeeRecord{
		{
			EmployeeID: " EMP-2001 ",
			Name:       "  maría   garcía-lópez ",
			Title:      " senior   data engineer ",
			Country:    "deutschland",
			Salary: &models.Salary{
				Amount:   95000,
				Currency: "eur",
			},
			PerformanceRating: testutil.StringPtr("exceeds"),
		},
		{
			EmployeeID: "EMP-2002",
			Name:       "Liu Wei",
			Title:      "Engineer",
			Country:    "China",
			Salary: &models.Salary{
				Amount:   300000,
				Currency: "CNY",
			},
		},
	}

	cleanser := NewCleanser()
	once := cleanser.CleanData(records)
	twice := cleanser.CleanData(once)

	assert.Equal(t, once, twice)
}

// 未识别的国家与评级保持原样
func TestCleanser_UnknownValuesUntouched(t *testing.T) {
	records := []models.EmployeeRecord{
		{
			EmployeeID:        "EMP-3001",
			Name:              "Test Person",
			Title:             "Engineer",
			Country:           "Atlantis",
			PerformanceRating: testutil.StringPtr("Legendary"),
		},
	}

	cleaned := NewCleanser().CleanData(records)

	assert.Equal(t, "Atlantis", cleaned[0].Country)
	assert.Equal(t, "Legendary", *cleaned[0].PerformanceRating)
}

// 输入记录不被修改，清洗产出新记录
func TestCleanser_InputImmutable(t *testing.T) {
	records := []models.EmployeeRecord{
		{
			EmployeeID: " EMP-4001 ",
			Name:       "test name",
			Title:      "engineer",
			Country:    "uk",
		},
	}

	cleaned := NewCleanser().CleanData(records)

	assert.Equal(t, " EMP-4001 ", records[0].EmployeeID)
	assert.Equal(t, "test name", records[0].Name)
	assert.Equal(t, "uk", records[0].Country)
	assert.Equal(t, "United Kingdom", cleaned[0].Country)
}

// 变换 panic 被捕获并保留原值，后续变换与记录继续处理
func TestCleanser_TransformFaultContainment(t *testing.T) {
	cleanser := &Cleanser{
		rules: []CleaningRule{
			{
				Field: models.FieldName,
				Get: func(r *models.EmployeeRecord) (string, bool) {
					return r.Name, r.Name != ""
				},
				Set: func(r *models.EmployeeRecord, v string) { r.Name = v },
				Transforms: []CleaningTransform{
					{
						Name:  "panic_transform",
						Apply: func(string) string { panic("boom") },
					},
					trimTransform(),
				},
			},
		},
	}

	records := []models.EmployeeRecord{
		{EmployeeID: "EMP-5001", Name: " faulty ", Title: "Engineer", Country: "China"},
		{EmployeeID: "EMP-5002", Name: " ok ", Title: "Engineer", Country: "China"},
	}

	cleaned := cleanser.CleanData(records)

	// panic 变换被跳过，后续 trim 变换照常执行，记录数不变
	assert.Len(t, cleaned, 2)
	assert.Equal(t, "faulty", cleaned[0].Name)
	assert.Equal(t, "ok", cleaned[1].Name)
}

// 空批次清洗返回空数组而非 nil 错误
func TestCleanser_EmptyBatch(t *testing.T) {
	cleaned := NewCleanser().CleanData(nil)
	assert.Empty(t, cleaned)
}
