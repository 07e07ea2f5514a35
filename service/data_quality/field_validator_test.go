/*
 * @module service/data_quality/field_validator_test
 * @description 字段校验器测试，覆盖必填规则、格式规则、空真语义与谓词故障隔离
 * @architecture 测试层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 测试数据输入 -> 字段规则应用 -> 结果验证
 * @rules 谓词故障不得中断剩余规则评估
 * @refs field_validator.go, catalog.go
 */

package data_quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compensation-service/service/models"
	"compensation-service/testutil"
)

func newTestValidator() *FieldValidator {
	return NewFieldValidator(NewRuleCatalog(DefaultPolicy()))
}

// issuesByRule 按规则名提取问题
func issuesByRule(results map[string]models.FieldValidationResult, ruleName string) []models.ValidationIssue {
	var issues []models.ValidationIssue
	for _, result := range results {
		for _, issue := range result.Issues {
			if issue.RuleName == ruleName {
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// 完整合法记录不产生任何字段问题
func TestFieldValidator_ValidRecord(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{factory.CreateEmployeeRecord()}

	results := newTestValidator().Validate(records)

	for field, result := range results {
		assert.Empty(t, result.Issues, "字段 %s 不应有问题", field)
		assert.Equal(t, result.TotalChecked, result.Passed)
		assert.Zero(t, result.Failed)
	}
}

// 每个缺失的必填字段恰好产生一个 critical 问题
func TestFieldValidator_MissingRequiredFields(t *testing.T) {
	factory := testutil.NewTestDataFactory()

	cases := []struct {
		name     string
		opt      testutil.EmployeeRecordOption
		field    string
		rule     string
		severity models.RuleSeverity
	}{
		{"缺失员工编号", testutil.WithEmployeeID(""), models.FieldEmployeeID, "employee_id_required", models.SeverityCritical},
		{"缺失姓名", testutil.WithName(""), models.FieldName, "name_required", models.SeverityCritical},
		{"缺失职位", testutil.WithTitle(""), models.FieldTitle, "title_required", models.SeverityCritical},
		{"缺失国家", testutil.WithCountry(""), models.FieldCountry, "country_required", models.SeverityHigh},
		{"缺失薪酬", testutil.WithoutSalary(), models.FieldSalary, "salary_required", models.SeverityCritical},
		{"薪酬金额非正", testutil.WithSalary(0, "USD"), models.FieldSalary, "salary_required", models.SeverityCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := []models.EmployeeRecord{factory.CreateEmployeeRecord(tc.opt)}
			results := newTestValidator().Validate(records)

			issues := issuesByRule(results, tc.rule)
			assert.Len(t, issues, 1)
			assert.Equal(t, tc.field, issues[0].Field)
			assert.Equal(t, tc.severity, issues[0].Severity)
			assert.Equal(t, models.CategoryRequired, issues[0].Category)
		})
	}
}

// 缺失的可选字段对格式与范围规则空真，不产生问题
func TestFieldValidator_OptionalFieldVacuous(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{factory.MinimalRecord()}

	results := newTestValidator().Validate(records)

	for _, rule := range []string{"performance_rating_known", "comparatio_range", "time_in_role_range", "months_since_raise_range"} {
		assert.Empty(t, issuesByRule(results, rule), "规则 %s 不应对缺失值产生问题", rule)
	}
}

// 格式与范围规则
func TestFieldValidator_FormatAndRangeRules(t *testing.T) {
	factory := testutil.NewTestDataFactory()

	cases := []struct {
		name string
		opt  testutil.EmployeeRecordOption
		rule string
	}{
		{"员工编号含非法字符", testutil.WithEmployeeID("EMP 001!"), "employee_id_format"},
		{"姓名含连续空格", testutil.WithName("John  Smith"), "name_format"},
		{"职位含首尾空白", testutil.WithTitle(" Engineer "), "title_format"},
		{"未知国家", testutil.WithCountry("Atlantis"), "country_known"},
		{"薪酬低于下限", testutil.WithSalary(500, "USD"), "salary_amount_range"},
		{"薪酬高于上限", testutil.WithSalary(20_000_000, "USD"), "salary_amount_range"},
		{"未知货币", testutil.WithSalary(120000, "XYZ"), "salary_currency_known"},
		{"未知绩效评级", testutil.WithPerformanceRating("Legendary"), "performance_rating_known"},
		{"比较比率超上限", testutil.WithComparatio(2.5), "comparatio_range"},
		{"在岗时长超上限", testutil.WithTimeInRole(700), "time_in_role_range"},
		{"调薪时长为负", testutil.WithMonthsSinceRaise(-1), "months_since_raise_range"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := []models.EmployeeRecord{factory.CreateEmployeeRecord(tc.opt)}
			results := newTestValidator().Validate(records)
			assert.Len(t, issuesByRule(results, tc.rule), 1)
		})
	}
}

// 国家同义词命中词表，不产生 country_known 问题
func TestFieldValidator_CountrySynonym(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{
		factory.CreateEmployeeRecord(testutil.WithCountry("USA")),
		factory.CreateEmployeeRecord(testutil.WithCountry("uk"), testutil.WithSalary(90000, "GBP")),
	}

	results := newTestValidator().Validate(records)
	assert.Empty(t, issuesByRule(results, "country_known"))
}

// 谓词 panic 被降级为 high 级 validation_error 问题，其余规则继续执行
func TestFieldValidator_PredicateFaultContainment(t *testing.T) {
	catalog := &RuleCatalog{
		policy:     DefaultPolicy(),
		fieldRules: make(map[string][]FieldRule),
	}
	catalog.registerFieldRules([]FieldRule{
		{
			Name:     "panic_rule",
			Field:    models.FieldName,
			Category: models.CategoryFormat,
			Severity: models.SeverityLow,
			Message:  "不应出现",
			Check: func(_ interface{}, _ *models.EmployeeRecord) (bool, error) {
				panic("boom")
			},
		},
		requiredRule("name_required", models.FieldName, models.SeverityCritical, "员工姓名为必填字段"),
	})

	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{factory.CreateEmployeeRecord(testutil.WithName(""))}

	results := NewFieldValidator(catalog).Validate(records)
	result := results[models.FieldName]

	// panic 规则与必填规则各产生一个问题，评估未被中断
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Issues, 2)
	assert.Equal(t, models.CategoryValidationError, result.Issues[0].Category)
	assert.Equal(t, models.SeverityHigh, result.Issues[0].Severity)
	assert.Equal(t, "name_required", result.Issues[1].RuleName)
}

// 统计量自洽：TotalChecked = Passed + Failed
func TestFieldValidator_TallyInvariant(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{
		factory.CreateEmployeeRecord(),
		factory.CreateEmployeeRecord(testutil.WithCountry("")),
		factory.MinimalRecord(testutil.WithSalary(500, "USD")),
	}

	results := newTestValidator().Validate(records)

	for field, result := range results {
		assert.Equal(t, result.TotalChecked, result.Passed+result.Failed, "字段 %s 统计量不自洽", field)
		assert.Len(t, result.Issues, result.Failed)
	}
}
