/*
 * @module service/data_quality/engine_test
 * @description 校验引擎端到端测试，覆盖完整校验流程、空批次缺省、历史存储与执行指标
 * @architecture 测试层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 批次输入 -> 完整校验 -> 报告验证
 * @rules ValidateDataset 永不失败；空批次产出满分报告且无问题无建议
 * @refs engine.go, history.go
 */

package data_quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compensation-service/service/models"
	"compensation-service/testutil"
)

func newTestEngine() *ValidationEngine {
	return NewValidationEngine(DefaultPolicy(), NewValidationHistory(0))
}

// 三条记录场景：一条缺国家、一条薪酬低于下限、一条完全合法
func TestValidationEngine_MixedBatchScenario(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	// 职位各不相同，避免同组比较规则介入
	records := []models.EmployeeRecord{
		factory.CreateEmployeeRecord(testutil.WithCountry(""), testutil.WithTitle("Product Manager")),
		factory.CreateEmployeeRecord(testutil.WithSalary(500, "USD"), testutil.WithTitle("Data Analyst")),
		factory.CreateEmployeeRecord(),
	}

	report := newTestEngine().ValidateDataset(records, nil)

	assert.Equal(t, 3, report.TotalRecords)
	assert.Equal(t, 2, report.Summary.TotalIssues)
	assert.Equal(t, 0, report.Summary.CriticalIssues)

	// 缺国家是 high 级必填问题而非 critical
	countryIssues := report.FieldValidation[models.FieldCountry].Issues
	assert.Len(t, countryIssues, 1)
	assert.Equal(t, "country_required", countryIssues[0].RuleName)
	assert.Equal(t, models.SeverityHigh, countryIssues[0].Severity)

	// 薪酬越界是 medium 级范围问题
	salaryIssues := report.FieldValidation[models.FieldSalary].Issues
	assert.Len(t, salaryIssues, 1)
	assert.Equal(t, "salary_amount_range", salaryIssues[0].RuleName)
	assert.Equal(t, models.SeverityMedium, salaryIssues[0].Severity)

	// 准确性统计反映薪酬失败
	assert.Equal(t, 8, report.DataQuality.Accuracy.Details["accurate_checks"])
	assert.Equal(t, 9, report.DataQuality.Accuracy.Details["applicable_checks"])

	assert.Empty(t, report.BusinessValidation)
}

// 空批次产出满分报告：overall=1.0、等级 A+、零问题、零建议
func TestValidationEngine_EmptyBatch(t *testing.T) {
	engine := newTestEngine()
	report := engine.ValidateDataset(nil, nil)

	assert.Equal(t, 0, report.TotalRecords)
	assert.InDelta(t, 1.0, report.DataQuality.Overall, 1e-9)
	assert.Equal(t, "A+", report.Summary.DataQualityGrade)
	assert.Equal(t, "excellent", report.Summary.Status)
	assert.Zero(t, report.Summary.TotalIssues)
	assert.Empty(t, report.Suggestions)
	assert.Empty(t, report.BusinessValidation)
	for _, result := range report.FieldValidation {
		assert.Empty(t, result.Issues)
	}
}

// 严重问题触发高优先级建议并计入摘要
func TestValidationEngine_CriticalIssueSuggestion(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{
		factory.CreateEmployeeRecord(testutil.WithName("")),
		factory.CreateEmployeeRecord(testutil.WithoutSalary()),
	}

	report := newTestEngine().ValidateDataset(records, nil)

	assert.Equal(t, 2, report.Summary.CriticalIssues)
	assert.NotEmpty(t, report.Suggestions)
	assert.Equal(t, "critical_issues", report.Suggestions[0].Type)
	assert.Equal(t, models.PriorityHigh, report.Suggestions[0].Priority)
	assert.Equal(t, report.Suggestions[0].Message, report.Summary.Recommendations[0])
}

// 报告记入历史，清空后历史为空
func TestValidationEngine_HistoryLifecycle(t *testing.T) {
	engine := newTestEngine()
	factory := testutil.NewTestDataFactory()

	engine.ValidateDataset([]models.EmployeeRecord{factory.CreateEmployeeRecord()}, nil)
	engine.ValidateDataset(nil, nil)

	history := engine.History().All()
	assert.Len(t, history, 2)
	assert.NotEqual(t, history[0].ID, history[1].ID)

	engine.History().Clear()
	assert.Empty(t, engine.History().All())
}

// 历史容量有界，超限淘汰最旧报告
func TestValidationHistory_Bounded(t *testing.T) {
	engine := NewValidationEngine(DefaultPolicy(), NewValidationHistory(2))

	first := engine.ValidateDataset(nil, nil)
	engine.ValidateDataset(nil, nil)
	third := engine.ValidateDataset(nil, nil)

	history := engine.History().All()
	assert.Len(t, history, 2)
	for _, report := range history {
		assert.NotEqual(t, first.ID, report.ID)
	}
	assert.Equal(t, third.ID, history[1].ID)
}

// 校验选项原样透传到报告
func TestValidationEngine_OptionsPassthrough(t *testing.T) {
	options := map[string]interface{}{
		"rule_set_version": "2024.3",
		"strict_mode":      true,
	}

	report := newTestEngine().ValidateDataset(nil, options)
	assert.Equal(t, options, report.ValidationOptions)
}

// 执行指标：规则执行数与耗时
func TestValidationEngine_PerformanceMetrics(t *testing.T) {
	engine := newTestEngine()
	factory := testutil.NewTestDataFactory()
	records := []models.EmployeeRecord{
		factory.CreateEmployeeRecord(),
		factory.CreateEmployeeRecord(),
	}

	report := engine.ValidateDataset(records, nil)

	expected := (engine.Catalog().FieldRuleCount() + len(engine.Catalog().BusinessRules())) * len(records)
	assert.Equal(t, expected, report.Performance.RulesExecuted)
	assert.GreaterOrEqual(t, report.Performance.ValidationTime, int64(0))
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.Timestamp.IsZero())
}

// 总分始终落在 [0,1]
func TestValidationEngine_OverallBounded(t *testing.T) {
	factory := testutil.NewTestDataFactory()
	batches := [][]models.EmployeeRecord{
		nil,
		{factory.CreateEmployeeRecord()},
		{
			{EmployeeID: "", Name: "", Title: "", Country: ""},
			{EmployeeID: "", Name: "", Title: "", Country: ""},
		},
	}

	for _, records := range batches {
		report := newTestEngine().ValidateDataset(records, nil)
		assert.GreaterOrEqual(t, report.DataQuality.Overall, 0.0)
		assert.LessOrEqual(t, report.DataQuality.Overall, 1.0)
	}
}
