/*
 * @module service/data_quality/suggestion_test
 * @description 整改建议生成器测试，覆盖三类建议规则的触发条件与建议内容
 * @architecture 测试层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 问题与评分输入 -> 建议生成 -> 内容验证
 * @rules 建议彼此独立，互不抑制
 * @refs suggestion.go
 */

package data_quality

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"compensation-service/service/models"
)

func perfectScores() models.DataQualityScores {
	dimension := models.QualityDimension{Score: 1.0, Details: map[string]interface{}{}}
	return models.DataQualityScores{
		Completeness: dimension,
		Consistency:  dimension,
		Accuracy:     dimension,
		Validity:     dimension,
		Overall:      1.0,
	}
}

func criticalIssue(id string) models.ValidationIssue {
	return models.ValidationIssue{
		EmployeeID: id,
		Field:      models.FieldName,
		RuleName:   "name_required",
		Category:   models.CategoryRequired,
		Severity:   models.SeverityCritical,
		Message:    "员工姓名为必填字段",
	}
}

// 无问题且评分满分时不生成任何建议
func TestSuggestionGenerator_NoSuggestions(t *testing.T) {
	suggestions := NewSuggestionGenerator(DefaultPolicy()).Generate(nil, perfectScores())
	assert.Empty(t, suggestions)
}

// 严重问题触发高优先级建议，样本不超过策略上限
func TestSuggestionGenerator_CriticalIssues(t *testing.T) {
	var issues []models.ValidationIssue
	for i := 0; i < 8; i++ {
		issues = append(issues, criticalIssue(fmt.Sprintf("EMP-%d", i)))
	}

	suggestions := NewSuggestionGenerator(DefaultPolicy()).Generate(issues, perfectScores())

	assert.Len(t, suggestions, 1)
	assert.Equal(t, "critical_issues", suggestions[0].Type)
	assert.Equal(t, models.PriorityHigh, suggestions[0].Priority)
	assert.Equal(t, "fix_critical_issues", suggestions[0].Action)
	assert.Equal(t, 8, suggestions[0].Details["critical_count"])

	sample := suggestions[0].Details["sample_issues"].([]models.ValidationIssue)
	assert.Len(t, sample, DefaultPolicy().CriticalIssueSampleSize)
	assert.Equal(t, "EMP-0", sample[0].EmployeeID)
}

// 完整性评分低于阈值触发中优先级建议
func TestSuggestionGenerator_LowCompleteness(t *testing.T) {
	scores := perfectScores()
	scores.Completeness = models.QualityDimension{
		Score: 0.65,
		Details: map[string]interface{}{
			"required_present": 12,
			"required_total":   20,
		},
	}

	suggestions := NewSuggestionGenerator(DefaultPolicy()).Generate(nil, scores)

	assert.Len(t, suggestions, 1)
	assert.Equal(t, "data_completeness", suggestions[0].Type)
	assert.Equal(t, models.PriorityMedium, suggestions[0].Priority)
	assert.Equal(t, "improve_completeness", suggestions[0].Action)
	assert.Equal(t, 0.65, suggestions[0].Details["completeness_score"])
	assert.Equal(t, 8, suggestions[0].Details["required_missing"])
}

// 非严重格式问题触发低优先级自动清洗建议
func TestSuggestionGenerator_AutoCleanable(t *testing.T) {
	issues := []models.ValidationIssue{
		{
			RuleName: "name_format",
			Category: models.CategoryFormat,
			Severity: models.SeverityLow,
		},
		{
			RuleName: "title_format",
			Category: models.CategoryFormat,
			Severity: models.SeverityLow,
		},
		// 范围类问题不计入清洗候选
		{
			RuleName: "comparatio_range",
			Category: models.CategoryRange,
			Severity: models.SeverityMedium,
		},
	}

	suggestions := NewSuggestionGenerator(DefaultPolicy()).Generate(issues, perfectScores())

	assert.Len(t, suggestions, 1)
	assert.Equal(t, "auto_cleanable", suggestions[0].Type)
	assert.Equal(t, models.PriorityLow, suggestions[0].Priority)
	assert.Equal(t, "run_data_cleaning", suggestions[0].Action)
	assert.Equal(t, 2, suggestions[0].Details["cleanable_count"])
}

// 多条建议彼此独立，互不抑制
func TestSuggestionGenerator_Independent(t *testing.T) {
	scores := perfectScores()
	scores.Completeness = models.QualityDimension{Score: 0.5, Details: map[string]interface{}{}}

	issues := []models.ValidationIssue{
		criticalIssue("EMP-1"),
		{RuleName: "name_format", Category: models.CategoryFormat, Severity: models.SeverityLow},
	}

	suggestions := NewSuggestionGenerator(DefaultPolicy()).Generate(issues, scores)

	assert.Len(t, suggestions, 3)
	assert.Equal(t, "critical_issues", suggestions[0].Type)
	assert.Equal(t, "data_completeness", suggestions[1].Type)
	assert.Equal(t, "auto_cleanable", suggestions[2].Type)
}
