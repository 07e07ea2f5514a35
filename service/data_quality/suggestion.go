/*
 * @module service/data_quality/suggestion
 * @description 整改建议生成器，将校验问题与质量评分转换为带优先级的整改建议列表
 * @architecture 分层架构 - 数据质量服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 问题汇总 -> 规则匹配 -> 建议排序输出
 * @rules 建议规则彼此独立，互不抑制；纯函数，不改变输入状态
 * @refs service/data_quality/quality_assessor.go, service/models/validation_models.go
 */

package data_quality

import (
	"fmt"

	"compensation-service/service/models"
)

// SuggestionGenerator 整改建议生成器
type SuggestionGenerator struct {
	policy Policy
}

// NewSuggestionGenerator 创建整改建议生成器实例
func NewSuggestionGenerator(policy Policy) *SuggestionGenerator {
	return &SuggestionGenerator{policy: policy}
}

// Generate 根据汇总问题与质量评分生成建议列表，按生成顺序即优先级顺序返回
func (g *SuggestionGenerator) Generate(issues []models.ValidationIssue, quality models.DataQualityScores) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, 3)

	if s, ok := g.criticalIssueSuggestion(issues); ok {
		suggestions = append(suggestions, s)
	}
	if s, ok := g.completenessSuggestion(quality); ok {
		suggestions = append(suggestions, s)
	}
	if s, ok := g.autoCleanableSuggestion(issues); ok {
		suggestions = append(suggestions, s)
	}

	return suggestions
}

// criticalIssueSuggestion 存在严重问题时生成高优先级建议，附带前 N 条样例
func (g *SuggestionGenerator) criticalIssueSuggestion(issues []models.ValidationIssue) (models.Suggestion, bool) {
	var critical []models.ValidationIssue
	for _, issue := range issues {
		if issue.Severity == models.SeverityCritical {
			critical = append(critical, issue)
		}
	}
	if len(critical) == 0 {
		return models.Suggestion{}, false
	}

	sample := critical
	if len(sample) > g.policy.CriticalIssueSampleSize {
		sample = sample[:g.policy.CriticalIssueSampleSize]
	}

	return models.Suggestion{
		Type:     "critical_issues",
		Priority: models.PriorityHigh,
		Message:  fmt.Sprintf("发现 %d 个严重数据问题，需要立即修复", len(critical)),
		Action:   "fix_critical_issues",
		Details: map[string]interface{}{
			"critical_count": len(critical),
			"sample_issues":  sample,
		},
	}, true
}

// completenessSuggestion 完整性评分低于阈值时生成中优先级建议
func (g *SuggestionGenerator) completenessSuggestion(quality models.DataQualityScores) (models.Suggestion, bool) {
	if quality.Completeness.Score >= g.policy.CompletenessSuggestionThreshold {
		return models.Suggestion{}, false
	}

	details := map[string]interface{}{
		"completeness_score": quality.Completeness.Score,
	}
	// 带出必填字段缺口，方便下游直接定位补录范围
	if present, ok := quality.Completeness.Details["required_present"].(int); ok {
		if total, ok2 := quality.Completeness.Details["required_total"].(int); ok2 {
			details["required_missing"] = total - present
		}
	}

	return models.Suggestion{
		Type:     "data_completeness",
		Priority: models.PriorityMedium,
		Message:  fmt.Sprintf("数据完整性评分为 %.2f，建议补齐缺失的必填字段", quality.Completeness.Score),
		Action:   "improve_completeness",
		Details:  details,
	}, true
}

// autoCleanableSuggestion 存在非严重格式问题时生成低优先级的自动清洗建议
func (g *SuggestionGenerator) autoCleanableSuggestion(issues []models.ValidationIssue) (models.Suggestion, bool) {
	var cleanable []models.ValidationIssue
	for _, issue := range issues {
		if issue.Category == models.CategoryFormat && issue.Severity != models.SeverityCritical {
			cleanable = append(cleanable, issue)
		}
	}
	if len(cleanable) == 0 {
		return models.Suggestion{}, false
	}

	return models.Suggestion{
		Type:     "auto_cleanable",
		Priority: models.PriorityLow,
		Message:  fmt.Sprintf("发现 %d 个格式问题可通过数据清洗自动修复", len(cleanable)),
		Action:   "run_data_cleaning",
		Details: map[string]interface{}{
			"cleanable_count":  len(cleanable),
			"cleanable_issues": cleanable,
		},
	}, true
}
