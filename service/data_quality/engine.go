/*
 * @module service/data_quality/engine
 * @description 数据校验引擎，编排字段校验、业务校验、质量评估、建议生成并装配最终报告
 * @architecture 分层架构 - 数据质量服务层（编排器）
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 批次接收 -> 索引构建 -> 字段/业务校验 -> 质量评估 -> 建议生成 -> 报告装配入库
 * @rules ValidateDataset 同步执行且永不抛出错误；任何失败均降级为问题记录或文档化默认值
 * @refs service/data_quality/field_validator.go, service/data_quality/quality_assessor.go, service/data_quality/history.go
 */

package data_quality

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"compensation-service/service/models"
)

// ValidationEngine 数据校验引擎
type ValidationEngine struct {
	policy            Policy
	catalog           *RuleCatalog
	fieldValidator    *FieldValidator
	businessValidator *BusinessValidator
	assessor          *QualityAssessor
	suggester         *SuggestionGenerator
	history           *ValidationHistory
	cleanser          *Cleanser
}

// NewValidationEngine 创建校验引擎实例，历史存储由调用方注入
func NewValidationEngine(policy Policy, history *ValidationHistory) *ValidationEngine {
	catalog := NewRuleCatalog(policy)
	return &ValidationEngine{
		policy:            policy,
		catalog:           catalog,
		fieldValidator:    NewFieldValidator(catalog),
		businessValidator: NewBusinessValidator(catalog),
		assessor:          NewQualityAssessor(policy),
		suggester:         NewSuggestionGenerator(policy),
		history:           history,
		cleanser:          NewCleanser(),
	}
}

// Catalog 返回引擎使用的规则目录
func (e *ValidationEngine) Catalog() *RuleCatalog {
	return e.catalog
}

// History 返回引擎使用的历史存储
func (e *ValidationEngine) History() *ValidationHistory {
	return e.history
}

// ValidateDataset 对批次执行完整校验流程并返回报告
// 同步执行，运行结束前不返回；报告会追加到历史存储
func (e *ValidationEngine) ValidateDataset(records []models.EmployeeRecord, options map[string]interface{}) models.ValidationReport {
	started := time.Now()

	batch := NewBatchContext(records)
	fieldResults := e.fieldValidator.Validate(records)
	businessIssues := e.businessValidator.Validate(batch)
	quality := e.assessor.Assess(batch)

	allIssues := collectIssues(fieldResults, businessIssues)
	suggestions := e.suggester.Generate(allIssues, quality)

	criticalCount := 0
	for _, issue := range allIssues {
		if issue.Severity == models.SeverityCritical {
			criticalCount++
		}
	}

	recommendations := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		recommendations = append(recommendations, s.Message)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	report := models.ValidationReport{
		ID:                 uuid.New().String(),
		Timestamp:          started,
		TotalRecords:       len(records),
		ValidationOptions:  options,
		FieldValidation:    fieldResults,
		BusinessValidation: businessIssues,
		DataQuality:        quality,
		Suggestions:        suggestions,
		Summary: models.ValidationSummary{
			Status:           QualityStatus(quality.Overall),
			OverallScore:     quality.Overall,
			TotalIssues:      len(allIssues),
			CriticalIssues:   criticalCount,
			DataQualityGrade: QualityGrade(quality.Overall),
			Recommendations:  recommendations,
		},
		Performance: models.ValidationPerformance{
			ValidationTime: time.Since(started).Milliseconds(),
			RulesExecuted:  (e.catalog.FieldRuleCount() + len(e.catalog.BusinessRules())) * len(records),
			MemoryUsage:    memStats.Alloc,
		},
	}

	if e.history != nil {
		e.history.Record(report)
	}
	return report
}

// CleanData 对批次执行字段清洗，返回新的记录数组，原批次不被修改
func (e *ValidationEngine) CleanData(records []models.EmployeeRecord) []models.EmployeeRecord {
	return e.cleanser.CleanData(records)
}

// collectIssues 按字段声明顺序汇总字段问题，再追加业务问题
func collectIssues(fieldResults map[string]models.FieldValidationResult, businessIssues []models.ValidationIssue) []models.ValidationIssue {
	var issues []models.ValidationIssue
	for _, field := range models.FieldOrder {
		if result, ok := fieldResults[field]; ok {
			issues = append(issues, result.Issues...)
		}
	}
	issues = append(issues, businessIssues...)
	return issues
}
