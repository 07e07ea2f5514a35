/*
 * @module service/models/validation_models
 * @description 薪酬数据校验引擎模型定义，包含规则、问题、质量评分、建议与校验报告等核心数据结构
 * @architecture 分层架构 - 数据模型层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 规则评估 -> 问题收集 -> 质量评分 -> 建议生成 -> 报告组装
 * @rules 报告一经组装不可变更；总体评分始终为四个维度评分的加权凸组合
 * @refs service/data_quality
 */

package models

import (
	"time"
)

// RuleCategory 规则类别
type RuleCategory string

const (
	CategoryRequired      RuleCategory = "required"
	CategoryFormat        RuleCategory = "format"
	CategoryRange         RuleCategory = "range"
	CategoryConsistency   RuleCategory = "consistency"
	CategoryBusinessLogic RuleCategory = "business_logic"
	CategoryReferential   RuleCategory = "referential"
	CategoryCompleteness  RuleCategory = "completeness"

	// CategoryValidationError 规则执行故障专用类别，谓词返回错误或发生panic时使用
	CategoryValidationError RuleCategory = "validation_error"
)

// RuleSeverity 规则严重级别，critical 最高
type RuleSeverity string

const (
	SeverityCritical RuleSeverity = "critical"
	SeverityHigh     RuleSeverity = "high"
	SeverityMedium   RuleSeverity = "medium"
	SeverityLow      RuleSeverity = "low"
	SeverityInfo     RuleSeverity = "info"
)

// severityRank 严重级别排序权重
var severityRank = map[RuleSeverity]int{
	SeverityCritical: 5,
	SeverityHigh:     4,
	SeverityMedium:   3,
	SeverityLow:      2,
	SeverityInfo:     1,
}

// Rank 返回严重级别的序数，用于比较排序
func (s RuleSeverity) Rank() int {
	return severityRank[s]
}

// SuggestionPriority 整改建议优先级
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// ValidationIssue 一次规则评估失败的记录
type ValidationIssue struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name,omitempty"`
	RecordIndex  int          `json:"record_index"`
	Field        string       `json:"field,omitempty"`
	RuleName     string       `json:"rule_name"`
	Category     RuleCategory `json:"category"`
	Severity     RuleSeverity `json:"severity"`
	Message      string       `json:"message"`
	Value        interface{}  `json:"value,omitempty"`
}

// FieldValidationResult 单个字段的校验统计
type FieldValidationResult struct {
	TotalChecked int               `json:"total_checked"`
	Passed       int               `json:"passed"`
	Failed       int               `json:"failed"`
	Issues       []ValidationIssue `json:"issues"`
}

// QualityDimension 单个质量维度评分及其支撑计数
type QualityDimension struct {
	Score   float64                `json:"score"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DataQualityScores 四个质量维度评分与加权总分
type DataQualityScores struct {
	Completeness QualityDimension `json:"completeness"`
	Consistency  QualityDimension `json:"consistency"`
	Accuracy     QualityDimension `json:"accuracy"`
	Validity     QualityDimension `json:"validity"`
	Overall      float64          `json:"overall"`
}

// Suggestion 整改建议
type Suggestion struct {
	Type     string                 `json:"type"`
	Priority SuggestionPriority     `json:"priority"`
	Message  string                 `json:"message"`
	Action   string                 `json:"action"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// ValidationSummary 校验结果摘要
type ValidationSummary struct {
	Status           string   `json:"status"` // excellent, good, fair, poor
	OverallScore     float64  `json:"overall_score"`
	TotalIssues      int      `json:"total_issues"`
	CriticalIssues   int      `json:"critical_issues"`
	DataQualityGrade string   `json:"data_quality_grade"`
	Recommendations  []string `json:"recommendations"`
}

// ValidationPerformance 校验执行指标
type ValidationPerformance struct {
	ValidationTime int64  `json:"validation_time"` // 校验时长，毫秒
	RulesExecuted  int    `json:"rules_executed"`
	MemoryUsage    uint64 `json:"memory_usage,omitempty"` // 堆内存占用，字节
}

// ValidationReport 一次完整校验的不可变报告
type ValidationReport struct {
	ID                 string                           `json:"id"`
	Timestamp          time.Time                        `json:"timestamp"`
	TotalRecords       int                              `json:"total_records"`
	ValidationOptions  map[string]interface{}           `json:"validation_options,omitempty"`
	FieldValidation    map[string]FieldValidationResult `json:"field_validation"`
	BusinessValidation []ValidationIssue                `json:"business_validation"`
	DataQuality        DataQualityScores                `json:"data_quality"`
	Suggestions        []Suggestion                     `json:"suggestions"`
	Summary            ValidationSummary                `json:"summary"`
	Performance        ValidationPerformance            `json:"performance"`
}
