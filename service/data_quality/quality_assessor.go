/*
 * @module service/data_quality/quality_assessor
 * @description 数据质量评估器，计算完整性、一致性、准确性、有效性四个维度评分及加权总分
 * @architecture 分层架构 - 数据质量评估层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 批次读取 -> 四维度独立评估 -> 加权合成总分
 * @rules 各维度评分必须落在 [0,1]；无适用检查时维度记为 1.0 而非报错；总分为固定权重的凸组合
 * @refs service/data_quality/policy.go, service/data_quality/batch_context.go
 */

package data_quality

import (
	"compensation-service/service/models"
	"strings"
)

// QualityAssessor 数据质量评估器
type QualityAssessor struct {
	policy Policy
}

// NewQualityAssessor 创建数据质量评估器实例
func NewQualityAssessor(policy Policy) *QualityAssessor {
	return &QualityAssessor{policy: policy}
}

// requiredFields 完整性评估的必填字段集
var requiredFields = []string{
	models.FieldEmployeeID,
	models.FieldName,
	models.FieldTitle,
	models.FieldCountry,
	models.FieldSalary,
}

// optionalFields 完整性评估的可选字段集
var optionalFields = []string{
	models.FieldPerformanceRating,
	models.FieldComparatio,
	models.FieldTimeInRole,
	models.FieldMonthsSinceRaise,
	models.FieldFutureTalent,
}

// Assess 对批次执行四维度质量评估并合成总分
func (a *QualityAssessor) Assess(batch *BatchContext) models.DataQualityScores {
	scores := models.DataQualityScores{
		Completeness: a.assessCompleteness(batch.Records),
		Consistency:  a.assessConsistency(batch),
		Accuracy:     a.assessAccuracy(batch.Records),
		Validity:     a.assessValidity(batch.Records),
	}
	scores.Overall = a.policy.WeightCompleteness*scores.Completeness.Score +
		a.policy.WeightConsistency*scores.Consistency.Score +
		a.policy.WeightAccuracy*scores.Accuracy.Score +
		a.policy.WeightValidity*scores.Validity.Score
	return scores
}

// assessCompleteness 完整性评估：必填字段占 0.8 权重，可选字段占 0.2 权重
func (a *QualityAssessor) assessCompleteness(records []models.EmployeeRecord) models.QualityDimension {
	var requiredPresent, requiredTotal int
	var optionalPresent, optionalTotal int

	for i := range records {
		record := &records[i]
		for _, field := range requiredFields {
			requiredTotal++
			if record.FieldValue(field) != nil {
				requiredPresent++
			}
		}
		for _, field := range optionalFields {
			optionalTotal++
			if record.FieldValue(field) != nil {
				optionalPresent++
			}
		}
	}

	// 无可评估字段时该项记为 1.0，空批次不作为质量缺陷呈现
	requiredRatio := 1.0
	if requiredTotal > 0 {
		requiredRatio = float64(requiredPresent) / float64(requiredTotal)
	}
	optionalRatio := 1.0
	if optionalTotal > 0 {
		optionalRatio = float64(optionalPresent) / float64(optionalTotal)
	}

	return models.QualityDimension{
		Score: a.policy.CompletenessRequiredWeight*requiredRatio +
			a.policy.CompletenessOptionalWeight*optionalRatio,
		Details: map[string]interface{}{
			"required_present": requiredPresent,
			"required_total":   requiredTotal,
			"optional_present": optionalPresent,
			"optional_total":   optionalTotal,
		},
	}
}

// assessConsistency 一致性评估：员工编号重复 + 国家/货币对应冲突
func (a *QualityAssessor) assessConsistency(batch *BatchContext) models.QualityDimension {
	inconsistencies := 0

	// 重复编号：每一次多余出现计一次不一致
	duplicatedIDs := batch.DuplicatedIDs()
	for _, count := range duplicatedIDs {
		inconsistencies += count - 1
	}

	// 国家/货币冲突：同一国家在批次内关联多种薪酬货币
	countryCurrencies := make(map[string]map[string]bool)
	for i := range batch.Records {
		record := &batch.Records[i]
		if record.Country == "" || record.Salary == nil {
			continue
		}
		currency := strings.ToUpper(strings.TrimSpace(record.Salary.Currency))
		if currency == "" {
			continue
		}
		country := strings.ToLower(strings.TrimSpace(record.Country))
		if countryCurrencies[country] == nil {
			countryCurrencies[country] = make(map[string]bool)
		}
		countryCurrencies[country][currency] = true
	}
	mismatches := 0
	for _, currencies := range countryCurrencies {
		if len(currencies) > 1 {
			mismatches += len(currencies) - 1
		}
	}
	inconsistencies += mismatches

	score := 1.0
	if len(batch.Records) > 0 {
		score = 1.0 - float64(inconsistencies)/float64(len(batch.Records))
		if score < 0 {
			score = 0
		}
	}

	return models.QualityDimension{
		Score: score,
		Details: map[string]interface{}{
			"duplicate_ids":               len(duplicatedIDs),
			"country_currency_mismatches": mismatches,
			"inconsistency_count":         inconsistencies,
			"record_count":                len(batch.Records),
		},
	}
}

// assessAccuracy 准确性评估：数值合理性检查的通过比例，仅统计字段存在的检查
func (a *QualityAssessor) assessAccuracy(records []models.EmployeeRecord) models.QualityDimension {
	var accurate, applicable int

	for i := range records {
		record := &records[i]
		if record.Salary != nil {
			applicable++
			if record.Salary.Amount >= a.policy.SalaryAmountMin && record.Salary.Amount <= a.policy.SalaryAmountMax {
				accurate++
			}
		}
		if record.Comparatio != nil {
			applicable++
			if *record.Comparatio >= a.policy.ComparatioMin && *record.Comparatio <= a.policy.ComparatioMax {
				accurate++
			}
		}
		if record.TimeInRoleMonths != nil {
			applicable++
			if *record.TimeInRoleMonths >= 0 && *record.TimeInRoleMonths <= a.policy.TimeInRoleMaxMonths {
				accurate++
			}
		}
	}

	score := 1.0
	if applicable > 0 {
		score = float64(accurate) / float64(applicable)
	}

	return models.QualityDimension{
		Score: score,
		Details: map[string]interface{}{
			"accurate_checks":   accurate,
			"applicable_checks": applicable,
		},
	}
}

// assessValidity 有效性评估：词表成员资格检查的通过比例，仅统计字段存在的检查
func (a *QualityAssessor) assessValidity(records []models.EmployeeRecord) models.QualityDimension {
	var valid, applicable int

	for i := range records {
		record := &records[i]
		if record.Country != "" {
			applicable++
			if _, ok := CanonicalCountry(record.Country); ok {
				valid++
			}
		}
		if record.Salary != nil && strings.TrimSpace(record.Salary.Currency) != "" {
			applicable++
			if IsKnownCurrency(record.Salary.Currency) {
				valid++
			}
		}
		if record.PerformanceRating != nil {
			applicable++
			if _, ok := CanonicalRating(*record.PerformanceRating); ok {
				valid++
			}
		}
	}

	score := 1.0
	if applicable > 0 {
		score = float64(valid) / float64(applicable)
	}

	return models.QualityDimension{
		Score: score,
		Details: map[string]interface{}{
			"valid_checks":      valid,
			"applicable_checks": applicable,
		},
	}
}
