/*
 * @module service/data_quality/field_validator
 * @description 字段校验器，对每条记录的每个声明字段逐条应用目录中的字段规则
 * @architecture 分层架构 - 数据质量校验层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 批次读取 -> 逐字段逐规则评估 -> 字段级通过/失败统计与问题列表
 * @rules 谓词故障（错误返回或panic）降级为 high 级 validation_error 问题，绝不中断后续评估；输入记录不被修改
 * @refs service/data_quality/catalog.go
 */

package data_quality

import (
	"compensation-service/service/models"
	"fmt"
)

// FieldValidator 字段校验器，(目录, 批次) 的纯函数
type FieldValidator struct {
	catalog *RuleCatalog
}

// NewFieldValidator 创建字段校验器实例
func NewFieldValidator(catalog *RuleCatalog) *FieldValidator {
	return &FieldValidator{catalog: catalog}
}

// Validate 对批次应用全部字段规则，返回按字段汇总的校验结果
func (v *FieldValidator) Validate(records []models.EmployeeRecord) map[string]models.FieldValidationResult {
	results := make(map[string]models.FieldValidationResult, len(v.catalog.FieldNames()))

	for _, field := range v.catalog.FieldNames() {
		rules := v.catalog.FieldRules(field)
		result := models.FieldValidationResult{
			Issues: []models.ValidationIssue{},
		}

		for i := range records {
			record := &records[i]
			value := record.FieldValue(field)

			for _, rule := range rules {
				result.TotalChecked++
				passed, err := evaluateFieldRule(rule, value, record)
				if err != nil {
					result.Failed++
					result.Issues = append(result.Issues, faultIssue(record, i, field, rule.Name, err))
					continue
				}
				if passed {
					result.Passed++
					continue
				}
				result.Failed++
				result.Issues = append(result.Issues, models.ValidationIssue{
					EmployeeID:   record.EmployeeID,
					EmployeeName: record.Name,
					RecordIndex:  i,
					Field:        field,
					RuleName:     rule.Name,
					Category:     rule.Category,
					Severity:     rule.Severity,
					Message:      rule.Message,
					Value:        value,
				})
			}
		}

		results[field] = result
	}

	return results
}

// evaluateFieldRule 执行单条字段规则，panic 被捕获并转为执行故障
func evaluateFieldRule(rule FieldRule, value interface{}, record *models.EmployeeRecord) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = fmt.Errorf("规则 %s 执行异常: %v", rule.Name, r)
		}
	}()
	return rule.Check(value, record)
}

// faultIssue 将规则执行故障包装为 high 级 validation_error 问题
func faultIssue(record *models.EmployeeRecord, index int, field, ruleName string, err error) models.ValidationIssue {
	return models.ValidationIssue{
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.Name,
		RecordIndex:  index,
		Field:        field,
		RuleName:     ruleName,
		Category:     models.CategoryValidationError,
		Severity:     models.SeverityHigh,
		Message:      err.Error(),
	}
}
