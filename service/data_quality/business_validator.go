/*
 * @module service/data_quality/business_validator
 * @description 业务规则校验器，对整个批次评估跨记录、跨字段的业务规则
 * @architecture 分层架构 - 数据质量校验层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 批次上下文构建 -> 逐记录逐规则评估 -> 业务问题列表
 * @rules 同组缺失时规则空真；谓词故障与字段校验器采用同一降级策略
 * @refs service/data_quality/batch_context.go, service/data_quality/catalog.go
 */

package data_quality

import (
	"compensation-service/service/models"
	"fmt"
)

// BusinessValidator 跨记录业务规则校验器
type BusinessValidator struct {
	catalog *RuleCatalog
}

// NewBusinessValidator 创建业务规则校验器实例
func NewBusinessValidator(catalog *RuleCatalog) *BusinessValidator {
	return &BusinessValidator{catalog: catalog}
}

// Validate 对批次评估全部业务规则，批次索引在调用方构建并在规则间复用
func (v *BusinessValidator) Validate(batch *BatchContext) []models.ValidationIssue {
	issues := []models.ValidationIssue{}

	for _, rule := range v.catalog.BusinessRules() {
		for i := range batch.Records {
			record := &batch.Records[i]
			passed, err := evaluateBusinessRule(rule, record, i, batch)
			if err != nil {
				issues = append(issues, faultIssue(record, i, "", rule.Name, err))
				continue
			}
			if passed {
				continue
			}
			issues = append(issues, models.ValidationIssue{
				EmployeeID:   record.EmployeeID,
				EmployeeName: record.Name,
				RecordIndex:  i,
				RuleName:     rule.Name,
				Category:     rule.Category,
				Severity:     rule.Severity,
				Message:      rule.Message,
			})
		}
	}

	return issues
}

// evaluateBusinessRule 执行单条业务规则，panic 被捕获并转为执行故障
func evaluateBusinessRule(rule BusinessRule, record *models.EmployeeRecord, index int, batch *BatchContext) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			err = fmt.Errorf("规则 %s 执行异常: %v", rule.Name, r)
		}
	}()
	return rule.Check(record, index, batch)
}
