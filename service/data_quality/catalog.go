/*
 * @module service/data_quality/catalog
 * @description 校验规则目录，以带标签的规则描述符形式声明全部字段规则与跨记录业务规则
 * @architecture 分层架构 - 数据质量服务层（数据驱动规则目录）
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 策略注入 -> 目录构建 -> 校验器按目录顺序评估
 * @rules 规则描述符不可变；目录顺序仅决定问题输出顺序，谓词彼此独立；新增规则无需修改校验器
 * @dependencies github.com/spf13/cast
 * @refs service/data_quality/field_validator.go, service/data_quality/business_validator.go
 */

package data_quality

import (
	"compensation-service/service/models"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// FieldPredicate 字段规则谓词
// value 为字段作用域的值（缺失时为 nil）；返回 (是否通过, 执行故障)
// 对缺失的可选值未定义的谓词必须返回 true（空真），必填性由专门的 required 规则负责
type FieldPredicate func(value interface{}, record *models.EmployeeRecord) (bool, error)

// FieldRule 字段规则描述符
type FieldRule struct {
	Name     string
	Field    string
	Category models.RuleCategory
	Severity models.RuleSeverity
	Message  string
	Check    FieldPredicate
}

// BusinessPredicate 业务规则谓词，可访问完整批次上下文
type BusinessPredicate func(record *models.EmployeeRecord, index int, batch *BatchContext) (bool, error)

// BusinessRule 跨记录业务规则描述符
type BusinessRule struct {
	Name     string
	Category models.RuleCategory
	Severity models.RuleSeverity
	Message  string
	Check    BusinessPredicate
}

// RuleDescriptor 规则描述符的对外展示形式，供规则目录查询接口使用
type RuleDescriptor struct {
	Name     string              `json:"name"`
	Field    string              `json:"field,omitempty"`
	Scope    string              `json:"scope"` // field, business
	Category models.RuleCategory `json:"category"`
	Severity models.RuleSeverity `json:"severity"`
	Message  string              `json:"message"`
}

// RuleCatalog 校验规则目录
// 按字段持有有序的字段规则列表，另持有有序的业务规则列表
type RuleCatalog struct {
	policy        Policy
	fieldOrder    []string
	fieldRules    map[string][]FieldRule
	businessRules []BusinessRule
}

var (
	employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)
	namePattern       = regexp.MustCompile(`^\p{L}[\p{L} .'\x{2019}-]*$`)
)

// NewRuleCatalog 基于策略构建内置规则目录
func NewRuleCatalog(policy Policy) *RuleCatalog {
	c := &RuleCatalog{
		policy:     policy,
		fieldRules: make(map[string][]FieldRule),
	}
	c.registerFieldRules(builtinFieldRules(policy))
	c.businessRules = builtinBusinessRules(policy)
	return c
}

// registerFieldRules 按声明顺序登记字段规则，字段顺序取首次出现顺序
func (c *RuleCatalog) registerFieldRules(rules []FieldRule) {
	for _, rule := range rules {
		if _, exists := c.fieldRules[rule.Field]; !exists {
			c.fieldOrder = append(c.fieldOrder, rule.Field)
		}
		c.fieldRules[rule.Field] = append(c.fieldRules[rule.Field], rule)
	}
}

// FieldNames 返回目录声明的字段名，顺序固定
func (c *RuleCatalog) FieldNames() []string {
	return c.fieldOrder
}

// FieldRules 返回指定字段的有序规则列表
func (c *RuleCatalog) FieldRules(field string) []FieldRule {
	return c.fieldRules[field]
}

// BusinessRules 返回有序的业务规则列表
func (c *RuleCatalog) BusinessRules() []BusinessRule {
	return c.businessRules
}

// FieldRuleCount 返回字段规则总数
func (c *RuleCatalog) FieldRuleCount() int {
	total := 0
	for _, rules := range c.fieldRules {
		total += len(rules)
	}
	return total
}

// Descriptors 返回全部规则的展示描述符，字段规则在前、业务规则在后
func (c *RuleCatalog) Descriptors() []RuleDescriptor {
	descriptors := make([]RuleDescriptor, 0, c.FieldRuleCount()+len(c.businessRules))
	for _, field := range c.fieldOrder {
		for _, rule := range c.fieldRules[field] {
			descriptors = append(descriptors, RuleDescriptor{
				Name:     rule.Name,
				Field:    rule.Field,
				Scope:    "field",
				Category: rule.Category,
				Severity: rule.Severity,
				Message:  rule.Message,
			})
		}
	}
	for _, rule := range c.businessRules {
		descriptors = append(descriptors, RuleDescriptor{
			Name:     rule.Name,
			Scope:    "business",
			Category: rule.Category,
			Severity: rule.Severity,
			Message:  rule.Message,
		})
	}
	return descriptors
}

// requiredRule 构建必填规则，缺失即失败
func requiredRule(name, field string, severity models.RuleSeverity, message string) FieldRule {
	return FieldRule{
		Name:     name,
		Field:    field,
		Category: models.CategoryRequired,
		Severity: severity,
		Message:  message,
		Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
			if value == nil {
				return false, nil
			}
			if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
				return false, nil
			}
			return true, nil
		},
	}
}

// numericRangeRule 构建数值范围规则，值缺失时空真
func numericRangeRule(name, field string, min, max float64, message string) FieldRule {
	return FieldRule{
		Name:     name,
		Field:    field,
		Category: models.CategoryRange,
		Severity: models.SeverityMedium,
		Message:  message,
		Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
			if value == nil {
				return true, nil
			}
			num, err := cast.ToFloat64E(value)
			if err != nil {
				return false, fmt.Errorf("数值解析失败: %w", err)
			}
			return num >= min && num <= max, nil
		},
	}
}

// builtinFieldRules 构建内置字段规则集
func builtinFieldRules(policy Policy) []FieldRule {
	return []FieldRule{
		// 员工编号
		requiredRule("employee_id_required", models.FieldEmployeeID, models.SeverityCritical, "员工编号为必填字段"),
		{
			Name:     "employee_id_format",
			Field:    models.FieldEmployeeID,
			Category: models.CategoryFormat,
			Severity: models.SeverityLow,
			Message:  "员工编号应为不超过32位的字母、数字、下划线或连字符",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				return employeeIDPattern.MatchString(cast.ToString(value)), nil
			},
		},

		// 姓名
		requiredRule("name_required", models.FieldName, models.SeverityCritical, "员工姓名为必填字段"),
		{
			Name:     "name_format",
			Field:    models.FieldName,
			Category: models.CategoryFormat,
			Severity: models.SeverityLow,
			Message:  "员工姓名应以字母开头，仅包含字母、空格及常见标点，长度不超过100",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				name := cast.ToString(value)
				if len([]rune(name)) > 100 {
					return false, nil
				}
				return namePattern.MatchString(name) && !strings.Contains(name, "  "), nil
			},
		},

		// 职位
		requiredRule("title_required", models.FieldTitle, models.SeverityCritical, "职位为必填字段"),
		{
			Name:     "title_format",
			Field:    models.FieldTitle,
			Category: models.CategoryFormat,
			Severity: models.SeverityLow,
			Message:  "职位长度不超过80且不含首尾空白",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				title := cast.ToString(value)
				if len([]rune(title)) > 80 {
					return false, nil
				}
				return title == strings.TrimSpace(title), nil
			},
		},

		// 国家/地区：必填级别为 high，区别于其余必填字段的 critical
		requiredRule("country_required", models.FieldCountry, models.SeverityHigh, "国家/地区为必填字段"),
		{
			Name:     "country_known",
			Field:    models.FieldCountry,
			Category: models.CategoryReferential,
			Severity: models.SeverityMedium,
			Message:  "国家/地区不在已知词表中",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				_, ok := CanonicalCountry(cast.ToString(value))
				return ok, nil
			},
		},

		// 薪酬：缺失或金额非正视为未提供
		{
			Name:     "salary_required",
			Field:    models.FieldSalary,
			Category: models.CategoryRequired,
			Severity: models.SeverityCritical,
			Message:  "薪酬金额为必填字段且必须为正数",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return false, nil
				}
				salary, ok := value.(models.Salary)
				if !ok {
					return false, fmt.Errorf("薪酬字段类型异常: %T", value)
				}
				return salary.Amount > 0, nil
			},
		},
		{
			Name:     "salary_amount_range",
			Field:    models.FieldSalary,
			Category: models.CategoryRange,
			Severity: models.SeverityMedium,
			Message:  "薪酬金额超出合理范围",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				salary, ok := value.(models.Salary)
				if !ok {
					return false, fmt.Errorf("薪酬字段类型异常: %T", value)
				}
				if salary.Amount <= 0 {
					// 非正金额由 salary_required 负责，此处空真避免重复计数
					return true, nil
				}
				return salary.Amount >= policy.SalaryAmountMin && salary.Amount <= policy.SalaryAmountMax, nil
			},
		},
		{
			Name:     "salary_currency_known",
			Field:    models.FieldSalary,
			Category: models.CategoryReferential,
			Severity: models.SeverityMedium,
			Message:  "薪酬货币代码不在已知词表中",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				salary, ok := value.(models.Salary)
				if !ok {
					return false, fmt.Errorf("薪酬字段类型异常: %T", value)
				}
				if strings.TrimSpace(salary.Currency) == "" {
					return false, nil
				}
				return IsKnownCurrency(salary.Currency), nil
			},
		},

		// 绩效评级
		{
			Name:     "performance_rating_known",
			Field:    models.FieldPerformanceRating,
			Category: models.CategoryReferential,
			Severity: models.SeverityMedium,
			Message:  "绩效评级不在规范词表中",
			Check: func(value interface{}, _ *models.EmployeeRecord) (bool, error) {
				if value == nil {
					return true, nil
				}
				_, ok := CanonicalRating(cast.ToString(value))
				return ok, nil
			},
		},

		// 数值合理范围
		numericRangeRule("comparatio_range", models.FieldComparatio,
			policy.ComparatioMin, policy.ComparatioMax, "比较比率超出合理范围"),
		numericRangeRule("time_in_role_range", models.FieldTimeInRole,
			0, policy.TimeInRoleMaxMonths, "在岗时长超出合理范围"),
		numericRangeRule("months_since_raise_range", models.FieldMonthsSinceRaise,
			0, policy.TimeInRoleMaxMonths, "距上次调薪时长超出合理范围"),
	}
}

// builtinBusinessRules 构建内置跨记录业务规则集
func builtinBusinessRules(policy Policy) []BusinessRule {
	return []BusinessRule{
		{
			Name:     "employee_id_unique",
			Category: models.CategoryConsistency,
			Severity: models.SeverityHigh,
			Message:  "员工编号在批次内重复",
			Check: func(record *models.EmployeeRecord, _ int, batch *BatchContext) (bool, error) {
				if record.EmployeeID == "" {
					return true, nil
				}
				return batch.DuplicateCount(record.EmployeeID) <= 1, nil
			},
		},
		{
			Name:     "comparatio_peer_alignment",
			Category: models.CategoryBusinessLogic,
			Severity: models.SeverityMedium,
			Message:  "比较比率与同国家同职位的同组推算值偏差过大",
			Check: func(record *models.EmployeeRecord, index int, batch *BatchContext) (bool, error) {
				if record.Comparatio == nil || record.Salary == nil || record.Salary.Amount <= 0 {
					return true, nil
				}
				expected, ok := batch.PeerImpliedComparatio(record, index)
				if !ok {
					// 无同组记录时空真，不因缺少参照制造问题
					return true, nil
				}
				deviation := *record.Comparatio - expected
				if deviation < 0 {
					deviation = -deviation
				}
				return deviation <= policy.PeerComparatioTolerance, nil
			},
		},
		{
			Name:     "rating_comparatio_alignment",
			Category: models.CategoryBusinessLogic,
			Severity: models.SeverityLow,
			Message:  "绩效评级与比较比率方向不一致",
			Check: func(record *models.EmployeeRecord, _ int, _ *BatchContext) (bool, error) {
				if record.PerformanceRating == nil || record.Comparatio == nil {
					return true, nil
				}
				rank := RatingRank(*record.PerformanceRating)
				if rank == 0 {
					// 未知评级由字段规则负责
					return true, nil
				}
				if rank >= 4 && *record.Comparatio < policy.RatingComparatioUnderpaid {
					return false, nil
				}
				if rank <= 2 && *record.Comparatio > policy.RatingComparatioOverpaid {
					return false, nil
				}
				return true, nil
			},
		},
		{
			Name:     "raise_within_tenure",
			Category: models.CategoryConsistency,
			Severity: models.SeverityMedium,
			Message:  "距上次调薪时长超过在岗时长",
			Check: func(record *models.EmployeeRecord, _ int, _ *BatchContext) (bool, error) {
				if record.MonthsSinceRaiseMonths == nil || record.TimeInRoleMonths == nil {
					return true, nil
				}
				return *record.MonthsSinceRaiseMonths <= *record.TimeInRoleMonths, nil
			},
		},
		{
			Name:     "future_talent_rating_alignment",
			Category: models.CategoryBusinessLogic,
			Severity: models.SeverityLow,
			Message:  "重点培养标记与绩效评级不一致",
			Check: func(record *models.EmployeeRecord, _ int, _ *BatchContext) (bool, error) {
				if record.FutureTalent == nil || !*record.FutureTalent || record.PerformanceRating == nil {
					return true, nil
				}
				rank := RatingRank(*record.PerformanceRating)
				if rank == 0 {
					return true, nil
				}
				return rank >= 3, nil
			},
		},
	}
}
