/*
 * @module service/data_quality/cleanser
 * @description 数据清洗器，按字段应用有序、幂等的纯值变换（去空白、标题化、国家/评级规范化）
 * @architecture 分层架构 - 数据质量服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 记录克隆 -> 逐字段逐变换应用 -> 新记录数组输出
 * @rules 清洗仅在显式调用时执行，校验过程绝不隐式清洗；单个变换故障记日志并保留原值，清洗不中断不丢记录；clean(clean(x)) == clean(x)
 * @refs service/data_quality/vocabulary.go, service/models/employee.go
 */

package data_quality

import (
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"compensation-service/service/models"
)

// CleaningTransform 单个字段值变换，纯函数且幂等
type CleaningTransform struct {
	Name  string
	Apply func(value string) string
}

// CleaningRule 字段清洗规则：字段访问器加有序变换列表
type CleaningRule struct {
	Field      string
	Get        func(record *models.EmployeeRecord) (string, bool)
	Set        func(record *models.EmployeeRecord, value string)
	Transforms []CleaningTransform
}

// Cleanser 数据清洗器
type Cleanser struct {
	rules []CleaningRule
}

// NewCleanser 创建数据清洗器，装载内置清洗规则目录
func NewCleanser() *Cleanser {
	return &Cleanser{rules: builtinCleaningRules()}
}

// Rules 返回清洗规则目录
func (c *Cleanser) Rules() []CleaningRule {
	return c.rules
}

// CleanData 对批次执行清洗，返回新的记录数组，输入记录不被修改
func (c *Cleanser) CleanData(records []models.EmployeeRecord) []models.EmployeeRecord {
	cleaned := make([]models.EmployeeRecord, 0, len(records))
	for i := range records {
		clone := records[i].Clone()
		for _, rule := range c.rules {
			value, ok := rule.Get(clone)
			if !ok {
				continue
			}
			for _, transform := range rule.Transforms {
				next, err := applyTransform(transform, value)
				if err != nil {
					// 变换故障保留当前值，继续后续变换，清洗不中断不丢记录
					slog.Warn("清洗变换执行失败，保留原值",
						"field", rule.Field,
						"transform", transform.Name,
						"record_index", i,
						"error", err.Error())
					continue
				}
				value = next
			}
			rule.Set(clone, value)
		}
		cleaned = append(cleaned, *clone)
	}
	return cleaned
}

// applyTransform 执行单个变换，panic 被捕获并转为错误
func applyTransform(transform CleaningTransform, value string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = value
			err = &transformFault{transform: transform.Name, cause: r}
		}
	}()
	return transform.Apply(value), nil
}

type transformFault struct {
	transform string
	cause     interface{}
}

func (f *transformFault) Error() string {
	return "清洗变换 " + f.transform + " 执行异常"
}

var multiSpacePattern = regexp.MustCompile(`\s+`)

// trimTransform 去除首尾空白
func trimTransform() CleaningTransform {
	return CleaningTransform{
		Name:  "trim_whitespace",
		Apply: strings.TrimSpace,
	}
}

// collapseSpaceTransform 将内部连续空白折叠为单个空格
func collapseSpaceTransform() CleaningTransform {
	return CleaningTransform{
		Name: "collapse_whitespace",
		Apply: func(value string) string {
			return multiSpacePattern.ReplaceAllString(value, " ")
		},
	}
}

// titleCaseTransform 转换为标题格式
func titleCaseTransform() CleaningTransform {
	return CleaningTransform{
		Name: "title_case",
		Apply: func(value string) string {
			return cases.Title(language.English).String(value)
		},
	}
}

// canonicalCountryTransform 国家名称规范化，未识别的值保持原样
func canonicalCountryTransform() CleaningTransform {
	return CleaningTransform{
		Name: "canonicalize_country",
		Apply: func(value string) string {
			if canonical, ok := CanonicalCountry(value); ok {
				return canonical
			}
			return value
		},
	}
}

// canonicalRatingTransform 绩效评级规范化，未识别的值保持原样
func canonicalRatingTransform() CleaningTransform {
	return CleaningTransform{
		Name: "canonicalize_rating",
		Apply: func(value string) string {
			if canonical, ok := CanonicalRating(value); ok {
				return canonical
			}
			return value
		},
	}
}

// upperCaseTransform 转换为大写，用于货币代码
func upperCaseTransform() CleaningTransform {
	return CleaningTransform{
		Name:  "upper_case",
		Apply: strings.ToUpper,
	}
}

// builtinCleaningRules 内置清洗规则目录
func builtinCleaningRules() []CleaningRule {
	return []CleaningRule{
		{
			Field: models.FieldEmployeeID,
			Get: func(r *models.EmployeeRecord) (string, bool) {
				return r.EmployeeID, r.EmployeeID != ""
			},
			Set: func(r *models.EmployeeRecord, v string) { r.EmployeeID = v },
			Transforms: []CleaningTransform{
				trimTransform(),
			},
		},
		{
			Field: models.FieldName,
			Get: func(r *models.EmployeeRecord) (string, bool) {
				return r.Name, r.Name != ""
			},
			Set: func(r *models.EmployeeRecord, v string) { r.Name = v },
			Transforms: []CleaningTransform{
				trimTransform(),
				collapseSpaceTransform(),
				titleCaseTransform(),
			},
		},
		{
			Field: models.FieldTitle,
			Get: func(r *models.EmployeeRecord) (string, bool) {
				return r.Title, r.Title != ""
			},
			Set: func(r *models.EmployeeRecord, v string) { r.Title = v },
			Transforms: []CleaningTransform{
				trimTransform(),
				collapseSpaceTransform(),
				titleCaseTransform(),
			},
		},
		{
			Field: models.FieldCountry,
			Get: func(r *models.EmployeeRecord) (string, bool) {
				return r.Country, r.Country != ""
			},
			Set: func(r *models.EmployeeRecord, v string) { r.Country = v },
			Transforms: []CleaningTransform{
				trimTransform(),
				collapseSpaceTransform(),
				canonicalCountryTransform(),
			},
		},
		{
			Field: "salary.currency",
			Get: func(r *models.EmployeeRecord) (string, bool) {
				if r.Salary == nil {
					return "", false
				}
				return r.Salary.Currency, r.Salary.Currency != ""
			},
			Set: func(r *models.EmployeeRecord, v string) { r.Salary.Currency = v },
			Transforms: []CleaningTransform{
				trimTransform(),
				upperCaseTransform(),
			},
		},
		{
			Field: models.FieldPerformanceRating,
			Get: func(r *models.EmployeeRecord) (string, bool) {
				if r.PerformanceRating == nil {
					return "", false
				}
				return *r.PerformanceRating, true
			},
			Set: func(r *models.EmployeeRecord, v string) { r.PerformanceRating = &v },
			Transforms: []CleaningTransform{
				trimTransform(),
				canonicalRatingTransform(),
			},
		},
	}
}
