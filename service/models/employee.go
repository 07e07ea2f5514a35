/*
 * @module service/models/employee
 * @description 员工薪酬记录模型定义，包含员工记录、薪酬结构及字段访问器
 * @architecture 分层架构 - 数据模型层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 外部解析层产出记录 -> 校验引擎消费 -> 清洗产出新记录
 * @rules 记录由调用方持有，校验引擎不得修改；清洗通过 Clone 产出新记录
 * @refs service/data_quality
 */

package models

// Salary 薪酬信息，金额加货币代码
type Salary struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// EmployeeRecord 员工薪酬记录
// EmployeeID、Name、Title、Country、Salary 为必填字段，其余字段可选（指针为 nil 表示缺失）
type EmployeeRecord struct {
	EmployeeID             string   `json:"employee_id"`
	Name                   string   `json:"name"`
	Title                  string   `json:"title"`
	Country                string   `json:"country"`
	Salary                 *Salary  `json:"salary,omitempty"`
	PerformanceRating      *string  `json:"performance_rating,omitempty"`
	Comparatio             *float64 `json:"comparatio,omitempty"`
	TimeInRoleMonths       *float64 `json:"time_in_role_months,omitempty"`
	MonthsSinceRaiseMonths *float64 `json:"months_since_raise,omitempty"`
	FutureTalent           *bool    `json:"future_talent,omitempty"`
}

// 校验引擎识别的字段名
const (
	FieldEmployeeID        = "employee_id"
	FieldName              = "name"
	FieldTitle             = "title"
	FieldCountry           = "country"
	FieldSalary            = "salary"
	FieldPerformanceRating = "performance_rating"
	FieldComparatio        = "comparatio"
	FieldTimeInRole        = "time_in_role_months"
	FieldMonthsSinceRaise  = "months_since_raise"
	FieldFutureTalent      = "future_talent"
)

// FieldOrder 字段的声明顺序，用于确定性的结果遍历
var FieldOrder = []string{
	FieldEmployeeID,
	FieldName,
	FieldTitle,
	FieldCountry,
	FieldSalary,
	FieldPerformanceRating,
	FieldComparatio,
	FieldTimeInRole,
	FieldMonthsSinceRaise,
	FieldFutureTalent,
}

// FieldValue 按字段名返回字段作用域的值，缺失的可选字段返回 nil
func (r *EmployeeRecord) FieldValue(field string) interface{} {
	switch field {
	case FieldEmployeeID:
		if r.EmployeeID == "" {
			return nil
		}
		return r.EmployeeID
	case FieldName:
		if r.Name == "" {
			return nil
		}
		return r.Name
	case FieldTitle:
		if r.Title == "" {
			return nil
		}
		return r.Title
	case FieldCountry:
		if r.Country == "" {
			return nil
		}
		return r.Country
	case FieldSalary:
		if r.Salary == nil {
			return nil
		}
		return *r.Salary
	case FieldPerformanceRating:
		if r.PerformanceRating == nil {
			return nil
		}
		return *r.PerformanceRating
	case FieldComparatio:
		if r.Comparatio == nil {
			return nil
		}
		return *r.Comparatio
	case FieldTimeInRole:
		if r.TimeInRoleMonths == nil {
			return nil
		}
		return *r.TimeInRoleMonths
	case FieldMonthsSinceRaise:
		if r.MonthsSinceRaiseMonths == nil {
			return nil
		}
		return *r.MonthsSinceRaiseMonths
	case FieldFutureTalent:
		if r.FutureTalent == nil {
			return nil
		}
		return *r.FutureTalent
	default:
		return nil
	}
}

// Clone 深拷贝记录，清洗器在副本上工作，原始记录保持不变
func (r *EmployeeRecord) Clone() *EmployeeRecord {
	clone := &EmployeeRecord{
		EmployeeID: r.EmployeeID,
		Name:       r.Name,
		Title:      r.Title,
		Country:    r.Country,
	}
	if r.Salary != nil {
		salary := *r.Salary
		clone.Salary = &salary
	}
	if r.PerformanceRating != nil {
		rating := *r.PerformanceRating
		clone.PerformanceRating = &rating
	}
	if r.Comparatio != nil {
		ratio := *r.Comparatio
		clone.Comparatio = &ratio
	}
	if r.TimeInRoleMonths != nil {
		months := *r.TimeInRoleMonths
		clone.TimeInRoleMonths = &months
	}
	if r.MonthsSinceRaiseMonths != nil {
		months := *r.MonthsSinceRaiseMonths
		clone.MonthsSinceRaiseMonths = &months
	}
	if r.FutureTalent != nil {
		flag := *r.FutureTalent
		clone.FutureTalent = &flag
	}
	return clone
}
