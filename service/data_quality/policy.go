/*
 * @module service/data_quality/policy
 * @description 数据质量策略参数定义，集中管理容差、取值范围、评分权重等业务策略常量
 * @architecture 分层架构 - 数据质量服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 策略加载 -> 规则目录构建 -> 校验执行
 * @rules 容差与阈值属于业务策略而非机制，必须可配置，禁止在规则内硬编码
 * @refs service/data_quality/catalog.go, service/init.go
 */

package data_quality

// Policy 数据质量业务策略
// 所有容差与阈值集中于此，规则目录与质量评估器基于注入的策略构建
type Policy struct {
	// 数值合理范围
	SalaryAmountMin     float64 // 薪酬金额下限
	SalaryAmountMax     float64 // 薪酬金额上限
	ComparatioMin       float64 // 比较比率下限
	ComparatioMax       float64 // 比较比率上限
	TimeInRoleMaxMonths float64 // 在岗时长上限（月）

	// 业务规则容差
	PeerComparatioTolerance   float64 // 同组比较比率允许偏差（绝对值）
	RatingComparatioUnderpaid float64 // 高绩效员工比较比率下限
	RatingComparatioOverpaid  float64 // 低绩效员工比较比率上限

	// 质量评分权重，四项之和必须为 1.0
	WeightCompleteness float64
	WeightConsistency  float64
	WeightAccuracy     float64
	WeightValidity     float64

	// 完整性评分内部权重
	CompletenessRequiredWeight float64
	CompletenessOptionalWeight float64

	// 建议生成阈值
	CompletenessSuggestionThreshold float64 // 低于该完整性评分时生成补全建议
	CriticalIssueSampleSize         int     // 严重问题建议附带的问题样本数

	// 报告历史容量
	HistoryLimit int
}

// DefaultPolicy 返回缺省数据质量策略
func DefaultPolicy() Policy {
	return Policy{
		SalaryAmountMin:     1000,
		SalaryAmountMax:     10_000_000,
		ComparatioMin:       0.5,
		ComparatioMax:       2.0,
		TimeInRoleMaxMonths: 600, // 50年

		PeerComparatioTolerance:   0.30,
		RatingComparatioUnderpaid: 0.8,
		RatingComparatioOverpaid:  1.2,

		WeightCompleteness: 0.30,
		WeightConsistency:  0.25,
		WeightAccuracy:     0.25,
		WeightValidity:     0.20,

		CompletenessRequiredWeight: 0.8,
		CompletenessOptionalWeight: 0.2,

		CompletenessSuggestionThreshold: 0.8,
		CriticalIssueSampleSize:         5,

		HistoryLimit: 50,
	}
}
