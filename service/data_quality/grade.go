/*
 * @module service/data_quality/grade
 * @description 质量等级映射，将总分换算为字母等级与状态标签
 * @architecture 分层架构 - 数据质量服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 总分输入 -> 阈值阶梯比对 -> 等级/状态输出
 * @rules 阈值阶梯单调且互不重叠，边界值落入较高等级
 * @refs service/data_quality/engine.go
 */

package data_quality

// gradeStep 等级阶梯项，按阈值降序排列
type gradeStep struct {
	threshold float64
	grade     string
}

var gradeSteps = []gradeStep{
	{0.95, "A+"},
	{0.90, "A"},
	{0.85, "B+"},
	{0.80, "B"},
	{0.75, "C+"},
	{0.70, "C"},
	{0.60, "D"},
}

// QualityGrade 将总分映射为字母等级，低于全部阈值时返回 F
func QualityGrade(score float64) string {
	for _, step := range gradeSteps {
		if score >= step.threshold {
			return step.grade
		}
	}
	return "F"
}

// QualityStatus 将总分映射为状态标签
func QualityStatus(score float64) string {
	switch {
	case score >= 0.90:
		return "excellent"
	case score >= 0.75:
		return "good"
	case score >= 0.60:
		return "fair"
	default:
		return "poor"
	}
}
