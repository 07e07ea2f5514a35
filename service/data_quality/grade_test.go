/*
 * @module service/data_quality/grade_test
 * @description 质量等级映射测试，验证等级阶梯边界精确且互不重叠
 * @architecture 测试层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 总分输入 -> 等级映射 -> 边界验证
 * @rules 边界值落入较高等级
 * @refs grade.go
 */

package data_quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityGrade_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{1.0, "A+"},
		{0.95, "A+"},
		{0.9499, "A"},
		{0.90, "A"},
		{0.8999, "B+"},
		{0.85, "B+"},
		{0.8499, "B"},
		{0.80, "B"},
		{0.7999, "C+"},
		{0.75, "C+"},
		{0.7499, "C"},
		{0.70, "C"},
		{0.6999, "D"},
		{0.60, "D"},
		{0.5999, "F"},
		{0.0, "F"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.grade, QualityGrade(tc.score), "score=%v", tc.score)
	}
}

func TestQualityStatus_Boundaries(t *testing.T) {
	cases := []struct {
		score  float64
		status string
	}{
		{1.0, "excellent"},
		{0.90, "excellent"},
		{0.8999, "good"},
		{0.75, "good"},
		{0.7499, "fair"},
		{0.60, "fair"},
		{0.5999, "poor"},
		{0.0, "poor"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, QualityStatus(tc.score), "score=%v", tc.score)
	}
}
