/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 测试数据创建 -> 测试执行 -> 断言
 * @rules 提供可重用的测试工具，确保测试数据的一致性
 * @dependencies testify, net/http/httptest
 * @refs service/models
 */

package testutil

import (
	"bytes"
	"compensation-service/service/models"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDataFactory 测试数据工厂
type TestDataFactory struct {
	seq int
}

// NewTestDataFactory 创建测试数据工厂
func NewTestDataFactory() *TestDataFactory {
	return &TestDataFactory{}
}

// EmployeeRecordOption 员工记录选项函数类型
type EmployeeRecordOption func(*models.EmployeeRecord)

// CreateEmployeeRecord 创建一条全字段合法的测试员工记录
func (f *TestDataFactory) CreateEmployeeRecord(opts ...EmployeeRecordOption) models.EmployeeRecord {
	f.seq++
	record := models.EmployeeRecord{
		EmployeeID: fmt.Sprintf("EMP-%04d", f.seq),
		Name:       fmt.Sprintf("Test Employee %c", 'A'+rune((f.seq-1)%26)),
		Title:      "Software Engineer",
		Country:    "United States",
		Salary: &models.Salary{
			Amount:   120000,
			Currency: "USD",
		},
		PerformanceRating:      StringPtr("Meets Expectations"),
		Comparatio:             Float64Ptr(1.0),
		TimeInRoleMonths:       Float64Ptr(24),
		MonthsSinceRaiseMonths: Float64Ptr(12),
		FutureTalent:           BoolPtr(false),
	}

	// 应用选项
	for _, opt := range opts {
		opt(&record)
	}

	return record
}

// WithEmployeeID 设置员工编号
func WithEmployeeID(id string) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.EmployeeID = id }
}

// WithName 设置姓名
func WithName(name string) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.Name = name }
}

// WithTitle 设置职位
func WithTitle(title string) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.Title = title }
}

// WithCountry 设置国家
func WithCountry(country string) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.Country = country }
}

// WithSalary 设置薪酬
func WithSalary(amount float64, currency string) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) {
		r.Salary = &models.Salary{Amount: amount, Currency: currency}
	}
}

// WithoutSalary 移除薪酬字段
func WithoutSalary() EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.Salary = nil }
}

// WithComparatio 设置比较比率
func WithComparatio(ratio float64) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.Comparatio = Float64Ptr(ratio) }
}

// WithPerformanceRating 设置绩效评级
func WithPerformanceRating(rating string) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.PerformanceRating = StringPtr(rating) }
}

// WithTimeInRole 设置在岗时长（月）
func WithTimeInRole(months float64) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.TimeInRoleMonths = Float64Ptr(months) }
}

// WithMonthsSinceRaise 设置距上次调薪时长（月）
func WithMonthsSinceRaise(months float64) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.MonthsSinceRaiseMonths = Float64Ptr(months) }
}

// WithFutureTalent 设置后备人才标记
func WithFutureTalent(flag bool) EmployeeRecordOption {
	return func(r *models.EmployeeRecord) { r.FutureTalent = BoolPtr(flag) }
}

// MinimalRecord 仅含必填字段的记录
func (f *TestDataFactory) MinimalRecord(opts ...EmployeeRecordOption) models.EmployeeRecord {
	f.seq++
	record := models.EmployeeRecord{
		EmployeeID: fmt.Sprintf("EMP-%04d", f.seq),
		Name:       fmt.Sprintf("Test Employee %c", 'A'+rune((f.seq-1)%26)),
		Title:      "Software Engineer",
		Country:    "United States",
		Salary: &models.Salary{
			Amount:   120000,
			Currency: "USD",
		},
	}

	for _, opt := range opts {
		opt(&record)
	}

	return record
}

// 指针辅助函数
func StringPtr(v string) *string    { return &v }
func Float64Ptr(v float64) *float64 { return &v }
func BoolPtr(v bool) *bool          { return &v }

// TestConfig 测试配置
type TestConfig struct {
	Timeout time.Duration
	Cleanup bool
}

// DefaultTestConfig 默认测试配置
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		Timeout: 30 * time.Second,
		Cleanup: true,
	}
}

// HTTPTestHelper HTTP测试辅助工具
type HTTPTestHelper struct{}

// NewHTTPTestHelper 创建HTTP测试辅助工具
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateJSONRequest 创建JSON请求
func (h *HTTPTestHelper) CreateJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var reqBody io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// AssertJSONResponse 断言JSON响应
func (h *HTTPTestHelper) AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedBody interface{}) {
	assert.Equal(t, expectedStatus, w.Code)

	if expectedBody != nil {
		var actualBody interface{}
		err := json.Unmarshal(w.Body.Bytes(), &actualBody)
		assert.NoError(t, err)

		expectedJSON, _ := json.Marshal(expectedBody)
		actualJSON, _ := json.Marshal(actualBody)

		assert.JSONEq(t, string(expectedJSON), string(actualJSON))
	}
}
