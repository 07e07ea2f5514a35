/*
 * @module service/data_quality/history
 * @description 校验历史存储，进程生命周期内的有界环形报告列表
 * @architecture 分层架构 - 数据质量服务层（内存存储）
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 报告追加 -> 超限淘汰最旧 -> 查询/清空
 * @rules 历史由调用方显式注入与持有，不使用包级全局状态；读写互斥保护
 * @refs service/data_quality/engine.go
 */

package data_quality

import (
	"sync"

	"compensation-service/service/models"
)

// ValidationHistory 有界的校验报告历史
// 容量满时追加会淘汰最旧的报告
type ValidationHistory struct {
	mu      sync.Mutex
	limit   int
	reports []models.ValidationReport
}

// NewValidationHistory 创建历史存储，limit 小于等于 0 时使用默认容量
func NewValidationHistory(limit int) *ValidationHistory {
	if limit <= 0 {
		limit = DefaultPolicy().HistoryLimit
	}
	return &ValidationHistory{limit: limit}
}

// Record 追加一份报告，超出容量时丢弃最旧条目
func (h *ValidationHistory) Record(report models.ValidationReport) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reports = append(h.reports, report)
	if len(h.reports) > h.limit {
		h.reports = h.reports[len(h.reports)-h.limit:]
	}
}

// All 按时间顺序返回当前全部报告的副本
func (h *ValidationHistory) All() []models.ValidationReport {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.ValidationReport, len(h.reports))
	copy(out, h.reports)
	return out
}

// Len 返回当前历史条目数
func (h *ValidationHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.reports)
}

// Clear 清空全部历史
func (h *ValidationHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = nil
}
