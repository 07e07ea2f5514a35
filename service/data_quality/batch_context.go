/*
 * @module service/data_quality/batch_context
 * @description 批次上下文索引，一次构建供全部业务规则复用的重复计数与同组分组
 * @architecture 分层架构 - 数据质量服务层（索引/竞技场模式）
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 批次接收 -> 索引构建 -> 业务规则评估复用
 * @rules 每次 ValidateDataset 调用构建一次索引，同组比较由 O(n^2) 降为摊还 O(n)
 * @refs service/data_quality/business_validator.go, service/data_quality/catalog.go
 */

package data_quality

import (
	"compensation-service/service/models"
	"strings"
)

// BatchContext 一次校验调用的批次上下文
// 持有原始批次及预聚合索引：员工编号重复计数、(国家, 职位) 同组分组
type BatchContext struct {
	Records []models.EmployeeRecord

	duplicateCounts map[string]int
	peerGroups      map[string][]int
}

// NewBatchContext 构建批次上下文，索引只扫描批次一次
func NewBatchContext(records []models.EmployeeRecord) *BatchContext {
	ctx := &BatchContext{
		Records:         records,
		duplicateCounts: make(map[string]int),
		peerGroups:      make(map[string][]int),
	}
	for i := range records {
		record := &records[i]
		if record.EmployeeID != "" {
			ctx.duplicateCounts[record.EmployeeID]++
		}
		if key, ok := peerKey(record); ok {
			ctx.peerGroups[key] = append(ctx.peerGroups[key], i)
		}
	}
	return ctx
}

// peerKey 形成同组键：同国家同职位，忽略大小写与首尾空白
func peerKey(record *models.EmployeeRecord) (string, bool) {
	country := strings.ToLower(strings.TrimSpace(record.Country))
	title := strings.ToLower(strings.TrimSpace(record.Title))
	if country == "" || title == "" {
		return "", false
	}
	return country + "\x00" + title, true
}

// DuplicateCount 返回员工编号在批次内出现的次数
func (c *BatchContext) DuplicateCount(employeeID string) int {
	return c.duplicateCounts[employeeID]
}

// DuplicatedIDs 返回出现超过一次的员工编号集合及各自出现次数
func (c *BatchContext) DuplicatedIDs() map[string]int {
	duplicated := make(map[string]int)
	for id, count := range c.duplicateCounts {
		if count > 1 {
			duplicated[id] = count
		}
	}
	return duplicated
}

// Peers 返回与指定记录同国家同职位的其他记录下标，不含记录本身
func (c *BatchContext) Peers(record *models.EmployeeRecord, index int) []int {
	key, ok := peerKey(record)
	if !ok {
		return nil
	}
	group := c.peerGroups[key]
	peers := make([]int, 0, len(group))
	for _, i := range group {
		if i != index {
			peers = append(peers, i)
		}
	}
	return peers
}

// PeerImpliedComparatio 由同组薪酬推算记录的预期比较比率
// 预期值 = 本人薪酬 / 同组平均薪酬 × 同组平均比较比率；同组为空时返回 (0, false)
func (c *BatchContext) PeerImpliedComparatio(record *models.EmployeeRecord, index int) (float64, bool) {
	if record.Salary == nil || record.Salary.Amount <= 0 {
		return 0, false
	}

	var salarySum float64
	var salaryCount int
	var ratioSum float64
	var ratioCount int
	for _, i := range c.Peers(record, index) {
		peer := &c.Records[i]
		if peer.Salary == nil || peer.Salary.Amount <= 0 {
			continue
		}
		salarySum += peer.Salary.Amount
		salaryCount++
		if peer.Comparatio != nil {
			ratioSum += *peer.Comparatio
			ratioCount++
		}
	}
	if salaryCount == 0 {
		return 0, false
	}

	avgSalary := salarySum / float64(salaryCount)
	avgRatio := 1.0
	if ratioCount > 0 {
		avgRatio = ratioSum / float64(ratioCount)
	}
	return record.Salary.Amount / avgSalary * avgRatio, true
}
