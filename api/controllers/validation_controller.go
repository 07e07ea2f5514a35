/*
 * @module api/controllers/validation_controller
 * @description 数据校验控制器，提供批次校验、校验历史、数据清洗、规则目录查询等接口
 * @architecture 分层架构 - 控制器层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow HTTP请求处理流程
 * @rules 统一的错误处理和响应格式，强类型API定义；校验本身永不失败，仅请求解析可能返回错误
 * @dependencies compensation-service/service/data_quality, github.com/go-chi/render
 * @refs service/models/validation_models.go
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"compensation-service/service"
	"compensation-service/service/data_quality"
	"compensation-service/service/models"
)

// ValidationController 数据校验控制器
type ValidationController struct {
	engine *data_quality.ValidationEngine
}

// NewValidationController 创建数据校验控制器实例
func NewValidationController() *ValidationController {
	return &ValidationController{
		engine: service.GlobalValidationEngine,
	}
}

// ValidateDatasetRequest 批次校验请求
type ValidateDatasetRequest struct {
	Records []models.EmployeeRecord `json:"records"`
	Options map[string]interface{}  `json:"options,omitempty"`
}

// CleanseDatasetRequest 数据清洗请求
type CleanseDatasetRequest struct {
	Records []models.EmployeeRecord `json:"records"`
}

// ValidateDataset 执行批次校验
// @Summary 执行批次校验
// @Description 对员工薪酬记录批次执行完整的数据校验，返回校验报告并记入历史
// @Tags 数据校验
// @Accept json
// @Produce json
// @Param request body ValidateDatasetRequest true "待校验的记录批次"
// @Success 200 {object} APIResponse{data=models.ValidationReport} "校验完成"
// @Failure 400 {object} APIResponse "请求参数错误"
// @Router /validation/checks [post]
func (c *ValidationController) ValidateDataset(w http.ResponseWriter, r *http.Request) {
	var req ValidateDatasetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求参数格式错误", err))
		return
	}

	report := c.engine.ValidateDataset(req.Records, req.Options)
	render.JSON(w, r, SuccessResponse("数据校验完成", report))
}

// GetValidationHistory 获取校验历史
// @Summary 获取校验历史
// @Description 按时间顺序返回当前进程生命周期内的全部校验报告
// @Tags 数据校验
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.ValidationReport} "获取成功"
// @Router /validation/history [get]
func (c *ValidationController) GetValidationHistory(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取校验历史成功", c.engine.History().All()))
}

// ClearValidationHistory 清空校验历史
// @Summary 清空校验历史
// @Description 清空当前进程内的全部校验报告
// @Tags 数据校验
// @Produce json
// @Success 200 {object} APIResponse "清空成功"
// @Router /validation/history [delete]
func (c *ValidationController) ClearValidationHistory(w http.ResponseWriter, r *http.Request) {
	c.engine.History().Clear()
	render.JSON(w, r, SuccessResponse("校验历史已清空", nil))
}

// CleanseDataset 执行数据清洗
// @Summary 执行数据清洗
// @Description 对记录批次应用幂等的字段清洗规则，返回新的记录数组，原批次不被修改
// @Tags 数据校验
// @Accept json
// @Produce json
// @Param request body CleanseDatasetRequest true "待清洗的记录批次"
// @Success 200 {object} APIResponse{data=[]models.EmployeeRecord} "清洗完成"
// @Failure 400 {object} APIResponse "请求参数错误"
// @Router /validation/cleanse [post]
func (c *ValidationController) CleanseDataset(w http.ResponseWriter, r *http.Request) {
	var req CleanseDatasetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求参数格式错误", err))
		return
	}

	cleaned := c.engine.CleanData(req.Records)
	render.JSON(w, r, SuccessResponse("数据清洗完成", cleaned))
}

// GetValidationRules 获取校验规则目录
// @Summary 获取校验规则目录
// @Description 返回当前加载的全部字段规则与业务规则描述符
// @Tags 数据校验
// @Produce json
// @Success 200 {object} APIResponse{data=[]data_quality.RuleDescriptor} "获取成功"
// @Router /validation/rules [get]
func (c *ValidationController) GetValidationRules(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取校验规则目录成功", c.engine.Catalog().Descriptors()))
}
