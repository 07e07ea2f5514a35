/*
 * @module api/controllers/meta_controller
 * @description 元数据控制器，提供国家/货币对照、绩效评级词表等参考数据查询
 * @architecture 分层架构 - 控制器层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow HTTP请求处理流程
 * @rules 元数据为静态参考数据，接口只读
 * @dependencies compensation-service/service/data_quality, github.com/go-chi/render
 * @refs service/data_quality/vocabulary.go
 */

package controllers

import (
	"net/http"
	"sort"

	"github.com/go-chi/render"

	"compensation-service/service/data_quality"
)

// MetaController 元数据控制器
type MetaController struct {
}

// NewMetaController 创建元数据控制器实例
func NewMetaController() *MetaController {
	return &MetaController{}
}

// @Summary 获取已知国家元数据
// @Description 获取已知国家及其对应薪酬货币的对照表
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]string}
// @Router /meta/countries [get]
func (c *MetaController) GetCountries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取国家元数据成功", data_quality.KnownCountries))
}

// @Summary 获取已知货币元数据
// @Description 获取校验引擎识别的货币代码列表
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]string}
// @Router /meta/currencies [get]
func (c *MetaController) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies := make([]string, 0, len(data_quality.KnownCurrencies))
	for code := range data_quality.KnownCurrencies {
		currencies = append(currencies, code)
	}
	sort.Strings(currencies)
	render.JSON(w, r, SuccessResponse("获取货币元数据成功", currencies))
}

// @Summary 获取绩效评级词表
// @Description 获取规范绩效评级词表，按等级从高到低排列
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]string}
// @Router /meta/performance-ratings [get]
func (c *MetaController) GetPerformanceRatings(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取绩效评级词表成功", data_quality.PerformanceRatings))
}
