/*
 * @module service/init
 * @description 服务初始化模块，负责策略参数加载与校验引擎装配
 * @architecture 分层架构 - 服务层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 策略参数通过环境变量覆盖缺省值，引擎与历史存储均为进程级单例
 * @refs service/data_quality
 */

package service

import (
	"log"
	"os"

	"github.com/spf13/cast"

	"compensation-service/logger"
	"compensation-service/service/data_quality"
)

var (
	GlobalValidationHistory *data_quality.ValidationHistory
	GlobalValidationEngine  *data_quality.ValidationEngine
)

func init() {
	logger.InitLogger()
	initServices()
}

// initServices 初始化校验引擎及其依赖
func initServices() {
	policy := loadPolicy()

	GlobalValidationHistory = data_quality.NewValidationHistory(policy.HistoryLimit)
	GlobalValidationEngine = data_quality.NewValidationEngine(policy, GlobalValidationHistory)

	log.Println("服务初始化完成")
}

// loadPolicy 加载数据质量策略，环境变量覆盖缺省值
func loadPolicy() data_quality.Policy {
	policy := data_quality.DefaultPolicy()

	if raw := getEnvWithDefault("VALIDATION_HISTORY_LIMIT", ""); raw != "" {
		if limit, err := cast.ToIntE(raw); err == nil && limit > 0 {
			policy.HistoryLimit = limit
		} else {
			log.Printf("VALIDATION_HISTORY_LIMIT 取值无效，使用缺省值: %s", raw)
		}
	}
	if raw := getEnvWithDefault("PEER_COMPARATIO_TOLERANCE", ""); raw != "" {
		if tolerance, err := cast.ToFloat64E(raw); err == nil && tolerance > 0 {
			policy.PeerComparatioTolerance = tolerance
		} else {
			log.Printf("PEER_COMPARATIO_TOLERANCE 取值无效，使用缺省值: %s", raw)
		}
	}

	return policy
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
