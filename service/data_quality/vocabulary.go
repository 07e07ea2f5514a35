/*
 * @module service/data_quality/vocabulary
 * @description 薪酬数据参考词表，包含国家/货币对照、绩效评级词表及同义词规范化
 * @architecture 分层架构 - 数据质量服务层（静态参考数据）
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow 静态词表定义 -> 规则目录与清洗器引用
 * @rules 词表匹配不区分大小写；同义词统一映射到规范值
 * @refs service/data_quality/catalog.go, service/data_quality/cleanser.go
 */

package data_quality

import (
	"strings"
)

// KnownCountries 已知国家及其对应的薪酬货币代码
var KnownCountries = map[string]string{
	"United States":  "USD",
	"United Kingdom": "GBP",
	"Germany":        "EUR",
	"France":         "EUR",
	"Netherlands":    "EUR",
	"Spain":          "EUR",
	"Ireland":        "EUR",
	"Poland":         "PLN",
	"India":          "INR",
	"China":          "CNY",
	"Japan":          "JPY",
	"Singapore":      "SGD",
	"Australia":      "AUD",
	"Canada":         "CAD",
	"Brazil":         "BRL",
	"Mexico":         "MXN",
}

// countrySynonyms 国家同义词表，小写键映射到规范国家名
var countrySynonyms = map[string]string{
	"usa":                      "United States",
	"us":                       "United States",
	"u.s.":                     "United States",
	"u.s.a.":                   "United States",
	"america":                  "United States",
	"united states of america": "United States",
	"uk":            "United Kingdom",
	"u.k.":          "United Kingdom",
	"great britain": "United Kingdom",
	"britain":       "United Kingdom",
	"england":       "United Kingdom",
	"gb":            "United Kingdom",
	"deutschland":   "Germany",
	"de":            "Germany",
	"fr":            "France",
	"holland":       "Netherlands",
	"nl":            "Netherlands",
	"es":            "Spain",
	"ie":            "Ireland",
	"pl":            "Poland",
	"in":            "India",
	"prc":           "China",
	"cn":            "China",
	"jp":            "Japan",
	"sg":            "Singapore",
	"au":            "Australia",
	"ca":            "Canada",
	"br":            "Brazil",
	"mx":            "Mexico",
}

// KnownCurrencies 已知货币代码集合
var KnownCurrencies = map[string]bool{
	"USD": true,
	"GBP": true,
	"EUR": true,
	"PLN": true,
	"INR": true,
	"CNY": true,
	"JPY": true,
	"SGD": true,
	"AUD": true,
	"CAD": true,
	"BRL": true,
	"MXN": true,
}

// PerformanceRatings 绩效评级规范词表，按等级从高到低排列
var PerformanceRatings = []string{
	"Exceptional",
	"Exceeds Expectations",
	"Meets Expectations",
	"Needs Improvement",
	"Unsatisfactory",
}

// performanceRatingRank 规范评级对应的等级序数，5 最高
var performanceRatingRank = map[string]int{
	"Exceptional":          5,
	"Exceeds Expectations": 4,
	"Meets Expectations":   3,
	"Needs Improvement":    2,
	"Unsatisfactory":       1,
}

// ratingSynonyms 绩效评级同义词表，小写键映射到规范评级
var ratingSynonyms = map[string]string{
	"outstanding":          "Exceptional",
	"top performer":        "Exceptional",
	"5":                    "Exceptional",
	"exceeds":              "Exceeds Expectations",
	"exceeds expectation":  "Exceeds Expectations",
	"above expectations":   "Exceeds Expectations",
	"4":                    "Exceeds Expectations",
	"meets":                "Meets Expectations",
	"meeting expectations": "Meets Expectations",
	"on track":             "Meets Expectations",
	"3":                    "Meets Expectations",
	"below expectations":   "Needs Improvement",
	"underperforming":      "Needs Improvement",
	"2":                    "Needs Improvement",
	"poor":                 "Unsatisfactory",
	"unacceptable":         "Unsatisfactory",
	"1":                    "Unsatisfactory",
}

// CanonicalCountry 将国家名规范化，返回规范名及是否命中词表
// 匹配不区分大小写，同义词（缩写、别名）映射到规范国家名
func CanonicalCountry(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for canonical := range KnownCountries {
		if strings.ToLower(canonical) == lower {
			return canonical, true
		}
	}
	if canonical, ok := countrySynonyms[lower]; ok {
		return canonical, true
	}
	return trimmed, false
}

// CanonicalRating 将绩效评级规范化，返回规范评级及是否命中词表
func CanonicalRating(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for _, canonical := range PerformanceRatings {
		if strings.ToLower(canonical) == lower {
			return canonical, true
		}
	}
	if canonical, ok := ratingSynonyms[lower]; ok {
		return canonical, true
	}
	return trimmed, false
}

// RatingRank 返回绩效评级的等级序数，未知评级返回 0
func RatingRank(value string) int {
	canonical, ok := CanonicalRating(value)
	if !ok {
		return 0
	}
	return performanceRatingRank[canonical]
}

// IsKnownCurrency 判断货币代码是否在已知集合中，匹配不区分大小写
func IsKnownCurrency(code string) bool {
	return KnownCurrencies[strings.ToUpper(strings.TrimSpace(code))]
}
