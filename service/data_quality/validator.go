/*
 * @module service/data_quality/validator
 * @description 数据验证器，对清洗结果复查唯一性、最小长度和评分无歧义三项约束
 * @architecture 分层架构 - 数据验证层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 清洗结果 -> 逐条约束检查 -> 问题列表生成
 * @rules 验证不修改数据，仅产出问题描述；空问题列表表示验证通过
 * @dependencies reviewclean-service/service/models
 * @refs service/data_quality/cleanser.go
 */

package data_quality

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reviewclean-service/service/models"
)

// Validator 数据验证器
type Validator struct {
	minContentLength int
}

// NewValidator 创建数据验证器实例
func NewValidator(minContentLength int) *Validator {
	return &Validator{
		minContentLength: minContentLength,
	}
}

// ValidateCleaned 检查清洗结果是否满足全部约束，返回违反约束的问题描述列表
func (v *Validator) ValidateCleaned(records []models.ReviewRecord) []string {
	var issues []string

	scoreByContent := make(map[string]int64, len(records))
	for i, record := range records {
		if record.Content == nil {
			issues = append(issues, fmt.Sprintf("第 %d 行内容缺失", i))
			continue
		}
		content := *record.Content

		if utf8.RuneCountInString(strings.TrimSpace(content)) < v.minContentLength {
			issues = append(issues, fmt.Sprintf("第 %d 行内容长度不足 %d 个字符", i, v.minContentLength))
		}

		if prev, ok := scoreByContent[content]; ok {
			if prev != record.Score {
				issues = append(issues, fmt.Sprintf("第 %d 行文本带有歧义评分: %d 与 %d", i, prev, record.Score))
			} else {
				issues = append(issues, fmt.Sprintf("第 %d 行文本重复出现", i))
			}
			continue
		}
		scoreByContent[content] = record.Score
	}

	return issues
}
