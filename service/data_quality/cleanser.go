/*
 * @module service/data_quality/cleanser
 * @description 数据清洗器，负责空值去除、内容去重、短文本过滤和歧义评分剔除
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 空值去除+去重 -> 长度过滤 -> 歧义过滤
 * @rules 三个阶段严格按序执行，每个阶段产生新的记录序列并保持相对顺序
 * @dependencies reviewclean-service/service/models
 * @refs service/data_quality/validator.go
 */

package data_quality

import (
	"strings"
	"unicode/utf8"

	"reviewclean-service/service/models"
)

// Cleanser 数据清洗器
type Cleanser struct {
	minContentLength int
}

// NewCleanser 创建数据清洗器实例
func NewCleanser(minContentLength int) *Cleanser {
	return &Cleanser{
		minContentLength: minContentLength,
	}
}

// Clean 按固定顺序执行全部清洗阶段，返回清洗结果和各阶段统计
// 纯函数：不修改输入切片，空输入返回空输出
// 歧义判定基于去重前的完整输入：同一文本在原始合并集中出现过多个不同评分时，
// 该文本的所有记录整组剔除，而不是按多数票保留其一
func (c *Cleanser) Clean(records []models.ReviewRecord) ([]models.ReviewRecord, models.CleanStats) {
	stats := models.CleanStats{Input: len(records)}

	deduped, nullDropped, duplicateDropped := c.Deduplicate(records)
	stats.NullDropped = nullDropped
	stats.DuplicateDropped = duplicateDropped

	filtered := c.FilterShort(deduped)
	stats.ShortDropped = len(deduped) - len(filtered)

	ambiguous := c.AmbiguousContents(records)
	cleaned := c.RemoveAmbiguous(filtered, ambiguous)
	stats.AmbiguousDropped = len(filtered) - len(cleaned)

	stats.Output = len(cleaned)
	return cleaned, stats
}

// Deduplicate 去除内容缺失的记录，并按内容精确去重，保留首次出现
func (c *Cleanser) Deduplicate(records []models.ReviewRecord) (out []models.ReviewRecord, nullDropped, duplicateDropped int) {
	seen := make(map[string]struct{}, len(records))
	out = make([]models.ReviewRecord, 0, len(records))
	for _, record := range records {
		if record.Content == nil {
			nullDropped++
			continue
		}
		if _, ok := seen[*record.Content]; ok {
			duplicateDropped++
			continue
		}
		seen[*record.Content] = struct{}{}
		out = append(out, record)
	}
	return out, nullDropped, duplicateDropped
}

// FilterShort 去除首尾空白后长度不足的记录，长度按码点计而非字节
func (c *Cleanser) FilterShort(records []models.ReviewRecord) []models.ReviewRecord {
	out := make([]models.ReviewRecord, 0, len(records))
	for _, record := range records {
		if record.Content == nil {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(*record.Content)) >= c.minContentLength {
			out = append(out, record)
		}
	}
	return out
}

// AmbiguousContents 统计每个文本对应的不同评分，返回出现过两个及以上评分的文本集合
// 统计对象是未去重的记录序列，否则去重后每个文本只剩单条记录，歧义永远无法检出
func (c *Cleanser) AmbiguousContents(records []models.ReviewRecord) map[string]struct{} {
	scoresByContent := make(map[string]map[int64]struct{})
	for _, record := range records {
		if record.Content == nil {
			continue
		}
		scores, ok := scoresByContent[*record.Content]
		if !ok {
			scores = make(map[int64]struct{})
			scoresByContent[*record.Content] = scores
		}
		scores[record.Score] = struct{}{}
	}

	ambiguous := make(map[string]struct{})
	for content, scores := range scoresByContent {
		if len(scores) > 1 {
			ambiguous[content] = struct{}{}
		}
	}
	return ambiguous
}

// RemoveAmbiguous 剔除文本出现在歧义集合中的全部记录
func (c *Cleanser) RemoveAmbiguous(records []models.ReviewRecord, ambiguous map[string]struct{}) []models.ReviewRecord {
	out := make([]models.ReviewRecord, 0, len(records))
	for _, record := range records {
		if record.Content == nil {
			continue
		}
		if _, ok := ambiguous[*record.Content]; ok {
			continue
		}
		out = append(out, record)
	}
	return out
}
