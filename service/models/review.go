/*
 * @module service/models/review
 * @description 评论数据模型，包含评论记录、清洗阶段统计和清洗任务报告
 * @architecture 数据模型层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 分区读取 -> 合并 -> 数据清洗 -> 报告生成 -> 结果导出
 * @rules 记录一经构造不再原地修改，每个清洗阶段产生新的记录序列
 * @dependencies time
 * @refs service/data_quality/, service/dataset/
 */

package models

import (
	"time"
)

// ReviewRecord 评论记录，Content 为 nil 表示源数据中该行内容缺失
type ReviewRecord struct {
	Content *string `json:"content"`
	Score   int64   `json:"score"`
}

// NewReviewRecord 创建内容非空的评论记录
func NewReviewRecord(content string, score int64) ReviewRecord {
	return ReviewRecord{Content: &content, Score: score}
}

// CleanStats 各清洗阶段的输入输出统计
type CleanStats struct {
	Input            int `json:"input"`             // 清洗前记录总数
	NullDropped      int `json:"null_dropped"`      // 内容缺失被去除的记录数
	DuplicateDropped int `json:"duplicate_dropped"` // 内容重复被去除的记录数
	ShortDropped     int `json:"short_dropped"`     // 内容过短被去除的记录数
	AmbiguousDropped int `json:"ambiguous_dropped"` // 评分歧义被去除的记录数
	Output           int `json:"output"`            // 清洗后记录总数
}

// CleanReport 一次清洗任务的汇总报告
type CleanReport struct {
	RunID       string        `json:"run_id"`
	TrainRows   int           `json:"train_rows"`
	TestRows    int           `json:"test_rows"`
	TotalBefore int           `json:"total_before"`
	TotalAfter  int           `json:"total_after"`
	Removed     int           `json:"removed"`
	ScoreCounts map[int64]int `json:"score_counts"`
	Stats       CleanStats    `json:"stats"`
	Issues      []string      `json:"issues,omitempty"`
	OutputPath  string        `json:"output_path"`
	StartTime   time.Time     `json:"start_time"`
	Duration    time.Duration `json:"duration"`
}
