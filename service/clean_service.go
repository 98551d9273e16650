/*
 * @module service/clean_service
 * @description 评论数据清洗服务，编排读取、合并、清洗、校验、报告与导出全流程
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 输入预检 -> 分区读取 -> 合并 -> 数据清洗 -> 结果校验 -> 汇总报告 -> TSV 导出
 * @rules 任务一次性运行到底，失败即终止，不做重试；输入缺失在任何读取发生之前报告
 * @dependencies reviewclean-service/service/dataset, reviewclean-service/service/data_quality, reviewclean-service/service/export
 * @refs main.go
 */

package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reviewclean-service/service/config"
	"reviewclean-service/service/data_quality"
	"reviewclean-service/service/dataset"
	"reviewclean-service/service/export"
	"reviewclean-service/service/models"
)

// ErrInputNotFound 输入分区文件不存在
var ErrInputNotFound = errors.New("输入文件不存在")

// CleanService 评论数据清洗服务
type CleanService struct {
	config    config.PipelineConfig
	cleanser  *data_quality.Cleanser
	validator *data_quality.Validator
	printer   *message.Printer
}

// NewCleanService 创建清洗服务实例
func NewCleanService(cfg config.PipelineConfig) *CleanService {
	return &CleanService{
		config:    cfg,
		cleanser:  data_quality.NewCleanser(cfg.MinContentLength),
		validator: data_quality.NewValidator(cfg.MinContentLength),
		printer:   message.NewPrinter(language.English),
	}
}

// CheckInputs 预检两个分区文件是否存在，缺失时在任何读取发生之前返回 ErrInputNotFound
func (s *CleanService) CheckInputs() error {
	for _, path := range []string{s.config.TrainPath, s.config.TestPath} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrInputNotFound, path)
			}
			return fmt.Errorf("检查输入文件失败: %w", err)
		}
	}
	return nil
}

// Run 执行完整清洗流水线并返回汇总报告
func (s *CleanService) Run() (*models.CleanReport, error) {
	start := time.Now()

	if err := s.CheckInputs(); err != nil {
		return nil, err
	}

	fmt.Println("正在读取 Arrow 文件...")
	trainRecords, err := dataset.ReadArrowFile(s.config.TrainPath)
	if err != nil {
		return nil, fmt.Errorf("读取 train 分区失败: %w", err)
	}
	testRecords, err := dataset.ReadArrowFile(s.config.TestPath)
	if err != nil {
		return nil, fmt.Errorf("读取 test 分区失败: %w", err)
	}

	// 按 train 在前、test 在后的顺序合并，去重时保留首次出现
	combined := make([]models.ReviewRecord, 0, len(trainRecords)+len(testRecords))
	combined = append(combined, trainRecords...)
	combined = append(combined, testRecords...)

	cleaned, stats := s.cleanser.Clean(combined)

	issues := s.validator.ValidateCleaned(cleaned)
	for _, issue := range issues {
		slog.Warn("清洗结果校验未通过", "issue", issue)
	}

	report := &models.CleanReport{
		RunID:       uuid.New().String(),
		TrainRows:   len(trainRecords),
		TestRows:    len(testRecords),
		TotalBefore: len(combined),
		TotalAfter:  len(cleaned),
		Removed:     len(combined) - len(cleaned),
		ScoreCounts: scoreCounts(cleaned),
		Stats:       stats,
		Issues:      issues,
		OutputPath:  s.config.OutputPath,
		StartTime:   start,
	}

	s.printSummary(report)

	if err := export.WriteTSV(s.config.OutputPath, cleaned); err != nil {
		return nil, fmt.Errorf("导出清洗结果失败: %w", err)
	}
	fmt.Printf("\n输出已写入: %s\n", s.config.OutputPath)

	report.Duration = time.Since(start)
	return report, nil
}

// scoreCounts 统计清洗结果中各评分的记录数
func scoreCounts(records []models.ReviewRecord) map[int64]int {
	counts := make(map[int64]int)
	for _, record := range records {
		counts[record.Score]++
	}
	return counts
}

// printSummary 打印清洗前后的行数统计和各评分分布，评分按升序排列
func (s *CleanService) printSummary(report *models.CleanReport) {
	p := s.printer

	p.Printf("\n清洗前行数:\n")
	p.Printf("  train : %d\n", report.TrainRows)
	p.Printf("  test  : %d\n", report.TestRows)
	p.Printf("  total : %d\n", report.TotalBefore)

	p.Printf("\n清洗后各评分行数:\n")
	scores := make([]int64, 0, len(report.ScoreCounts))
	for score := range report.ScoreCounts {
		scores = append(scores, score)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i] < scores[j] })
	for _, score := range scores {
		p.Printf("  score %d: %d\n", score, report.ScoreCounts[score])
	}

	p.Printf("\n清洗后总行数: %d\n", report.TotalAfter)
	p.Printf("移除行数    : %d\n", report.Removed)
}
