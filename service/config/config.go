/*
 * @module service/config/config
 * @description 清洗流水线配置，内置默认值并支持环境变量覆盖
 * @architecture 分层架构 - 配置层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 内置默认值 -> 环境变量覆盖 -> 注入清洗服务
 * @rules 配置在任务启动时一次性构造，运行期间不再变化
 * @dependencies github.com/spf13/cast
 * @refs service/clean_service.go
 */

package config

import (
	"os"

	"github.com/spf13/cast"
)

// 默认配置，与数据集仓库的固定目录结构一致
const (
	DefaultTrainPath        = "az_data/hajili_azerbaijani_review_sentiment_classification/train/data-00000-of-00001.arrow"
	DefaultTestPath         = "az_data/hajili_azerbaijani_review_sentiment_classification/test/data-00000-of-00001.arrow"
	DefaultOutputPath       = "az_data/reviews_clean.tsv"
	DefaultMinContentLength = 10
)

// PipelineConfig 清洗流水线配置
type PipelineConfig struct {
	TrainPath        string // 训练分区 Arrow 文件路径
	TestPath         string // 测试分区 Arrow 文件路径
	OutputPath       string // 清洗结果 TSV 输出路径
	MinContentLength int    // 内容去除首尾空白后的最小码点数
}

// Default 返回内置默认配置
func Default() PipelineConfig {
	return PipelineConfig{
		TrainPath:        DefaultTrainPath,
		TestPath:         DefaultTestPath,
		OutputPath:       DefaultOutputPath,
		MinContentLength: DefaultMinContentLength,
	}
}

// FromEnv 从环境变量加载配置，未设置的项使用默认值
func FromEnv() PipelineConfig {
	cfg := Default()

	if val := os.Getenv("TRAIN_ARROW_PATH"); val != "" {
		cfg.TrainPath = val
	}
	if val := os.Getenv("TEST_ARROW_PATH"); val != "" {
		cfg.TestPath = val
	}
	if val := os.Getenv("OUTPUT_TSV_PATH"); val != "" {
		cfg.OutputPath = val
	}
	if val := os.Getenv("MIN_CONTENT_LENGTH"); val != "" {
		if n := cast.ToInt(val); n > 0 {
			cfg.MinContentLength = n
		}
	}

	return cfg
}
