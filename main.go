package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"reviewclean-service/logger"
	"reviewclean-service/service"
	"reviewclean-service/service/config"
)

// @title 评论数据集清洗任务
// @version 1.0
// @description 读取 train/test 两个 Arrow 分区，去重、过滤并导出清洗后的 TSV 文件
func main() {
	os.Exit(run())
}

func run() int {
	// 在读取任何环境变量之前尝试加载工作目录下的 .env（不覆盖已有变量）
	_ = godotenv.Load()
	logger.InitLogger()

	cfg := config.FromEnv()
	svc := service.NewCleanService(cfg)

	report, err := svc.Run()
	if err != nil {
		if errors.Is(err, service.ErrInputNotFound) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
			return 1
		}
		slog.Error("清洗任务执行失败", "error", err)
		return 1
	}

	slog.Info("清洗任务完成",
		"run_id", report.RunID,
		"total_before", report.TotalBefore,
		"total_after", report.TotalAfter,
		"duration", report.Duration.String(),
	)
	return 0
}
