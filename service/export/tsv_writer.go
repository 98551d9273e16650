/*
 * @module service/export/tsv_writer
 * @description TSV 导出器，将清洗结果序列化为制表符分隔的文本文件
 * @architecture 分层架构 - 数据导出层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 目录创建 -> 内容净化 -> 逐行写入 -> 缓冲刷新
 * @rules 每行固定为 content<TAB>score 两列，无表头；内容中的控制字符写入前替换为空格
 * @dependencies reviewclean-service/service/models
 * @refs service/clean_service.go
 */

package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reviewclean-service/service/models"
)

var contentSanitizer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// SanitizeContent 替换内容中的制表符、换行符和回车符，保证两列结构不被破坏
func SanitizeContent(content string) string {
	return contentSanitizer.Replace(content)
}

// WriteTSV 将记录序列写入制表符分隔文件
// 目标目录不存在时自动创建，目标文件已存在时整体覆盖
func WriteTSV(path string, records []models.ReviewRecord) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, record := range records {
		if record.Content == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\n", SanitizeContent(*record.Content), record.Score); err != nil {
			return fmt.Errorf("写入输出文件失败: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("刷新输出文件失败: %w", err)
	}

	return nil
}
