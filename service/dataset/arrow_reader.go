/*
 * @module service/dataset/arrow_reader
 * @description Arrow IPC 流文件读取器，按批次、按行展开为评论记录序列
 * @architecture 分层架构 - 数据接入层
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 文件打开 -> 批次迭代 -> 单元格取值 -> 记录展开
 * @rules 本阶段不做任何过滤，保持文件内的原始行序，content 为空的行原样保留
 * @dependencies github.com/apache/arrow-go/v18, github.com/spf13/cast
 * @refs service/clean_service.go
 */

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/spf13/cast"

	"reviewclean-service/service/models"
)

// 数据集文件中约定的列名
const (
	ContentColumn = "content"
	ScoreColumn   = "score"
)

// ReadArrowFile 读取一个 Arrow IPC 流文件，按批次、按行顺序展开为评论记录
func ReadArrowFile(path string) ([]models.ReviewRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开 Arrow 文件失败: %w", err)
	}
	defer f.Close()

	reader, err := ipc.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("创建 Arrow 流读取器失败: %w", err)
	}
	defer reader.Release()

	var records []models.ReviewRecord
	batchIndex := 0
	for reader.Next() {
		batch := reader.Record()
		contentCol, scoreCol, err := locateColumns(batch)
		if err != nil {
			return nil, fmt.Errorf("第 %d 批次: %w", batchIndex, err)
		}

		rows := int(batch.NumRows())
		for i := 0; i < rows; i++ {
			content, err := stringCell(contentCol, i)
			if err != nil {
				return nil, fmt.Errorf("第 %d 批次第 %d 行: %w", batchIndex, i, err)
			}
			score, err := intCell(scoreCol, i)
			if err != nil {
				return nil, fmt.Errorf("第 %d 批次第 %d 行: %w", batchIndex, i, err)
			}
			records = append(records, models.ReviewRecord{Content: content, Score: score})
		}
		batchIndex++
	}
	if err := reader.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("读取 Arrow 批次失败: %w", err)
	}

	return records, nil
}

// locateColumns 按列名定位 content 和 score 列，缺列视为数据文件损坏
func locateColumns(batch arrow.Record) (arrow.Array, arrow.Array, error) {
	schema := batch.Schema()

	contentIdx := schema.FieldIndices(ContentColumn)
	if len(contentIdx) == 0 {
		return nil, nil, fmt.Errorf("批次缺少 %s 列", ContentColumn)
	}
	scoreIdx := schema.FieldIndices(ScoreColumn)
	if len(scoreIdx) == 0 {
		return nil, nil, fmt.Errorf("批次缺少 %s 列", ScoreColumn)
	}

	return batch.Column(contentIdx[0]), batch.Column(scoreIdx[0]), nil
}

// stringCell 读取字符串单元格，空值返回 nil
// 批次缓冲区在下一次迭代后会被释放，取值时复制字符串
func stringCell(col arrow.Array, i int) (*string, error) {
	if col.IsNull(i) {
		return nil, nil
	}
	switch arr := col.(type) {
	case *array.String:
		s := strings.Clone(arr.Value(i))
		return &s, nil
	case *array.LargeString:
		s := strings.Clone(arr.Value(i))
		return &s, nil
	default:
		return nil, fmt.Errorf("content 列类型不支持: %s", col.DataType())
	}
}

// intCell 读取整数单元格，兼容 Arrow 的各种整数位宽
func intCell(col arrow.Array, i int) (int64, error) {
	if col.IsNull(i) {
		return 0, nil
	}
	switch arr := col.(type) {
	case *array.Int8:
		return int64(arr.Value(i)), nil
	case *array.Int16:
		return int64(arr.Value(i)), nil
	case *array.Int32:
		return int64(arr.Value(i)), nil
	case *array.Int64:
		return arr.Value(i), nil
	case *array.Uint8:
		return int64(arr.Value(i)), nil
	case *array.Uint16:
		return int64(arr.Value(i)), nil
	case *array.Uint32:
		return int64(arr.Value(i)), nil
	default:
		// 其余类型（如 Uint64）尝试通用转换，失败视为数据文件损坏
		value, err := cast.ToInt64E(col.GetOneForMarshal(i))
		if err != nil {
			return 0, fmt.Errorf("score 列类型不支持: %s", col.DataType())
		}
		return value, nil
	}
}
