/*
 * @module service/clean_service_test
 * @description 清洗服务端到端测试，构造 Arrow 分区夹具并验证完整流水线
 * @architecture 测试层 - 业务流程验证
 * @documentReference ai_docs/review_clean_pipeline.md
 * @stateFlow 生成分区夹具 -> 执行流水线 -> 断言报告与输出文件
 * @rules 使用 t.TempDir 隔离文件系统副作用，输入缺失必须在任何读取之前报告
 * @dependencies testing, testify, github.com/apache/arrow-go/v18
 * @refs clean_service.go
 */

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"reviewclean-service/service/config"
)

// reviewRow 夹具行，content 为空字符串时写入空值
type reviewRow struct {
	content string
	null    bool
	score   int64
}

type CleanServiceTestSuite struct {
	suite.Suite
	dir string
	cfg config.PipelineConfig
}

// SetupTest 为每个测试准备独立的临时目录和配置
func (s *CleanServiceTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.cfg = config.PipelineConfig{
		TrainPath:        filepath.Join(s.dir, "train", "data-00000-of-00001.arrow"),
		TestPath:         filepath.Join(s.dir, "test", "data-00000-of-00001.arrow"),
		OutputPath:       filepath.Join(s.dir, "az_data", "reviews_clean.tsv"),
		MinContentLength: 10,
	}
}

// writePartition 在指定路径生成单批次的 Arrow IPC 流文件
func (s *CleanServiceTestSuite) writePartition(path string, rows []reviewRow) {
	require.NoError(s.T(), os.MkdirAll(filepath.Dir(path), 0755))

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "content", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "score", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	builder := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer builder.Release()
	for _, row := range rows {
		if row.null {
			builder.Field(0).(*array.StringBuilder).AppendNull()
		} else {
			builder.Field(0).(*array.StringBuilder).Append(row.content)
		}
		builder.Field(1).(*array.Int64Builder).Append(row.score)
	}
	rec := builder.NewRecord()
	defer rec.Release()

	f, err := os.Create(path)
	require.NoError(s.T(), err)
	defer f.Close()

	w := ipc.NewWriter(f, ipc.WithSchema(schema))
	require.NoError(s.T(), w.Write(rec))
	require.NoError(s.T(), w.Close())
}

func (s *CleanServiceTestSuite) TestRunEndToEnd() {
	s.writePartition(s.cfg.TrainPath, []reviewRow{
		{content: "əla məhsuldur, tövsiyə edirəm", score: 5},
		{content: "çox pis təcrübə yaşadım", score: 1},
		{content: "qısa", score: 3},
		{null: true, score: 2},
	})
	s.writePartition(s.cfg.TestPath, []reviewRow{
		{content: "əla məhsuldur, tövsiyə edirəm", score: 5},
		{content: "normal məhsuldur, pis deyil", score: 3},
	})

	report, err := NewCleanService(s.cfg).Run()
	s.Require().NoError(err)

	s.Equal(4, report.TrainRows)
	s.Equal(2, report.TestRows)
	s.Equal(6, report.TotalBefore)
	s.Equal(3, report.TotalAfter)
	s.Equal(3, report.Removed)
	s.Equal(map[int64]int{1: 1, 3: 1, 5: 1}, report.ScoreCounts)
	s.Equal(1, report.Stats.NullDropped)
	s.Equal(1, report.Stats.DuplicateDropped)
	s.Equal(1, report.Stats.ShortDropped)
	s.Equal(0, report.Stats.AmbiguousDropped)
	s.Empty(report.Issues)
	s.NotEmpty(report.RunID)

	data, err := os.ReadFile(s.cfg.OutputPath)
	s.Require().NoError(err)
	s.Equal(
		"əla məhsuldur, tövsiyə edirəm\t5\n"+
			"çox pis təcrübə yaşadım\t1\n"+
			"normal məhsuldur, pis deyil\t3\n",
		string(data),
	)
}

func (s *CleanServiceTestSuite) TestRunAmbiguityAcrossPartitions() {
	// 同一文本在 train 和 test 中带不同评分，两条都要剔除
	s.writePartition(s.cfg.TrainPath, []reviewRow{
		{content: "mübahisəli rəy mətni", score: 1},
		{content: "sabit qalan rəy mətni", score: 4},
	})
	s.writePartition(s.cfg.TestPath, []reviewRow{
		{content: "mübahisəli rəy mətni", score: 5},
	})

	report, err := NewCleanService(s.cfg).Run()
	s.Require().NoError(err)

	s.Equal(1, report.TotalAfter)
	s.Equal(1, report.Stats.AmbiguousDropped)

	data, err := os.ReadFile(s.cfg.OutputPath)
	s.Require().NoError(err)
	s.Equal("sabit qalan rəy mətni\t4\n", string(data))
}

func (s *CleanServiceTestSuite) TestRunMissingTrainInput() {
	s.writePartition(s.cfg.TestPath, []reviewRow{
		{content: "yalnız test bölməsi var", score: 3},
	})

	_, err := NewCleanService(s.cfg).Run()
	s.Require().Error(err)
	s.ErrorIs(err, ErrInputNotFound)
	s.Contains(err.Error(), s.cfg.TrainPath)

	// 预检失败时不产生任何输出
	_, statErr := os.Stat(s.cfg.OutputPath)
	s.True(os.IsNotExist(statErr))
}

func (s *CleanServiceTestSuite) TestRunMissingTestInput() {
	s.writePartition(s.cfg.TrainPath, []reviewRow{
		{content: "yalnız train bölməsi var", score: 2},
	})

	_, err := NewCleanService(s.cfg).Run()
	s.Require().Error(err)
	s.ErrorIs(err, ErrInputNotFound)
	s.Contains(err.Error(), s.cfg.TestPath)
}

func (s *CleanServiceTestSuite) TestCheckInputsPasses() {
	s.writePartition(s.cfg.TrainPath, []reviewRow{{content: "train bölməsi hazırdır", score: 1}})
	s.writePartition(s.cfg.TestPath, []reviewRow{{content: "test bölməsi hazırdır", score: 2}})

	s.NoError(NewCleanService(s.cfg).CheckInputs())
}

func TestCleanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CleanServiceTestSuite))
}
