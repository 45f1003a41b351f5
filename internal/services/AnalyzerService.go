package services

import (
	"sync/atomic"

	"chatalyzer/internal/analyzer"
	"chatalyzer/internal/models"
	"chatalyzer/internal/structures"
)

type AnalyzerServiceInterface interface {
	Analyze(content string, topK int) (*models.ChatAnalysis, error)
	DefaultTopK() int
	GetAnalyzedTotal() int64
}

// AnalyzerService runs the analysis pipeline. Each call is a pure function of
// its input; the only state is a monotonic counter of served analyses exposed
// for health and metrics.
type AnalyzerService struct {
	analyzer *analyzer.Analyzer
	topK     int
	analyzed atomic.Int64
}

func NewAnalyzerService(conf *structures.Config) AnalyzerServiceInterface {
	return &AnalyzerService{
		analyzer: analyzer.NewAnalyzer(analyzer.NewParser(), analyzer.NewFrequencyRanker()),
		topK:     conf.Analyzer.TopK,
	}
}

func (as *AnalyzerService) Analyze(content string, topK int) (*models.ChatAnalysis, error) {
	if topK <= 0 {
		topK = as.topK
	}
	result, err := as.analyzer.Analyze(content, topK)
	if err != nil {
		return nil, err
	}
	as.analyzed.Add(1)
	return result, nil
}

func (as *AnalyzerService) DefaultTopK() int {
	return as.topK
}

func (as *AnalyzerService) GetAnalyzedTotal() int64 {
	return as.analyzed.Load()
}
