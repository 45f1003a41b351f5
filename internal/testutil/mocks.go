package testutil

import (
	"sync"
	"time"

	"chatalyzer/internal/models"
	"chatalyzer/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockAnalyzerService implements services.AnalyzerServiceInterface.
type MockAnalyzerService struct {
	mu           sync.Mutex
	AnalyzeCalls []AnalyzeCall
	Result       *models.ChatAnalysis
	Err          error
	TopK         int
	Total        int64
}

type AnalyzeCall struct {
	Content string
	TopK    int
}

func (m *MockAnalyzerService) Analyze(content string, topK int) (*models.ChatAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzeCalls = append(m.AnalyzeCalls, AnalyzeCall{Content: content, TopK: topK})
	return m.Result, m.Err
}

func (m *MockAnalyzerService) DefaultTopK() int {
	if m.TopK > 0 {
		return m.TopK
	}
	return 10
}

func (m *MockAnalyzerService) GetAnalyzedTotal() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Total
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    []RequestObservation
	CacheHits   int
	CacheMisses int
	AnalysisObs int
}

type RequestObservation struct {
	Path   string
	Status int
}

func (m *MockMetrics) IncRequestsTotal(path string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, RequestObservation{Path: path, Status: status})
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObserveAnalysisDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalysisObs++
}

// MockCompressor implements providers.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}
