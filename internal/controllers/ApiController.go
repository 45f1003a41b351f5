package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cast"

	"chatalyzer/internal/analyzer"
	"chatalyzer/internal/providers"
	"chatalyzer/internal/services"
	"chatalyzer/internal/structures"
)

// multipartOverhead leaves room for multipart boundaries and headers on top
// of the configured upload limit.
const multipartOverhead = 64 * 1024

type ApiController struct {
	logger         providers.Logger
	service        services.AnalyzerServiceInterface
	cache          providers.CacheProviderInterface
	metrics        providers.MetricsProviderInterface
	maxUploadBytes int64
}

func NewApiController(conf *structures.Config, logger providers.Logger, service services.AnalyzerServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:         logger,
		service:        service,
		cache:          cache,
		metrics:        metrics,
		maxUploadBytes: conf.Analyzer.MaxUploadBytes,
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// AnalyzeFile handles multipart uploads on the chatFile field.
func (ac *ApiController) AnalyzeFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ac.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(ac.maxUploadBytes); err != nil {
		ac.writeError(w, "Unable to parse upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("chatFile")
	if err != nil {
		ac.writeError(w, "chatFile is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, errMsg := ac.readUpload(file, header)
	if errMsg != "" {
		ac.writeError(w, errMsg, http.StatusBadRequest)
		return
	}

	ac.analyze(w, r, content)
}

// AnalyzeText handles JSON bodies of the form {"content": "..."}. Bodies sent
// with Content-Encoding: gzip are decompressed transparently.
func (ac *ApiController) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ac.maxUploadBytes)

	var body io.Reader = r.Body
	if strings.EqualFold(r.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			ac.writeError(w, "Invalid gzip body", http.StatusBadRequest)
			return
		}
		defer gz.Close()
		body = gz
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		ac.writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.analyze(w, r, payload.Content)
}

// AnalyzeUpload accepts either a chatFile upload or a content form field.
func (ac *ApiController) AnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ac.maxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile("chatFile")
	if err == nil {
		defer file.Close()
		content, errMsg := ac.readUpload(file, header)
		if errMsg != "" {
			ac.writeError(w, errMsg, http.StatusBadRequest)
			return
		}
		ac.analyze(w, r, content)
		return
	}

	content := r.FormValue("content")
	if strings.TrimSpace(content) == "" {
		ac.writeError(w, "Either chatFile or content parameter must be provided", http.StatusBadRequest)
		return
	}

	ac.analyze(w, r, content)
}

func (ac *ApiController) readUpload(file multipart.File, header *multipart.FileHeader) (string, string) {
	if header.Size == 0 {
		return "", "File is empty"
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".txt") {
		return "", "Only .txt files are allowed"
	}
	if header.Size > ac.maxUploadBytes {
		return "", fmt.Sprintf("File size exceeds %d MiB limit", ac.maxUploadBytes/(1024*1024))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "Unable to read uploaded file"
	}
	if !utf8.Valid(data) {
		return "", "File must be UTF-8 encoded text"
	}
	return string(data), ""
}

// analyze runs the pipeline for one request, serving from cache when the same
// content and ranking length were analyzed recently.
func (ac *ApiController) analyze(w http.ResponseWriter, r *http.Request, content string) {
	topK := cast.ToInt(r.URL.Query().Get("k"))
	if topK <= 0 {
		topK = ac.service.DefaultTopK()
	}

	cacheKey := fmt.Sprintf("analysis:%x:%d", xxhash.Sum64String(content), topK)
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	start := time.Now()
	result, err := ac.service.Analyze(content, topK)
	ac.metrics.ObserveAnalysisDuration(time.Since(start))
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyInput) || errors.Is(err, analyzer.ErrNoValidMessages) {
			ac.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		ac.logger.Errorf(providers.TypePost, "Analysis failed: %s", err)
		ac.writeError(w, "Error analyzing chat", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Failed to marshal analysis: %s", err)
		ac.writeError(w, "Error analyzing chat", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, message string, status int) {
	gson, err := json.Marshal(errorResponse{
		Error:     message,
		Status:    http.StatusText(status),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
