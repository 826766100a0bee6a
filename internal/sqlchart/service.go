// Package sqlchart orchestrates the natural-language → SQL → chart-code
// pipeline: prompt construction, model invocation, extraction, execution and
// caching, in that order, on one synchronous control path.
package sqlchart

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vokinneberg/sqlchart/internal/extract"
	"github.com/vokinneberg/sqlchart/internal/observability"
	"github.com/vokinneberg/sqlchart/internal/prompt"
	"github.com/vokinneberg/sqlchart/internal/types"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=sqlchart

// LLMClient defines the interface for model invocation.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int64) (string, error)
}

// Database defines the interface for schema introspection and execution.
type Database interface {
	Describe(ctx context.Context) (string, error)
	Run(ctx context.Context, query string) (string, error)
}

// Cache defines the interface for the result cache.
type Cache interface {
	Get(ctx context.Context, key string) (*types.CacheEntry, error)
	Set(ctx context.Context, key string, entry *types.CacheEntry, ttl time.Duration) error
}

// DefaultTimeout bounds a whole pipeline run. The model and the database are
// blocking calls with no timeouts of their own; without a deadline a hang in
// either blocks the request indefinitely.
const DefaultTimeout = 2 * time.Minute

// Service runs the generation pipeline. Each request is processed start to
// finish on its own control path; concurrent requests share nothing in
// process beyond the external cache.
type Service struct {
	llm       LLMClient
	db        Database
	cache     Cache
	prompts   *prompt.Builder
	schema    string
	maxTokens int64
	timeout   time.Duration
}

// NewService creates a pipeline service. The database schema is introspected
// once here and reused for every request.
func NewService(llmClient LLMClient, database Database, cacheClient Cache, prompts *prompt.Builder, maxTokens int64, timeout time.Duration) (*Service, error) {
	schema, err := database.Describe(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to introspect schema: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		llm:       llmClient,
		db:        database,
		cache:     cacheClient,
		prompts:   prompts,
		schema:    schema,
		maxTokens: maxTokens,
		timeout:   timeout,
	}, nil
}

// GenerateCodeAndSQL turns a natural-language request into a SQL statement
// and chart code. On a cache hit for the generated SQL the stored payload is
// returned as-is and neither the database nor the chart model is touched.
func (s *Service) GenerateCodeAndSQL(ctx context.Context, req types.Request) (*types.Response, error) {
	start := time.Now()

	if req.ChartType == "" || req.Query == "" {
		return nil, types.InvalidInputf("missing required key: request must have both 'chart_type' and 'query'")
	}
	chartType := types.ChartType(strings.ToLower(req.ChartType))
	if !chartType.Valid() {
		return nil, types.InvalidInputf("invalid chart type %q, allowed types: %v", req.ChartType, types.AllowedChartTypes)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sqlQuery, err := s.generateSQL(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	// Cache read errors are downgraded to a miss: the cache is an
	// optimization, not a dependency.
	entry, err := s.cache.Get(ctx, sqlQuery)
	if err != nil {
		slog.Warn("Cache lookup failed", "error", err)
	}
	if entry != nil {
		observability.CacheHits.Inc()
		return s.formatResponse("Fetching result from cache...", entry.SQLQuery, entry.ChartCode, start), nil
	}
	observability.CacheMisses.Inc()

	result, err := s.db.Run(ctx, sqlQuery)
	if err != nil {
		return nil, types.InvalidInputf("something went wrong: %v", err)
	}

	chartCode, err := s.generateChartCode(ctx, chartType, result)
	if err != nil {
		return nil, err
	}

	// The write happens only after both execution and chart generation
	// succeeded; a failed write costs a regeneration later, nothing more.
	storeEntry := &types.CacheEntry{
		SQLQuery:  sqlQuery,
		Result:    result,
		ChartCode: chartCode,
	}
	if err := s.cache.Set(ctx, sqlQuery, storeEntry, 0); err != nil {
		slog.Warn("Failed to cache result", "key", sqlQuery, "error", err)
	}

	return s.formatResponse("Query and chart generated successfully.", sqlQuery, chartCode, start), nil
}

func (s *Service) generateSQL(ctx context.Context, query string) (string, error) {
	stageStart := time.Now()
	defer observability.ObserveStage("generate_sql", stageStart)

	sqlPrompt := s.prompts.BuildSQLPrompt(s.schema, query)
	response, err := s.llm.Complete(ctx, sqlPrompt, s.maxTokens)
	if err != nil {
		return "", types.InvalidInputf("something went wrong: %v", err)
	}

	return extract.SQL(response), nil
}

func (s *Service) generateChartCode(ctx context.Context, chartType types.ChartType, result string) (string, error) {
	stageStart := time.Now()
	defer observability.ObserveStage("generate_chart", stageStart)

	chartPrompt := s.prompts.BuildChartPrompt(chartType, "Query Result: "+result)
	response, err := s.llm.Complete(ctx, chartPrompt, s.maxTokens)
	if err != nil {
		return "", types.InvalidInputf("something went wrong: %v", err)
	}

	code := extract.ChartCode(response, chartType)
	if code == "" {
		return "", types.InvalidInputf("something went wrong: could not generate code")
	}
	return code, nil
}

func (s *Service) formatResponse(message, sqlQuery, chartCode string, start time.Time) *types.Response {
	return &types.Response{
		Message:   message,
		SQLQuery:  sqlQuery,
		ChartCode: chartCode,
		TotalTime: time.Since(start).Seconds(),
	}
}
