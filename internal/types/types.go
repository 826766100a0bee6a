package types

import "fmt"

// ChartType identifies the target charting library for generated code.
type ChartType string

const (
	ChartMatplotlib ChartType = "matplotlib"
	ChartJS         ChartType = "chart.js"
)

// AllowedChartTypes lists every chart type a request may ask for.
var AllowedChartTypes = []ChartType{ChartMatplotlib, ChartJS}

// Valid reports whether ct is one of the allowed chart types.
func (ct ChartType) Valid() bool {
	for _, allowed := range AllowedChartTypes {
		if ct == allowed {
			return true
		}
	}
	return false
}

// Request is a natural-language charting request
type Request struct {
	ChartType string `json:"chart_type"`
	Query     string `json:"query"`
}

// Response is the result of a generation request
type Response struct {
	Message   string  `json:"message"`
	SQLQuery  string  `json:"sql_query"`
	ChartCode string  `json:"chart_code"`
	TotalTime float64 `json:"total_time"`
}

// CacheEntry is the payload stored in the cache, keyed by the generated SQL string.
type CacheEntry struct {
	SQLQuery  string `json:"sql_query"`
	Result    string `json:"result"`
	ChartCode string `json:"chart_code"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Model describes a model available on a local backend.
type Model struct {
	Name       string `json:"name"`
	Size       int64  `json:"size,omitempty"`
	Parameters string `json:"parameters,omitempty"`
}

// InvalidInputError is the single error kind surfaced by the generation
// pipeline. Every failure, from a missing request field to a database error,
// collapses into it with a human-readable reason.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// InvalidInputf builds an InvalidInputError with a formatted reason.
func InvalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
