// Package prompt renders the fixed prompt templates the pipeline sends to the
// model. Templates are static text with named substitution slots; which
// variant is used depends on the model family.
package prompt

import (
	"strconv"
	"strings"

	"github.com/vokinneberg/sqlchart/internal/types"
)

// Family selects the template variant a model expects.
type Family int

const (
	// FamilyGeneric is for instruction-following chat models.
	FamilyGeneric Family = iota
	// FamilyInstruct is for models trained on the [INST] bracket format.
	FamilyInstruct
)

// instructPrefixes are model-name prefixes that want the [INST] variant.
var instructPrefixes = []string{"Meta-Llama", "llama", "mistral", "mixtral"}

// FamilyForModel derives the template family from a model name. Hosted chat
// models always get the generic variant.
func FamilyForModel(modelName string, hosted bool) Family {
	if hosted {
		return FamilyGeneric
	}
	for _, prefix := range instructPrefixes {
		if strings.HasPrefix(strings.ToLower(modelName), strings.ToLower(prefix)) {
			return FamilyInstruct
		}
	}
	return FamilyGeneric
}

// Builder renders SQL and chart prompts for one model family.
type Builder struct {
	family  Family
	dialect string
	topK    int
}

// NewBuilder creates a prompt builder for the given family, SQL dialect and
// result-row limit.
func NewBuilder(family Family, dialect string, topK int) *Builder {
	if topK <= 0 {
		topK = 5
	}
	return &Builder{
		family:  family,
		dialect: dialect,
		topK:    topK,
	}
}

// BuildSQLPrompt renders the SQL-generation prompt for a user question.
func (b *Builder) BuildSQLPrompt(schema, query string) string {
	tmpl := sqlTemplate
	if b.family == FamilyInstruct {
		tmpl = sqlTemplateInstruct
	}
	return render(tmpl, map[string]string{
		"schema":  schema,
		"query":   query,
		"dialect": b.dialect,
		"top_k":   strconv.Itoa(b.topK),
	})
}

// BuildChartPrompt renders the chart-code prompt for a query result.
func (b *Builder) BuildChartPrompt(chartType types.ChartType, chartData string) string {
	tmpl := chartTemplate
	if b.family == FamilyInstruct {
		tmpl = chartTemplateInstruct
	}
	return render(tmpl, map[string]string{
		"chart_type": string(chartType),
		"chart_data": chartData,
	})
}

func render(tmpl string, slots map[string]string) string {
	for name, value := range slots {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	return tmpl
}
