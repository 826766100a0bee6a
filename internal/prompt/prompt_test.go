package prompt

import (
	"strings"
	"testing"

	"github.com/vokinneberg/sqlchart/internal/types"
)

func TestBuilder_BuildSQLPrompt(t *testing.T) {
	tests := []struct {
		name         string
		family       Family
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:   "generic variant",
			family: FamilyGeneric,
			wantContains: []string{
				"Table users:",
				"how many users signed up last week",
				"PostgreSQL",
				"limit your query to 5 results",
			},
			wantAbsent: []string{"[INST]", "{schema}", "{query}", "{dialect}", "{top_k}"},
		},
		{
			name:   "instruct variant",
			family: FamilyInstruct,
			wantContains: []string{
				"[INST]",
				"[/INST]",
				"Table users:",
				"how many users signed up last week",
			},
			wantAbsent: []string{"{schema}", "{query}", "{dialect}", "{top_k}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(tt.family, "PostgreSQL", 5)
			got := b.BuildSQLPrompt("Table users:\n  id bigint\n  name text", "how many users signed up last week")

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("BuildSQLPrompt() missing %q", want)
				}
			}
			for _, unwanted := range tt.wantAbsent {
				if strings.Contains(got, unwanted) {
					t.Errorf("BuildSQLPrompt() contains %q", unwanted)
				}
			}
		})
	}
}

func TestBuilder_BuildChartPrompt(t *testing.T) {
	tests := []struct {
		name      string
		family    Family
		chartType types.ChartType
	}{
		{name: "generic matplotlib", family: FamilyGeneric, chartType: types.ChartMatplotlib},
		{name: "generic chart.js", family: FamilyGeneric, chartType: types.ChartJS},
		{name: "instruct matplotlib", family: FamilyInstruct, chartType: types.ChartMatplotlib},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(tt.family, "PostgreSQL", 5)
			got := b.BuildChartPrompt(tt.chartType, "Query Result: [(Product A, 10)]")

			if !strings.Contains(got, string(tt.chartType)) {
				t.Errorf("BuildChartPrompt() missing chart type %q", tt.chartType)
			}
			if !strings.Contains(got, "Query Result: [(Product A, 10)]") {
				t.Error("BuildChartPrompt() missing chart data")
			}
			if strings.Contains(got, "{chart_type}") || strings.Contains(got, "{chart_data}") {
				t.Error("BuildChartPrompt() left slots unsubstituted")
			}
			if instruct := strings.Contains(got, "[INST]"); instruct != (tt.family == FamilyInstruct) {
				t.Errorf("BuildChartPrompt() instruct markers = %v, want %v", instruct, tt.family == FamilyInstruct)
			}
		})
	}
}

func TestFamilyForModel(t *testing.T) {
	tests := []struct {
		name   string
		model  string
		hosted bool
		want   Family
	}{
		{name: "hosted chat model", model: "gpt-4.1-mini", hosted: true, want: FamilyGeneric},
		{name: "hosted model with llama-like name", model: "llama-hosted", hosted: true, want: FamilyGeneric},
		{name: "local llama", model: "llama3.1:8b", hosted: false, want: FamilyInstruct},
		{name: "local meta-llama gguf", model: "Meta-Llama-3-8B-Instruct.Q4_0.gguf", hosted: false, want: FamilyInstruct},
		{name: "local mistral", model: "mistral:7b", hosted: false, want: FamilyInstruct},
		{name: "local other model", model: "qwen2.5:14b", hosted: false, want: FamilyGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FamilyForModel(tt.model, tt.hosted); got != tt.want {
				t.Errorf("FamilyForModel(%q, %v) = %v, want %v", tt.model, tt.hosted, got, tt.want)
			}
		})
	}
}
