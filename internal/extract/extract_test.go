package extract

import (
	"testing"

	"github.com/vokinneberg/sqlchart/internal/types"
)

func TestSQL(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "bare query",
			response: "SELECT name FROM users;",
			want:     "SELECT name FROM users;",
		},
		{
			name:     "bare query with surrounding whitespace",
			response: "\n  select id, name from products limit 5;\n",
			want:     "select id, name from products limit 5;",
		},
		{
			name:     "bare multiline query",
			response: "SELECT product_name, COUNT(*)\nFROM orders\nGROUP BY product_name;",
			want:     "SELECT product_name, COUNT(*)\nFROM orders\nGROUP BY product_name;",
		},
		{
			name:     "query in sql code block",
			response: "Here is the result:\n```sql\nSELECT name FROM users;\n```",
			want:     "SELECT name FROM users;",
		},
		{
			name:     "sql code block with uppercase fence tag",
			response: "```SQL\nSELECT 1;\n```",
			want:     "SELECT 1;",
		},
		{
			name:     "first statement among prose and multiple queries",
			response: "Sure! You could run SELECT id FROM users; or alternatively SELECT name FROM users;",
			want:     "SELECT id FROM users;",
		},
		{
			name:     "no recognizable sql returns trimmed input",
			response: "  I cannot answer that question.  ",
			want:     "I cannot answer that question.",
		},
		{
			name:     "bare query truncated only beyond first statement",
			response: "SELECT a FROM t; -- trailing comment\nSELECT b FROM t;",
			want:     "SELECT a FROM t;",
		},
		{
			name:     "semicolon inside string literal does not split the statement",
			response: "SELECT name FROM users WHERE note = 'a;b' LIMIT 5;",
			want:     "SELECT name FROM users WHERE note = 'a;b' LIMIT 5;",
		},
		{
			name:     "empty input",
			response: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SQL(tt.response)
			if got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSQL_FallbackIsIdempotent(t *testing.T) {
	response := "no sql in here at all"
	once := SQL(response)
	twice := SQL(once)
	if once != twice {
		t.Errorf("SQL() not idempotent on fallback: first %q, second %q", once, twice)
	}
}

func TestChartCode(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		chartType types.ChartType
		want      string
	}{
		{
			name:      "python fence for matplotlib",
			response:  "Here you go:\n```python\nimport matplotlib.pyplot as plt\nplt.plot([1, 2, 3])\n```",
			chartType: types.ChartMatplotlib,
			want:      "\nimport matplotlib.pyplot as plt\nplt.plot([1, 2, 3])\n",
		},
		{
			name:      "no python fence for matplotlib",
			response:  "plt.plot([1, 2, 3])",
			chartType: types.ChartMatplotlib,
			want:      "",
		},
		{
			name:      "javascript fence for chart.js",
			response:  "```javascript\nnew Chart(ctx, {});\n```",
			chartType: types.ChartJS,
			want:      "\nnew Chart(ctx, {});\n",
		},
		{
			name:      "js fence for chart.js",
			response:  "```js\nconst c = new Chart(ctx, {});\n```",
			chartType: types.ChartJS,
			want:      "\nconst c = new Chart(ctx, {});\n",
		},
		{
			name:      "script tag for chart.js",
			response:  "<script>var x=1;</script>",
			chartType: types.ChartJS,
			want:      "var x=1;",
		},
		{
			name:      "script tag with attributes for chart.js",
			response:  `<script type="text/javascript">new Chart(ctx, {});</script>`,
			chartType: types.ChartJS,
			want:      "new Chart(ctx, {});",
		},
		{
			name:      "fence preferred over script tag",
			response:  "```js\nfromFence();\n```\n<script>fromTag();</script>",
			chartType: types.ChartJS,
			want:      "\nfromFence();\n",
		},
		{
			name:      "no code for chart.js",
			response:  "I could not produce any code.",
			chartType: types.ChartJS,
			want:      "",
		},
		{
			name:      "unknown chart type",
			response:  "```python\nplt.plot([1])\n```",
			chartType: types.ChartType("pie"),
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChartCode(tt.response, tt.chartType)
			if got != tt.want {
				t.Errorf("ChartCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
