// Package extract pulls structured artifacts out of raw model output.
//
// Models are unreliable about output formatting: the SQL we asked for may
// arrive bare, wrapped in a code fence, or buried in prose next to a second
// statement we never wanted. The functions here apply layered pattern
// matching that degrades from strict to permissive instead of failing
// outright. They are pure text processing with no state and no I/O.
package extract

import (
	"regexp"
	"strings"

	"github.com/vokinneberg/sqlchart/internal/types"
)

var (
	selectStmtRe = regexp.MustCompile(`(?is)SELECT.*?;`)
	sqlFenceRe   = regexp.MustCompile("(?is)```sql\\s*(.*?)\\s*```")
	anySelectRe  = regexp.MustCompile(`(?is)\bSELECT\b.*?;`)

	pythonFenceRe = regexp.MustCompile("(?s)```python(.*?)```")
	jsRe          = regexp.MustCompile("(?s)```(?:javascript|js)(.*?)```|<script\\b[^>]*>(.*?)</script>")
)

// SQL extracts a single SQL statement from a model response.
//
// It tries, in order:
//  1. a statement at the very start of the response (response is just the query),
//  2. the interior of a ```sql code fence,
//  3. the first SELECT ... ; span anywhere in the text,
//  4. the trimmed response unchanged.
//
// The last layer means SQL never fails; callers get back whatever the model
// said and the database decides whether it runs.
func SQL(response string) string {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(response)), "SELECT") {
		if match := selectStmtRe.FindString(response); match != "" && balanced(match) {
			return strings.TrimSpace(match)
		}
	}

	if m := sqlFenceRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}

	if match := anySelectRe.FindString(response); match != "" && balanced(match) {
		return strings.TrimSpace(match)
	}

	return strings.TrimSpace(response)
}

// ChartCode extracts chart-generation code from a model response.
//
// For matplotlib the code lives in a ```python fence. For chart.js it may be
// in a ```javascript / ```js fence or inside a <script> tag; when both forms
// could match, the fence capture wins. Returns "" when no code is found or
// the chart type is not recognized.
func ChartCode(response string, chartType types.ChartType) string {
	switch chartType {
	case types.ChartMatplotlib:
		if m := pythonFenceRe.FindStringSubmatch(response); m != nil {
			return m[1]
		}
	case types.ChartJS:
		if m := jsRe.FindStringSubmatch(response); m != nil {
			if m[1] != "" {
				return m[1]
			}
			return m[2]
		}
	}
	return ""
}

// balanced is a lightweight statement-boundary sanity check: a match that cuts
// a statement short at a semicolon inside a string literal or a subquery has
// an odd number of single quotes or unclosed parentheses. Matches that fail
// fall through to the next extraction layer.
func balanced(stmt string) bool {
	quotes := 0
	depth := 0
	inQuote := false
	for _, r := range stmt {
		switch r {
		case '\'':
			quotes++
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
			}
		}
	}
	return quotes%2 == 0 && depth == 0
}
