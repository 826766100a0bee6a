package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/vokinneberg/sqlchart/internal/types"
)

func main() {
	if len(os.Args) < 4 {
		slog.Error("Usage: ask <server-url> <chart-type> <question...>")
		os.Exit(1)
	}

	serverURL := os.Args[1]
	chartType := os.Args[2]
	question := strings.Join(os.Args[3:], " ")

	reqBody := types.Request{
		ChartType: chartType,
		Query:     question,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		slog.Error("Failed to marshal request", "error", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("%s/generate", serverURL)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		slog.Error("Failed to call server", "error", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			slog.Error("Request failed", "status", resp.StatusCode)
			os.Exit(1)
		}
		slog.Error("Request failed", "status", resp.StatusCode, "message", errResp.Message)
		os.Exit(1)
	}

	var result types.Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("Failed to decode response", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n\n", result.Message)
	fmt.Printf("SQL:\n%s\n\n", result.SQLQuery)
	fmt.Printf("Chart code:\n%s\n\n", result.ChartCode)
	fmt.Printf("Took %.2fs\n", result.TotalTime)
}
