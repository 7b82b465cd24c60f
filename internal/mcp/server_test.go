package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"revcast/internal/config"
	"revcast/internal/forecast"
)

func newTestServer() (*Server, *bytes.Buffer) {
	fc := forecast.DefaultConfig()
	cfg := &config.AppConfig{Forecast: fc}
	now := func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	out := &bytes.Buffer{}
	s := &Server{
		cfg:     cfg,
		sim:     forecast.NewSeededSimulator(fc, 42, now),
		version: "test",
		out:     out,
	}
	return s, out
}

func TestServe_InitializeAndListTools(t *testing.T) {
	s, out := newTestServer()
	s.in = strings.NewReader(
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n" +
			`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
			`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n")

	if err := s.Serve(); err != nil {
		t.Fatalf("Expected clean EOF, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 responses (notification gets none), got %d", len(lines))
	}

	var initResp JSONRPCResponse
	if err := json.Unmarshal([]byte(lines[0]), &initResp); err != nil {
		t.Fatalf("Expected decodable initialize response, got %v", err)
	}
	if initResp.Error != nil {
		t.Errorf("Expected no error on initialize, got %v", initResp.Error)
	}

	if !strings.Contains(lines[1], "run_forecast") || !strings.Contains(lines[1], "get_forecast_defaults") {
		t.Errorf("Expected both tools listed, got %s", lines[1])
	}
}

func TestHandleRunForecast(t *testing.T) {
	s, _ := newTestServer()

	args := map[string]interface{}{
		"opportunities": []interface{}{
			map[string]interface{}{
				"name":        "Deal A",
				"amount":      1_000_000.0,
				"probability": 1.0,
				"close_date":  "2026-04-10",
			},
		},
		"num_simulations": 1000.0,
		"revenue_targets": []interface{}{500_000.0},
	}

	data, err := s.handleRunForecast(context.Background(), args)
	if err != nil {
		t.Fatalf("Expected successful forecast, got %v", err)
	}

	result, ok := data.(*forecast.Result)
	if !ok {
		t.Fatalf("Expected a *forecast.Result, got %T", data)
	}
	if result.Summary.Mean != 1_000_000 {
		t.Errorf("Expected certain deal mean 1000000, got %f", result.Summary.Mean)
	}
	if result.Metadata.Trials != 1000 {
		t.Errorf("Expected 1000 trials, got %d", result.Metadata.Trials)
	}
}

func TestHandleRunForecast_BadArguments(t *testing.T) {
	s, _ := newTestServer()

	cases := []map[string]interface{}{
		{},
		{"opportunities": "not-an-array"},
		{"opportunities": []interface{}{map[string]interface{}{"amount": "x"}}},
		{"opportunities": []interface{}{map[string]interface{}{
			"amount": 100.0, "probability": 0.5, "close_date": "April 10",
		}}},
	}
	for i, args := range cases {
		if _, err := s.handleRunForecast(context.Background(), args); err == nil {
			t.Errorf("Case %d: expected an argument error", i)
		}
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	s, _ := newTestServer()

	params, _ := json.Marshal(map[string]interface{}{"name": "does_not_exist"})
	result, errRes := s.callTool(params)
	if result != nil || errRes == nil {
		t.Errorf("Expected a tool-not-found error, got result=%v err=%v", result, errRes)
	}
}

func TestHandleGetForecastDefaults(t *testing.T) {
	s, _ := newTestServer()

	data, err := s.handleGetForecastDefaults()
	if err != nil {
		t.Fatalf("Expected defaults, got %v", err)
	}
	m := data.(map[string]interface{})
	if m["default_num_simulations"] != 10_000 {
		t.Errorf("Expected default_num_simulations 10000, got %v", m["default_num_simulations"])
	}
	labels := m["default_target_labels"].([]string)
	if len(labels) != 5 || labels[0] != "$1.0M" {
		t.Errorf("Expected formatted target labels, got %v", labels)
	}
}
