package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "run_forecast",
				"description": "Run a Monte-Carlo revenue simulation over a list of open opportunities and report the outcome distribution: " +
					"summary statistics (mean, median, percentiles), hit probability per revenue target, and a histogram. " +
					"Opportunities are sampled as statistically independent deals; there is no correlation modeling. " +
					"Guidance: call 'get_forecast_defaults' first if you need the configured bounds or default targets.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"opportunities": map[string]interface{}{
							"type":        "array",
							"description": "Open deals to simulate.",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":        map[string]interface{}{"type": "string", "description": "Deal name, tracking only"},
									"amount":      map[string]interface{}{"type": "number", "description": "Deal value in USD, must be positive"},
									"probability": map[string]interface{}{"type": "number", "description": "Win probability between 0.0 and 1.0"},
									"close_date":  map[string]interface{}{"type": "string", "description": "Expected close date (YYYY-MM-DD)"},
								},
								"required": []string{"amount", "probability", "close_date"},
							},
						},
						"num_simulations":   map[string]interface{}{"type": "integer", "description": "Trial count. More = smoother distribution, slower. Omit for the configured default."},
						"time_horizon_days": map[string]interface{}{"type": "integer", "description": "Optional: only include deals closing within this many days from today."},
						"revenue_targets":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}, "description": "Optional revenue thresholds to report hit probabilities for."},
					},
					"required": []string{"opportunities"},
				},
			},
			map[string]interface{}{
				"name":        "get_forecast_defaults",
				"description": "Get the configured simulation defaults and bounds (trial counts, opportunity limit, horizon limit, default revenue targets) so you can build valid 'run_forecast' calls.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
	}
}
