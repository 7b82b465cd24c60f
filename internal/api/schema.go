package api

import "net/http"

// handleSchema serves the OpenAPI document Salesforce External Services
// reads during registration. Built as a literal so the served contract and
// the handler code live in one place.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.openAPIDocument())
}

func (s *Server) openAPIDocument() map[string]any {
	numberField := func(desc string) map[string]any {
		return map[string]any{"type": "number", "description": desc}
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "Monte Carlo Revenue Forecast API",
			"version":     s.version,
			"description": "Stateless Monte Carlo simulation service for pipeline forecasting. Designed to be called from an Agentforce Agent Action via Named Credential.",
		},
		"paths": map[string]any{
			"/api/v1/simulate": map[string]any{
				"post": map[string]any{
					"operationId": "runSimulation",
					"summary":     "Run a Monte Carlo revenue simulation",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/SimulationRequest"},
							},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Complete simulation result",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "#/components/schemas/SimulationResponse"},
								},
							},
						},
						"400": map[string]any{"description": "Request failed validation"},
						"413": map[string]any{"description": "Trials x opportunities exceeds the compute budget"},
					},
				},
			},
			"/health": map[string]any{
				"get": map[string]any{
					"operationId": "healthCheck",
					"summary":     "Liveness probe",
					"responses": map[string]any{
						"200": map[string]any{"description": "Service is up"},
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Opportunity": map[string]any{
					"type":     "object",
					"required": []string{"name", "amount", "probability", "close_date"},
					"properties": map[string]any{
						"name":        map[string]any{"type": "string", "description": "Identifier only, not used in computation"},
						"amount":      numberField("Expected deal value in USD, must be positive"),
						"probability": numberField("Win probability as a decimal between 0.0 and 1.0"),
						"close_date":  map[string]any{"type": "string", "format": "date", "description": "Expected close date (YYYY-MM-DD)"},
					},
				},
				"SimulationRequest": map[string]any{
					"type":     "object",
					"required": []string{"opportunities"},
					"properties": map[string]any{
						"opportunities": map[string]any{
							"type":     "array",
							"items":    map[string]any{"$ref": "#/components/schemas/Opportunity"},
							"minItems": 1,
							"maxItems": s.cfg.Forecast.MaxOpportunities,
						},
						"num_simulations": map[string]any{
							"type":        "integer",
							"minimum":     s.cfg.Forecast.MinTrials,
							"maximum":     s.cfg.Forecast.MaxTrials,
							"description": "Number of Monte Carlo trials; defaults to the configured value",
						},
						"time_horizon_days": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     s.cfg.Forecast.MaxHorizonDays,
							"description": "Only include opportunities closing within this many days from today",
						},
						"revenue_targets": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "number"},
							"description": "Revenue thresholds to report hit probabilities for",
						},
					},
				},
				"SummaryStatistics": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"mean":                    numberField("Expected total revenue across all trials"),
						"median":                  numberField("Middle outcome"),
						"std_dev":                 numberField("Spread of the forecast distribution"),
						"p10":                     numberField("Pessimistic scenario"),
						"p25":                     numberField("Conservative scenario"),
						"p75":                     numberField("Optimistic scenario"),
						"p90":                     numberField("Very optimistic scenario"),
						"min_outcome":             numberField("Worst simulated result"),
						"max_outcome":             numberField("Best simulated result"),
						"total_pipeline_value":    numberField("Sum of all opportunity amounts"),
						"weighted_pipeline_value": numberField("Sum of amount x probability, the analytic expected value"),
					},
				},
				"TargetAnalysis": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"target":          numberField("Revenue target in USD"),
						"label":           map[string]any{"type": "string"},
						"probability":     numberField("Fraction of trials meeting or exceeding the target"),
						"probability_pct": map[string]any{"type": "string"},
					},
				},
				"HistogramBucket": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"range_low":  numberField("Inclusive lower bound"),
						"range_high": numberField("Exclusive upper bound; inclusive for the last bucket"),
						"label":      map[string]any{"type": "string"},
						"count":      map[string]any{"type": "integer"},
						"frequency":  numberField("count / num_simulations"),
					},
				},
				"SimulationResponse": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"summary_statistics": map[string]any{"$ref": "#/components/schemas/SummaryStatistics"},
						"target_analysis": map[string]any{
							"type":  "array",
							"items": map[string]any{"$ref": "#/components/schemas/TargetAnalysis"},
						},
						"histogram_buckets": map[string]any{
							"type":  "array",
							"items": map[string]any{"$ref": "#/components/schemas/HistogramBucket"},
						},
						"metadata": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"num_simulations":            map[string]any{"type": "integer"},
								"opportunities_included":     map[string]any{"type": "integer"},
								"opportunities_filtered_out": map[string]any{"type": "integer"},
								"compute_time_ms":            map[string]any{"type": "number"},
								"timestamp":                  map[string]any{"type": "string", "format": "date-time"},
								"time_horizon_days":          map[string]any{"type": "integer"},
							},
						},
					},
				},
			},
		},
	}
}
