package mcp

import (
	"context"
	"fmt"
	"time"

	"revcast/internal/forecast"
)

func (s *Server) handleRunForecast(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	rawOpps, ok := args["opportunities"].([]interface{})
	if !ok || len(rawOpps) == 0 {
		return nil, fmt.Errorf("opportunities must be a non-empty array")
	}

	req := forecast.Request{
		Opportunities: make([]forecast.Opportunity, 0, len(rawOpps)),
	}

	for i, raw := range rawOpps {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("opportunities[%d] must be an object", i)
		}

		amount, ok := m["amount"].(float64)
		if !ok {
			return nil, fmt.Errorf("opportunities[%d].amount must be a number", i)
		}
		probability, ok := m["probability"].(float64)
		if !ok {
			return nil, fmt.Errorf("opportunities[%d].probability must be a number", i)
		}
		closeRaw, ok := m["close_date"].(string)
		if !ok {
			return nil, fmt.Errorf("opportunities[%d].close_date must be a YYYY-MM-DD string", i)
		}
		closeDate, err := time.Parse("2006-01-02", closeRaw)
		if err != nil {
			return nil, fmt.Errorf("opportunities[%d].close_date: %w", i, err)
		}

		name, _ := m["name"].(string)
		req.Opportunities = append(req.Opportunities, forecast.Opportunity{
			Name:        name,
			Amount:      amount,
			Probability: probability,
			CloseDate:   closeDate,
		})
	}

	if v, ok := args["num_simulations"].(float64); ok {
		req.Trials = int(v)
	}
	if v, ok := args["time_horizon_days"].(float64); ok {
		req.HorizonDays = int(v)
	}
	if rawTargets, ok := args["revenue_targets"].([]interface{}); ok {
		for i, rt := range rawTargets {
			t, ok := rt.(float64)
			if !ok {
				return nil, fmt.Errorf("revenue_targets[%d] must be a number", i)
			}
			req.Targets = append(req.Targets, t)
		}
	}

	return s.sim.Run(ctx, req)
}

func (s *Server) handleGetForecastDefaults() (interface{}, error) {
	fc := s.cfg.Forecast

	targetLabels := make([]string, len(fc.DefaultTargets))
	for i, t := range fc.DefaultTargets {
		targetLabels[i] = forecast.FormatMoney(t)
	}

	return map[string]interface{}{
		"default_num_simulations": fc.DefaultTrials,
		"min_num_simulations":     fc.MinTrials,
		"max_num_simulations":     fc.MaxTrials,
		"max_opportunities":       fc.MaxOpportunities,
		"max_time_horizon_days":   fc.MaxHorizonDays,
		"histogram_buckets":       fc.HistogramBuckets,
		"default_revenue_targets": fc.DefaultTargets,
		"default_target_labels":   targetLabels,
	}, nil
}
