package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// heatIndexResponse is the classifier output for a raw reading.
type heatIndexResponse struct {
	Temperature     float64                      `json:"temperature"`
	Humidity        float64                      `json:"humidity"`
	HeatIndex       float64                      `json:"heatIndex"`
	RiskLevel       domain.RiskLevel             `json:"riskLevel"`
	Color           string                       `json:"color"`
	Priority        int                          `json:"priority"`
	Recommendations map[domain.Audience][]string `json:"recommendations"`
}

func (s *Server) handleHeatIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	temperature, err := parseFloatParam(q.Get("temperature"), "temperature")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	humidity, err := parseFloatParam(q.Get("humidity"), "humidity")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	a, err := s.risk.Assess(temperature, humidity)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	recs := a.Recommendations
	if raw := q.Get("audience"); raw != "" {
		audience, err := domain.ParseAudience(raw)
		if err != nil {
			writeError(w, s.logger, err)
			return
		}
		recs = map[domain.Audience][]string{audience: recs[audience]}
	}

	sharedobs.WriteJSON(w, http.StatusOK, heatIndexResponse{
		Temperature:     a.Temperature,
		Humidity:        a.Humidity,
		HeatIndex:       domain.Round1(a.HeatIndex),
		RiskLevel:       a.RiskLevel,
		Color:           a.Color,
		Priority:        a.Priority,
		Recommendations: recs,
	})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	q, err := locationQuery(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	report, err := s.risk.CurrentRisk(r.Context(), q)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	report.Assessment.HeatIndex = domain.Round1(report.Assessment.HeatIndex)
	sharedobs.WriteJSON(w, http.StatusOK, report)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	q, err := locationQuery(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	report, err := s.risk.ForecastRisk(r.Context(), q)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	for i := range report.Forecast {
		report.Forecast[i].HeatIndex = domain.Round1(report.Forecast[i].HeatIndex)
	}
	writeData(w, "", report)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days := domain.ParseDateRange(q.Get("dateRange"))
	sharedobs.WriteJSON(w, http.StatusOK, s.risk.Dashboard(days, strings.TrimSpace(q.Get("location"))))
}

func (s *Server) handleMitigation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	level := domain.RiskModerate
	if raw := q.Get("riskLevel"); raw != "" {
		var err error
		if level, err = domain.ParseRiskLevel(raw); err != nil {
			writeError(w, s.logger, err)
			return
		}
	}

	var horizon *domain.Horizon
	if raw := q.Get("category"); raw != "" && raw != "all" {
		h, err := domain.ParseHorizon(raw)
		if err != nil {
			writeError(w, s.logger, err)
			return
		}
		horizon = &h
	}

	sharedobs.WriteJSON(w, http.StatusOK, s.risk.Mitigation(level, horizon))
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawLevel, rawAudience := q.Get("level"), q.Get("audience")

	if rawLevel == "" {
		writeData(w, "", map[string]any{
			"allStrategies": domain.AllRecommendations(),
			"timestamp":     domain.Now(),
		})
		return
	}

	level, err := domain.ParseRiskLevel(rawLevel)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	data := map[string]any{
		"riskLevel": level,
		"timestamp": domain.Now(),
	}
	if rawAudience == "" {
		data["strategies"] = domain.RecommendationSet(level)
	} else {
		audience, err := domain.ParseAudience(rawAudience)
		if err != nil {
			writeError(w, s.logger, err)
			return
		}
		data["audience"] = audience
		data["strategies"] = domain.RecommendationsFor(level, audience)
	}
	writeData(w, "", data)
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		writeData(w, "", map[string]any{
			"allTips":   domain.AllTips(),
			"timestamp": domain.Now(),
		})
		return
	}

	audience, err := domain.ParseAudience(raw)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "", map[string]any{
		"category":  audience,
		"tips":      domain.Tips(audience),
		"timestamp": domain.Now(),
	})
}

func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	writeData(w, "", map[string]any{
		"resources": domain.Resources(),
		"timestamp": domain.Now(),
	})
}

func locationQuery(r *http.Request) (domain.LocationQuery, error) {
	q := r.URL.Query()
	return domain.NewLocationQuery(q.Get("city"), q.Get("lat"), q.Get("lon"))
}

func parseFloatParam(raw, name string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return v, nil
}
