package main

import (
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/env"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// mock of the climatiq api, good enough to run the proxy and the load test offline

type errorBody struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message"`
}

var regions = map[string][]climatiqdto.Region{
	"aws":   {{ID: "us_east_1", Name: "US East (N. Virginia)"}, {ID: "eu_west_1", Name: "EU (Ireland)"}},
	"gcp":   {{ID: "us_central1", Name: "Iowa"}, {ID: "europe_west1", Name: "Belgium"}},
	"azure": {{ID: "east_us", Name: "East US"}, {ID: "west_europe", Name: "West Europe"}},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("couldn't write response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: http.StatusText(status), ErrorCode: code, Message: message})
}

// authorized rejects requests without a bearer token, like the real api does
func authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeError(w, http.StatusUnauthorized, "invalid_auth", "missing api key")
			return
		}
		next(w, r)
	}
}

func latency(d time.Duration, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d > 0 {
			time.Sleep(d)
		}
		next(w, r)
	}
}

func estimation(unit string) climatiqdto.Estimation {
	return climatiqdto.Estimation{
		Co2e:                  rand.Float64()*2000 + 500,
		Co2eUnit:              unit,
		Co2eCalculationMethod: "ar5",
		Co2eCalculationOrigin: "source",
		Year:                  2021,
	}
}

func estimateHandler(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, estimation("kg"))
}

func computeHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := regions[r.PathValue("provider")]; !ok {
		writeError(w, http.StatusNotFound, "not_found", "unknown provider")
		return
	}
	e := estimation("")
	writeJSON(w, http.StatusOK, climatiqdto.Estimation{TotalCo2e: e.Co2e / 1000, TotalCo2eUnit: "kg"})
}

func regionsHandler(w http.ResponseWriter, r *http.Request) {
	list, ok := regions[r.PathValue("provider")]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "unknown provider")
		return
	}
	writeJSON(w, http.StatusOK, climatiqdto.RegionsResponse{Regions: list})
}

func batchHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []climatiqdto.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	res := climatiqdto.BatchResponse{Results: make([]climatiqdto.BatchResult, 0, len(reqs))}
	for _, req := range reqs {
		if req.EmissionFactor.ActivityID == "" && req.EmissionFactor.ID == "" {
			res.Results = append(res.Results, climatiqdto.BatchResult{Error: "invalid_request", ErrorCode: "invalid_request", Message: "missing emission factor"})
			continue
		}
		e := estimation("kg")
		res.Results = append(res.Results, climatiqdto.BatchResult{Estimation: &e})
	}
	writeJSON(w, http.StatusOK, res)
}

func factor(id string) climatiqdto.Factor {
	return climatiqdto.Factor{
		ID:          id,
		ActivityID:  "electricity-supply_grid-source_residual_mix",
		Name:        "Electricity supplied from grid",
		Category:    "Electricity",
		Source:      "AIB",
		Year:        2021,
		Region:      "FR",
		Unit:        "kg/kWh",
		Factor:      0.05,
		DataVersion: "21.21",
	}
}

func emissionFactorHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, factor(r.PathValue("id")))
}

func searchHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("data_version") == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "data_version is required")
		return
	}
	writeJSON(w, http.StatusOK, climatiqdto.SearchResponse{
		CurrentPage:  1,
		LastPage:     1,
		TotalResults: 1,
		Results:      []climatiqdto.Factor{factor("factor-0")},
	})
}

func labelsHandler(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, climatiqdto.Document{"labels": body["labels"]})
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	env.LoadEnv()

	addr := ":" + env.GetEnv("MOCK_PORT", "8081")
	delay, err := env.GetDuration("MOCK_LATENCY", 300*time.Millisecond)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't read MOCK_LATENCY")
	}

	routes := map[string]http.HandlerFunc{
		"POST /travel/flights":               estimateHandler,
		"POST /data/v1/estimate":             estimateHandler,
		"POST /data/v1/estimate/batch":       batchHandler,
		"GET /data/v1/search":                searchHandler,
		"GET /data/v1/emission-factors/{id}": emissionFactorHandler,
		"POST /energy/v1/electricity":        estimateHandler,
		"POST /energy/v1/heat":               estimateHandler,
		"POST /energy/v1/fuel":               estimateHandler,
		"POST /custom-mappings/v1/estimate":  estimateHandler,
		"POST /custom-mappings/v1/labels":    labelsHandler,
		"POST /compute/v1/{provider}/{kind}": computeHandler,
		"GET /compute/v1/{provider}/regions": regionsHandler,
	}

	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, authorized(latency(delay, h)))
	}

	log.Info().Str("addr", addr).Dur("latency", delay).Msg("Mock climatiq api running")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal().Err(err).Msg("mock server stopped")
	}
}
