package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"footprint/internal/climatiq"
	apiv1dto "footprint/internal/dto/api_v1_dto"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/middleware"
	"footprint/internal/schema"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// search query parameters that are not passed through as filters
var searchReserved = map[string]bool{"query": true, "data_version": true, "limit": true}

type Handler struct {
	service        emissionsService
	metrics        metrics
	requestTimeout time.Duration
}

func New(service emissionsService, metrics metrics, requestTimeout time.Duration) *Handler {
	return &Handler{
		service:        service,
		metrics:        metrics,
		requestTimeout: requestTimeout,
	}
}

// Register mounts every route on mux
func (h *Handler) Register(mux *http.ServeMux) {
	s := h.service

	mux.HandleFunc("POST /api/v1/travel/flights", post(h, s.Flight))
	mux.HandleFunc("POST /api/v1/travel/car", post(h, s.Car))
	mux.HandleFunc("POST /api/v1/travel/train", post(h, s.Train))
	mux.HandleFunc("POST /api/v1/travel/bus", post(h, s.Bus))

	mux.HandleFunc("POST /api/v1/compute/{provider}/cpu", postRequest(h, func(ctx context.Context, r *http.Request, p climatiq.CPUParams) (*climatiqdto.Estimation, error) {
		p.Provider = r.PathValue("provider")
		return s.CPU(ctx, p)
	}))
	mux.HandleFunc("POST /api/v1/compute/{provider}/storage", postRequest(h, func(ctx context.Context, r *http.Request, p climatiq.StorageParams) (*climatiqdto.Estimation, error) {
		p.Provider = r.PathValue("provider")
		return s.Storage(ctx, p)
	}))
	mux.HandleFunc("POST /api/v1/compute/{provider}/memory", postRequest(h, func(ctx context.Context, r *http.Request, p climatiq.MemoryParams) (*climatiqdto.Estimation, error) {
		p.Provider = r.PathValue("provider")
		return s.Memory(ctx, p)
	}))
	mux.HandleFunc("POST /api/v1/compute/{provider}/instance", postRequest(h, func(ctx context.Context, r *http.Request, p climatiq.InstanceParams) (*climatiqdto.Estimation, error) {
		p.Provider = r.PathValue("provider")
		return s.Instance(ctx, p)
	}))
	mux.HandleFunc("GET /api/v1/compute/{provider}/regions", get(h, func(ctx context.Context, r *http.Request) (apiv1dto.RegionsResponse, error) {
		provider := r.PathValue("provider")
		return apiv1dto.RegionsResponse{Provider: provider, Regions: s.CloudRegions(ctx, provider)}, nil
	}))

	mux.HandleFunc("POST /api/v1/energy/electricity", post(h, s.Electricity))
	mux.HandleFunc("POST /api/v1/energy/heat", post(h, s.Heat))
	mux.HandleFunc("POST /api/v1/energy/fuel", post(h, s.Fuel))

	mux.HandleFunc("GET /api/v1/search", get(h, func(ctx context.Context, r *http.Request) (*climatiqdto.SearchResponse, error) {
		p, err := searchParams(r)
		if err != nil {
			return nil, err
		}
		return s.Search(ctx, p)
	}))
	mux.HandleFunc("GET /api/v1/emission-factors/{id}", get(h, func(ctx context.Context, r *http.Request) (*climatiqdto.Factor, error) {
		return s.EmissionFactor(ctx, r.PathValue("id"))
	}))
	mux.HandleFunc("POST /api/v1/estimate", post(h, s.Estimate))
	mux.HandleFunc("POST /api/v1/estimate/batch", post(h, func(ctx context.Context, req apiv1dto.BatchRequest) (*climatiqdto.BatchResponse, error) {
		return s.BatchEstimate(ctx, req)
	}))

	mux.HandleFunc("POST /api/v1/custom-mappings/estimate", post(h, func(ctx context.Context, req apiv1dto.CustomEstimateRequest) (*climatiqdto.Estimation, error) {
		return s.CustomEstimate(ctx, req.Label, req.Parameters, req.Options)
	}))
	mux.HandleFunc("POST /api/v1/custom-mappings/labels", post(h, func(ctx context.Context, req apiv1dto.LabelsRequest) (climatiqdto.Document, error) {
		return s.CreateLabels(ctx, req.Labels, req.DataVersion)
	}))

	mux.HandleFunc("POST /api/v1/compare/countries", post(h, func(ctx context.Context, req apiv1dto.CountriesRequest) (apiv1dto.ResultsResponse[schema.CountryResult], error) {
		res, err := s.Countries(ctx, req.Activity, req.Parameters, req.Countries)
		return apiv1dto.ResultsResponse[schema.CountryResult]{Results: res}, err
	}))
	mux.HandleFunc("POST /api/v1/compare/transport", post(h, func(ctx context.Context, req apiv1dto.TypesRequest) (apiv1dto.ResultsResponse[schema.TypeResult], error) {
		res, err := s.TransportTypes(ctx, req.Parameters, req.Types)
		return apiv1dto.ResultsResponse[schema.TypeResult]{Results: res}, err
	}))
	mux.HandleFunc("POST /api/v1/compare/energy", post(h, func(ctx context.Context, req apiv1dto.TypesRequest) (apiv1dto.ResultsResponse[schema.TypeResult], error) {
		res, err := s.EnergyTypes(ctx, req.Parameters, req.Types)
		return apiv1dto.ResultsResponse[schema.TypeResult]{Results: res}, err
	}))
	mux.HandleFunc("POST /api/v1/compare/activities", post(h, func(ctx context.Context, req apiv1dto.ActivitiesRequest) (apiv1dto.ResultsResponse[schema.ActivityResult], error) {
		res, err := s.Activities(ctx, req.Activities)
		return apiv1dto.ResultsResponse[schema.ActivityResult]{Results: res}, err
	}))
	mux.HandleFunc("POST /api/v1/compare/country-stats", post(h, func(ctx context.Context, req apiv1dto.CountryStatsRequest) (apiv1dto.ResultsResponse[schema.CountryStats], error) {
		res, err := s.CountryStats(ctx, req.Countries)
		return apiv1dto.ResultsResponse[schema.CountryStats]{Results: res}, err
	}))
}

// badRequestError input the proxy refuses before calling the api
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string {
	return e.err.Error()
}

func (e *badRequestError) Unwrap() error {
	return e.err
}

type validator interface {
	Validate() error
}

// post decodes a json body into Req and serves the result of call
func post[Req, Resp any](h *Handler, call func(ctx context.Context, req Req) (Resp, error)) http.HandlerFunc {
	return postRequest(h, func(ctx context.Context, _ *http.Request, req Req) (Resp, error) {
		return call(ctx, req)
	})
}

// postRequest is post for calls that also read the request, e.g. its path values
func postRequest[Req, Resp any](h *Handler, call func(ctx context.Context, r *http.Request, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, r, &badRequestError{err: fmt.Errorf("invalid request body: %w", err)})
			return
		}
		if v, ok := any(req).(validator); ok {
			if err := v.Validate(); err != nil {
				h.writeError(w, r, &badRequestError{err: err})
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		resp, err := call(ctx, r, req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, http.StatusOK, resp)
	}
}

// get serves the result of call, which reads its input from the request
func get[Resp any](h *Handler, call func(ctx context.Context, r *http.Request) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		resp, err := call(ctx, r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, http.StatusOK, resp)
	}
}

func searchParams(r *http.Request) (climatiq.SearchParams, error) {
	q := r.URL.Query()
	p := climatiq.SearchParams{
		Query:       q.Get("query"),
		DataVersion: q.Get("data_version"),
		Filters:     map[string]string{},
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return p, &badRequestError{err: fmt.Errorf("can't parse limit: %w", err)}
		}
		p.Limit = n
	}
	for k := range q {
		if !searchReserved[k] {
			p.Filters[k] = q.Get(k)
		}
	}
	return p, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("couldn't marshal a response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("couldn't write a response")
	}
}

// writeError maps err to a status: climatiq errors keep the upstream status,
// except unreachable or malformed upstream which is a bad gateway
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := apiv1dto.ErrorResponse{
		Error:     err.Error(),
		RequestID: w.Header().Get(middleware.RequestIDHeader),
	}
	status := http.StatusInternalServerError

	var apiErr *climatiq.Error
	var badReq *badRequestError
	switch {
	case errors.As(err, &badReq):
		status = http.StatusBadRequest
	case errors.As(err, &apiErr):
		h.metrics.UpstreamError(apiErr.Kind.String())
		resp.Error = apiErr.Message
		resp.Kind = apiErr.Kind.String()
		resp.Detail = apiErr.Detail
		resp.UpstreamStatus = apiErr.Status
		status = apiErr.Status
		if apiErr.Kind == climatiq.KindNetwork || apiErr.Kind == climatiq.KindMalformedResponse || status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	logEvent := zerolog.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		logEvent = zerolog.Ctx(r.Context()).Error()
	}
	logEvent.Err(err).Int("status", status).Msg("request failed")

	h.writeJSON(w, r, status, resp)
}
