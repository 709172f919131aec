package climatiq

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	climatiqdto "footprint/internal/dto/climatiq_dto"
)

// SearchParams emission factor search. Limit maps to results_per_page,
// blank filters are dropped.
type SearchParams struct {
	Query       string            `json:"query"`
	DataVersion string            `json:"data_version,omitempty"`
	Limit       int               `json:"limit,omitempty"`
	Filters     map[string]string `json:"filters,omitempty"`
}

// Search looks emission factors up by free text and filters
func (c *Client) Search(ctx context.Context, p SearchParams) (*climatiqdto.SearchResponse, error) {
	query := url.Values{}
	query.Set("query", p.Query)
	query.Set("data_version", orDefault(p.DataVersion, c.dataVersion))
	if p.Limit > 0 {
		query.Set("results_per_page", strconv.Itoa(p.Limit))
	}
	for k, v := range p.Filters {
		if v != "" {
			query.Set(k, v)
		}
	}

	var res climatiqdto.SearchResponse
	if err := c.call(ctx, http.MethodGet, "/data/v1/search", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// EmissionFactor fetches one emission factor by its id
func (c *Client) EmissionFactor(ctx context.Context, id string) (*climatiqdto.Factor, error) {
	var res climatiqdto.Factor
	if err := c.call(ctx, http.MethodGet, "/data/v1/emission-factors/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Estimate runs one estimate against a selected emission factor
func (c *Client) Estimate(ctx context.Context, req climatiqdto.EstimateRequest) (*climatiqdto.Estimation, error) {
	req.EmissionFactor = c.withDataVersion(req.EmissionFactor)

	var res climatiqdto.Estimation
	if err := c.call(ctx, http.MethodPost, "/data/v1/estimate", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BatchEstimate runs several estimates in one call; results keep the request order
func (c *Client) BatchEstimate(ctx context.Context, reqs []climatiqdto.EstimateRequest) (*climatiqdto.BatchResponse, error) {
	body := make([]climatiqdto.EstimateRequest, 0, len(reqs))
	for _, r := range reqs {
		r.EmissionFactor = c.withDataVersion(r.EmissionFactor)
		body = append(body, r)
	}

	var res climatiqdto.BatchResponse
	if err := c.call(ctx, http.MethodPost, "/data/v1/estimate/batch", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// withDataVersion fills data_version of activity id selectors; id selectors pin a factor and need none
func (c *Client) withDataVersion(f climatiqdto.EmissionFactorSelector) climatiqdto.EmissionFactorSelector {
	if f.ActivityID != "" && f.DataVersion == "" {
		f.DataVersion = c.dataVersion
	}
	return f
}
