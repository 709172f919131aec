package climatiq

import (
	"context"
	"net/http"

	climatiqdto "footprint/internal/dto/climatiq_dto"
)

// CustomOptions optional selectors of a custom mapping; zero values are not sent
type CustomOptions struct {
	DataVersion             string   `json:"data_version,omitempty"`
	Source                  string   `json:"source,omitempty"`
	Region                  string   `json:"region,omitempty"`
	RegionFallback          bool     `json:"region_fallback,omitempty"`
	YearFallback            bool     `json:"year_fallback,omitempty"`
	Year                    int      `json:"year,omitempty"`
	SourceLCAActivity       string   `json:"source_lca_activity,omitempty"`
	CalculationMethod       string   `json:"calculation_method,omitempty"`
	AllowedDataQualityFlags []string `json:"allowed_data_quality_flags,omitempty"`
}

// CustomEstimate estimates an activity through a custom mapping label
func (c *Client) CustomEstimate(ctx context.Context, label string, params climatiqdto.Parameters, opts CustomOptions) (*climatiqdto.Estimation, error) {
	body := climatiqdto.CustomEstimateRequest{
		CustomMapping: climatiqdto.CustomMapping{
			Label:                   label,
			DataVersion:             orDefault(opts.DataVersion, defaultCustomDataVersion),
			Source:                  opts.Source,
			Region:                  opts.Region,
			RegionFallback:          opts.RegionFallback,
			YearFallback:            opts.YearFallback,
			Year:                    opts.Year,
			SourceLCAActivity:       opts.SourceLCAActivity,
			CalculationMethod:       opts.CalculationMethod,
			AllowedDataQualityFlags: opts.AllowedDataQualityFlags,
		},
		Parameters: params,
	}

	var res climatiqdto.Estimation
	if err := c.call(ctx, http.MethodPost, "/custom-mappings/v1/estimate", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateLabels registers custom mapping labels
func (c *Client) CreateLabels(ctx context.Context, labels []climatiqdto.Label, dataVersion string) (climatiqdto.Document, error) {
	body := climatiqdto.LabelsRequest{
		DataVersion: orDefault(dataVersion, defaultCustomDataVersion),
		Labels:      labels,
	}

	var res climatiqdto.Document
	if err := c.call(ctx, http.MethodPost, "/custom-mappings/v1/labels", nil, body, &res); err != nil {
		return nil, err
	}
	if res == nil {
		res = climatiqdto.Document{}
	}
	return res, nil
}
