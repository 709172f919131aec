package apiv1dto

import (
	"errors"
	"fmt"

	"footprint/internal/climatiq"
	"footprint/internal/compare"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"
)

// CustomEstimateRequest dto of custom-mappings/estimate
type CustomEstimateRequest struct {
	Label      string                 `json:"label"`
	Parameters climatiqdto.Parameters `json:"parameters"`
	Options    climatiq.CustomOptions `json:"options"`
}

func (r CustomEstimateRequest) Validate() error {
	if r.Label == "" {
		return errors.New("wrong request, missed label")
	}
	return nil
}

// LabelsRequest dto of custom-mappings/labels
type LabelsRequest struct {
	DataVersion string              `json:"data_version,omitempty"`
	Labels      []climatiqdto.Label `json:"labels"`
}

func (r LabelsRequest) Validate() error {
	if len(r.Labels) == 0 {
		return errors.New("wrong request, missed labels")
	}
	return nil
}

// BatchRequest dto of estimate/batch
type BatchRequest []climatiqdto.EstimateRequest

func (r BatchRequest) Validate() error {
	if len(r) == 0 {
		return errors.New("wrong request, missed estimates")
	}
	return nil
}

// CountriesRequest dto of compare/countries
type CountriesRequest struct {
	Activity   string                 `json:"activity"`
	Parameters climatiqdto.Parameters `json:"parameters"`
	Countries  []string               `json:"countries"`
}

func (r CountriesRequest) Validate() error {
	if r.Activity == "" {
		return errors.New("wrong request, missed activity")
	}
	if len(r.Countries) == 0 {
		return errors.New("wrong request, missed countries")
	}
	return nil
}

// TypesRequest dto of compare/transport and compare/energy
type TypesRequest struct {
	Parameters climatiqdto.Parameters `json:"parameters"`
	Types      []string               `json:"types"`
}

func (r TypesRequest) Validate() error {
	if len(r.Types) == 0 {
		return errors.New("wrong request, missed types")
	}
	return nil
}

// ActivitiesRequest dto of compare/activities
type ActivitiesRequest struct {
	Activities []compare.Activity `json:"activities"`
}

func (r ActivitiesRequest) Validate() error {
	if len(r.Activities) == 0 {
		return errors.New("wrong request, missed activities")
	}
	for _, a := range r.Activities {
		missed := (a.Type == "flight" && a.Flight == nil) ||
			(a.Type == "cpu" && a.CPU == nil) ||
			(a.Type == "storage" && a.Storage == nil) ||
			(a.Type == "memory" && a.Memory == nil)
		if missed {
			return fmt.Errorf("wrong request, missed %s parameters of activity %q", a.Type, a.Name)
		}
	}
	return nil
}

// CountryStatsRequest dto of compare/country-stats
type CountryStatsRequest struct {
	Countries []string `json:"countries"`
}

func (r CountryStatsRequest) Validate() error {
	if len(r.Countries) == 0 {
		return errors.New("wrong request, missed countries")
	}
	return nil
}

// RegionsResponse response of compute/{provider}/regions
type RegionsResponse struct {
	Provider string          `json:"provider"`
	Regions  []schema.Region `json:"regions"`
}

// ResultsResponse wraps the rows of a comparison
type ResultsResponse[T any] struct {
	Results []T `json:"results"`
}

// ErrorResponse body of every failed request
type ErrorResponse struct {
	Error          string `json:"error"`
	Kind           string `json:"kind,omitempty"`
	Detail         string `json:"detail,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	RequestID      string `json:"request_id,omitempty"`
}
