package climatiqdto

import (
	"github.com/goccy/go-json"
)

// EmissionFactor factor metadata attached to an estimate
type EmissionFactor struct {
	ID                string   `json:"id,omitempty"`
	ActivityID        string   `json:"activity_id,omitempty"`
	Name              string   `json:"name,omitempty"`
	AccessType        string   `json:"access_type,omitempty"`
	Source            string   `json:"source,omitempty"`
	SourceDataset     string   `json:"source_dataset,omitempty"`
	Year              int      `json:"year,omitempty"`
	Region            string   `json:"region,omitempty"`
	Category          string   `json:"category,omitempty"`
	SourceLCAActivity string   `json:"source_lca_activity,omitempty"`
	DataQualityFlags  []string `json:"data_quality_flags,omitempty"`
}

// ActivityData quantity the estimate was computed from
type ActivityData struct {
	ActivityValue float64 `json:"activity_value"`
	ActivityUnit  string  `json:"activity_unit"`
}

// Estimation response of every estimate endpoint. Compute endpoints report
// total_co2e instead of co2e. Raw keeps the body exactly as received and is
// what gets marshaled back out when set.
type Estimation struct {
	Co2e                  float64             `json:"co2e"`
	Co2eUnit              string              `json:"co2e_unit"`
	Co2eCalculationMethod string              `json:"co2e_calculation_method,omitempty"`
	Co2eCalculationOrigin string              `json:"co2e_calculation_origin,omitempty"`
	TotalCo2e             float64             `json:"total_co2e,omitempty"`
	TotalCo2eUnit         string              `json:"total_co2e_unit,omitempty"`
	Year                  int                 `json:"year,omitempty"`
	EmissionFactor        *EmissionFactor     `json:"emission_factor,omitempty"`
	ActivityData          *ActivityData       `json:"activity_data,omitempty"`
	ConstituentGases      map[string]*float64 `json:"constituent_gases,omitempty"`
	Legs                  []Estimation        `json:"legs,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type estimation Estimation

func (e *Estimation) UnmarshalJSON(b []byte) error {
	var v estimation
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = Estimation(v)
	e.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (e Estimation) MarshalJSON() ([]byte, error) {
	if len(e.Raw) != 0 {
		return e.Raw, nil
	}
	return json.Marshal(estimation(e))
}

// Amount returns the headline co2e and its unit
func (e *Estimation) Amount() (float64, string) {
	if e.Co2eUnit == "" && e.TotalCo2eUnit != "" {
		return e.TotalCo2e, e.TotalCo2eUnit
	}
	return e.Co2e, e.Co2eUnit
}

// BatchResult one entry of a batch estimate, either an estimation or an error
type BatchResult struct {
	Estimation *Estimation
	Error      string
	ErrorCode  string
	Message    string
}

type batchError struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func (r *BatchResult) UnmarshalJSON(b []byte) error {
	var e batchError
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	if e.Error != "" {
		r.Error, r.ErrorCode, r.Message = e.Error, e.ErrorCode, e.Message
		return nil
	}
	r.Estimation = &Estimation{}
	return json.Unmarshal(b, r.Estimation)
}

func (r BatchResult) MarshalJSON() ([]byte, error) {
	if r.Estimation != nil {
		return json.Marshal(r.Estimation)
	}
	return json.Marshal(batchError{Error: r.Error, ErrorCode: r.ErrorCode, Message: r.Message})
}

// BatchResponse response of data/estimate/batch, in request order
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// Factor an emission factor record, as returned by search and by id lookup
type Factor struct {
	ID                      string              `json:"id"`
	ActivityID              string              `json:"activity_id"`
	Name                    string              `json:"name"`
	Category                string              `json:"category,omitempty"`
	Sector                  string              `json:"sector,omitempty"`
	Source                  string              `json:"source,omitempty"`
	SourceLink              string              `json:"source_link,omitempty"`
	SourceDataset           string              `json:"source_dataset,omitempty"`
	Year                    int                 `json:"year,omitempty"`
	Region                  string              `json:"region,omitempty"`
	RegionName              string              `json:"region_name,omitempty"`
	Description             string              `json:"description,omitempty"`
	UnitType                string              `json:"unit_type,omitempty"`
	Unit                    string              `json:"unit,omitempty"`
	Factor                  float64             `json:"factor,omitempty"`
	FactorCalculationMethod string              `json:"factor_calculation_method,omitempty"`
	ConstituentGases        map[string]*float64 `json:"constituent_gases,omitempty"`
	DataQualityFlags        []string            `json:"data_quality_flags,omitempty"`
	AccessType              string              `json:"access_type,omitempty"`
	DataVersion             string              `json:"data_version,omitempty"`
}

// SearchResponse a page of data/search
type SearchResponse struct {
	CurrentPage     int                        `json:"current_page"`
	LastPage        int                        `json:"last_page"`
	TotalResults    int                        `json:"total_results"`
	Results         []Factor                   `json:"results"`
	PossibleFilters map[string]json.RawMessage `json:"possible_filters,omitempty"`
}

// Region a cloud region as listed by compute/{provider}/regions
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegionsResponse response of compute/{provider}/regions
type RegionsResponse struct {
	Regions []Region `json:"regions"`
}

// Document an object of unpinned shape, e.g. the custom-mappings/labels result
type Document map[string]any
