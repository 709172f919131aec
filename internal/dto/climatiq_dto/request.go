package climatiqdto

// Parameters activity quantities of an estimate, e.g. {"distance": 100, "distance_unit": "km"}
type Parameters map[string]any

// FlightLeg one leg of a flight
type FlightLeg struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Passengers int    `json:"passengers"`
	Class      string `json:"class"`
}

// FlightRequest body of travel/flights
type FlightRequest struct {
	Legs []FlightLeg `json:"legs"`
}

// EmissionFactorSelector selects the emission factor of a data estimate
type EmissionFactorSelector struct {
	ActivityID              string   `json:"activity_id,omitempty"`
	ID                      string   `json:"id,omitempty"`
	DataVersion             string   `json:"data_version,omitempty"`
	Source                  string   `json:"source,omitempty"`
	Region                  string   `json:"region,omitempty"`
	Year                    *int     `json:"year,omitempty"`
	RegionFallback          *bool    `json:"region_fallback,omitempty"`
	YearFallback            *bool    `json:"year_fallback,omitempty"`
	SourceLCAActivity       string   `json:"source_lca_activity,omitempty"`
	CalculationMethod       string   `json:"calculation_method,omitempty"`
	AllowedDataQualityFlags []string `json:"allowed_data_quality_flags,omitempty"`
}

// EstimateRequest body of data/estimate, also one element of a batch
type EstimateRequest struct {
	EmissionFactor EmissionFactorSelector `json:"emission_factor"`
	Parameters     Parameters             `json:"parameters"`
}

// CPURequest body of compute/{provider}/cpu
type CPURequest struct {
	Region                 string  `json:"region"`
	CPUCount               int     `json:"cpu_count"`
	AverageVCPUUtilization float64 `json:"average_vcpu_utilization"`
	Duration               float64 `json:"duration"`
	DurationUnit           string  `json:"duration_unit"`
	Year                   *int    `json:"year,omitempty"`
}

// StorageRequest body of compute/{provider}/storage
type StorageRequest struct {
	Region       string  `json:"region"`
	StorageType  string  `json:"storage_type"`
	Data         float64 `json:"data"`
	DataUnit     string  `json:"data_unit"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"duration_unit"`
	Year         *int    `json:"year,omitempty"`
}

// MemoryRequest body of compute/{provider}/memory
type MemoryRequest struct {
	Region       string  `json:"region"`
	Data         float64 `json:"data"`
	DataUnit     string  `json:"data_unit"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"duration_unit"`
	Year         *int    `json:"year,omitempty"`
}

// InstanceRequest body of compute/{provider}/instance
type InstanceRequest struct {
	Region       string  `json:"region"`
	Instance     string  `json:"instance"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"duration_unit"`
	Year         *int    `json:"year,omitempty"`
}

type EnergyAmount struct {
	Energy     float64 `json:"energy"`
	EnergyUnit string  `json:"energy_unit"`
}

// EnergyRequest body of energy/electricity and energy/heat
type EnergyRequest struct {
	Region string       `json:"region,omitempty"`
	Amount EnergyAmount `json:"amount"`
	Year   *int         `json:"year,omitempty"`
}

type VolumeAmount struct {
	Volume     float64 `json:"volume"`
	VolumeUnit string  `json:"volume_unit"`
}

// FuelRequest body of energy/fuel
type FuelRequest struct {
	FuelType string       `json:"fuel_type"`
	Region   string       `json:"region,omitempty"`
	Amount   VolumeAmount `json:"amount"`
	Year     *int         `json:"year,omitempty"`
}

// CustomMapping selects a custom mapping; zero values are left out of the payload
type CustomMapping struct {
	Label                   string   `json:"label"`
	DataVersion             string   `json:"data_version"`
	Source                  string   `json:"source,omitempty"`
	Region                  string   `json:"region,omitempty"`
	RegionFallback          bool     `json:"region_fallback,omitempty"`
	YearFallback            bool     `json:"year_fallback,omitempty"`
	Year                    int      `json:"year,omitempty"`
	SourceLCAActivity       string   `json:"source_lca_activity,omitempty"`
	CalculationMethod       string   `json:"calculation_method,omitempty"`
	AllowedDataQualityFlags []string `json:"allowed_data_quality_flags,omitempty"`
}

// CustomEstimateRequest body of custom-mappings/estimate
type CustomEstimateRequest struct {
	CustomMapping CustomMapping `json:"custom_mapping"`
	Parameters    Parameters    `json:"parameters"`
}

// Label one custom mapping label
type Label struct {
	Label           string   `json:"label"`
	UnitType        []string `json:"unit_type,omitempty"`
	Source          string   `json:"source,omitempty"`
	AllowDuplicates *bool    `json:"allow_duplicates,omitempty"`
}

// LabelsRequest body of custom-mappings/labels
type LabelsRequest struct {
	DataVersion string  `json:"data_version"`
	Labels      []Label `json:"labels"`
}
