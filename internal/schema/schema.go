package schema

// Region model of a cloud region
type Region struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CountryResult co2e of one activity in one country
type CountryResult struct {
	Country string  `json:"country" yaml:"country"`
	Co2e    float64 `json:"co2e" yaml:"co2e"`
	Unit    string  `json:"unit" yaml:"unit"`
}

// TypeResult co2e of one transport or energy type
type TypeResult struct {
	Type string  `json:"type" yaml:"type"`
	Co2e float64 `json:"co2e" yaml:"co2e"`
	Unit string  `json:"unit" yaml:"unit"`
}

// ActivityResult co2e of one named activity
type ActivityResult struct {
	Name string  `json:"name" yaml:"name"`
	Type string  `json:"type" yaml:"type"`
	Co2e float64 `json:"co2e" yaml:"co2e"`
	Unit string  `json:"unit" yaml:"unit"`
}

// CountryStats total emissions reported for a country
type CountryStats struct {
	Country        string  `json:"country" yaml:"country"`
	TotalEmissions float64 `json:"totalEmissions" yaml:"totalEmissions"`
	Unit           string  `json:"unit" yaml:"unit"`
	Year           int     `json:"year" yaml:"year"`
}
