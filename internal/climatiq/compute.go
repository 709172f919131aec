package climatiq

import (
	"context"
	"net/http"
	"net/url"

	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/region"
)

const (
	defaultVCPUUtilization = 0.5
	defaultDataUnit        = "MB"
	defaultDurationUnit    = "hour"
)

// CPUParams cloud cpu usage. Utilization defaults to 0.5, Year is optional.
type CPUParams struct {
	Provider               string   `json:"provider"`
	Region                 string   `json:"region"`
	CPUCount               int      `json:"cpu_count"`
	Duration               float64  `json:"duration"`
	AverageVCPUUtilization *float64 `json:"average_vcpu_utilization,omitempty"`
	Year                   *int     `json:"year,omitempty"`
}

// StorageParams cloud storage usage. Units default to MB and hour.
type StorageParams struct {
	Provider     string  `json:"provider"`
	Region       string  `json:"region"`
	StorageType  string  `json:"storage_type"`
	Data         float64 `json:"data"`
	Duration     float64 `json:"duration"`
	DataUnit     string  `json:"data_unit,omitempty"`
	DurationUnit string  `json:"duration_unit,omitempty"`
	Year         *int    `json:"year,omitempty"`
}

// MemoryParams cloud memory usage. Units default to MB and hour.
type MemoryParams struct {
	Provider     string  `json:"provider"`
	Region       string  `json:"region"`
	Data         float64 `json:"data"`
	Duration     float64 `json:"duration"`
	DataUnit     string  `json:"data_unit,omitempty"`
	DurationUnit string  `json:"duration_unit,omitempty"`
	Year         *int    `json:"year,omitempty"`
}

// InstanceParams a running virtual machine
type InstanceParams struct {
	Provider     string  `json:"provider"`
	Region       string  `json:"region"`
	Instance     string  `json:"instance"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"duration_unit,omitempty"`
	Year         *int    `json:"year,omitempty"`
}

func computePath(provider, resource string) string {
	return "/compute/v1/" + url.PathEscape(provider) + "/" + resource
}

// CPU estimates the emissions of cloud cpu usage
func (c *Client) CPU(ctx context.Context, p CPUParams) (*climatiqdto.Estimation, error) {
	utilization := defaultVCPUUtilization
	if p.AverageVCPUUtilization != nil {
		utilization = *p.AverageVCPUUtilization
	}
	body := climatiqdto.CPURequest{
		Region:                 region.Normalize(p.Region),
		CPUCount:               p.CPUCount,
		AverageVCPUUtilization: utilization,
		Duration:               p.Duration,
		DurationUnit:           defaultDurationUnit,
		Year:                   p.Year,
	}
	return c.compute(ctx, computePath(p.Provider, "cpu"), body)
}

// Storage estimates the emissions of cloud storage usage
func (c *Client) Storage(ctx context.Context, p StorageParams) (*climatiqdto.Estimation, error) {
	body := climatiqdto.StorageRequest{
		Region:       region.Normalize(p.Region),
		StorageType:  p.StorageType,
		Data:         p.Data,
		DataUnit:     orDefault(p.DataUnit, defaultDataUnit),
		Duration:     p.Duration,
		DurationUnit: orDefault(p.DurationUnit, defaultDurationUnit),
		Year:         p.Year,
	}
	return c.compute(ctx, computePath(p.Provider, "storage"), body)
}

// Memory estimates the emissions of cloud memory usage
func (c *Client) Memory(ctx context.Context, p MemoryParams) (*climatiqdto.Estimation, error) {
	body := climatiqdto.MemoryRequest{
		Region:       region.Normalize(p.Region),
		Data:         p.Data,
		DataUnit:     orDefault(p.DataUnit, defaultDataUnit),
		Duration:     p.Duration,
		DurationUnit: orDefault(p.DurationUnit, defaultDurationUnit),
		Year:         p.Year,
	}
	return c.compute(ctx, computePath(p.Provider, "memory"), body)
}

// Instance estimates the emissions of a virtual machine
func (c *Client) Instance(ctx context.Context, p InstanceParams) (*climatiqdto.Estimation, error) {
	body := climatiqdto.InstanceRequest{
		Region:       region.Normalize(p.Region),
		Instance:     p.Instance,
		Duration:     p.Duration,
		DurationUnit: orDefault(p.DurationUnit, defaultDurationUnit),
		Year:         p.Year,
	}
	return c.compute(ctx, computePath(p.Provider, "instance"), body)
}

func (c *Client) compute(ctx context.Context, path string, body any) (*climatiqdto.Estimation, error) {
	var res climatiqdto.Estimation
	if err := c.call(ctx, http.MethodPost, path, nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
