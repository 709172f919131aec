package climatiq

import (
	"context"
	"net/http"

	climatiqdto "footprint/internal/dto/climatiq_dto"
)

// EnergyParams consumed electricity or heat
type EnergyParams struct {
	Energy float64 `json:"energy"`
	Unit   string  `json:"unit"`
	Region string  `json:"region,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// FuelParams burned fuel
type FuelParams struct {
	FuelType string  `json:"fuel_type"`
	Volume   float64 `json:"volume"`
	Unit     string  `json:"unit"`
	Region   string  `json:"region,omitempty"`
	Year     *int    `json:"year,omitempty"`
}

// Electricity estimates the emissions of consumed electricity
func (c *Client) Electricity(ctx context.Context, p EnergyParams) (*climatiqdto.Estimation, error) {
	return c.energy(ctx, "/energy/v1/electricity", p)
}

// Heat estimates the emissions of consumed heat and steam
func (c *Client) Heat(ctx context.Context, p EnergyParams) (*climatiqdto.Estimation, error) {
	return c.energy(ctx, "/energy/v1/heat", p)
}

func (c *Client) energy(ctx context.Context, path string, p EnergyParams) (*climatiqdto.Estimation, error) {
	body := climatiqdto.EnergyRequest{
		Region: p.Region,
		Amount: climatiqdto.EnergyAmount{Energy: p.Energy, EnergyUnit: p.Unit},
		Year:   p.Year,
	}
	var res climatiqdto.Estimation
	if err := c.call(ctx, http.MethodPost, path, nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Fuel estimates the emissions of burned fuel
func (c *Client) Fuel(ctx context.Context, p FuelParams) (*climatiqdto.Estimation, error) {
	body := climatiqdto.FuelRequest{
		FuelType: p.FuelType,
		Region:   p.Region,
		Amount:   climatiqdto.VolumeAmount{Volume: p.Volume, VolumeUnit: p.Unit},
		Year:     p.Year,
	}
	var res climatiqdto.Estimation
	if err := c.call(ctx, http.MethodPost, "/energy/v1/fuel", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
