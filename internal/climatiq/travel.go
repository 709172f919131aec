package climatiq

import (
	"context"
	"net/http"

	climatiqdto "footprint/internal/dto/climatiq_dto"
)

// FlightParams a one leg flight. Passengers defaults to 1, Class to economy.
type FlightParams struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Passengers  int    `json:"passengers,omitempty"`
	Class       string `json:"class,omitempty"`
}

// Flight estimates the emissions of a flight between two airports
func (c *Client) Flight(ctx context.Context, p FlightParams) (*climatiqdto.Estimation, error) {
	if p.Passengers == 0 {
		p.Passengers = 1
	}
	if p.Class == "" {
		p.Class = "economy"
	}
	body := climatiqdto.FlightRequest{
		Legs: []climatiqdto.FlightLeg{{
			From:       p.Origin,
			To:         p.Destination,
			Passengers: p.Passengers,
			Class:      p.Class,
		}},
	}

	var res climatiqdto.Estimation
	if err := c.call(ctx, http.MethodPost, "/travel/flights", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// category -> emission factor tables of ground transport; a miss uses the default category
const (
	defaultCarSize       = "medium"
	defaultTrainCategory = "national"
	defaultBusCategory   = "local"
)

var carFactors = map[string]climatiqdto.EmissionFactorSelector{
	"small":  {ActivityID: "passenger_vehicle-vehicle_type_car-fuel_source_na-engine_size_small-vehicle_age_na-vehicle_weight_na"},
	"medium": {ActivityID: "passenger_vehicle-vehicle_type_car-fuel_source_na-engine_size_medium-vehicle_age_na-vehicle_weight_na"},
	"large":  {ActivityID: "passenger_vehicle-vehicle_type_car-fuel_source_na-engine_size_large-vehicle_age_na-vehicle_weight_na"},
}

var trainFactors = map[string]climatiqdto.EmissionFactorSelector{
	"national":      {ActivityID: "passenger_train-route_type_national_rail-fuel_source_na"},
	"international": {ActivityID: "passenger_train-route_type_international_rail-fuel_source_na"},
	"light_rail":    {ActivityID: "passenger_train-route_type_light_rail_and_tram-fuel_source_na"},
	"underground":   {ActivityID: "passenger_train-route_type_underground-fuel_source_na"},
}

var busFactors = map[string]climatiqdto.EmissionFactorSelector{
	"local": {ID: "2246ac54-c55e-4b4c-9201-f23f934b18e2"},
	"coach": {ActivityID: "passenger_vehicle-vehicle_type_coach-fuel_source_na-distance_na-engine_size_na"},
}

func lookupFactor(table map[string]climatiqdto.EmissionFactorSelector, category, fallback string) climatiqdto.EmissionFactorSelector {
	if f, ok := table[category]; ok {
		return f
	}
	return table[fallback]
}

// CarParams a car trip; Size is small, medium or large
type CarParams struct {
	Distance     float64 `json:"distance"`
	Size         string  `json:"size,omitempty"`
	DistanceUnit string  `json:"distance_unit,omitempty"`
	Region       string  `json:"region,omitempty"`
}

// Car estimates the emissions of a car trip
func (c *Client) Car(ctx context.Context, p CarParams) (*climatiqdto.Estimation, error) {
	if p.DistanceUnit == "" {
		p.DistanceUnit = "km"
	}
	factor := lookupFactor(carFactors, p.Size, defaultCarSize)
	factor.Region = p.Region
	return c.Estimate(ctx, climatiqdto.EstimateRequest{
		EmissionFactor: factor,
		Parameters: climatiqdto.Parameters{
			"distance":      p.Distance,
			"distance_unit": p.DistanceUnit,
		},
	})
}

// PassengerParams a public transport trip; Category selects the line type
type PassengerParams struct {
	Distance     float64 `json:"distance"`
	Category     string  `json:"category,omitempty"`
	Passengers   int     `json:"passengers,omitempty"`
	DistanceUnit string  `json:"distance_unit,omitempty"`
	Region       string  `json:"region,omitempty"`
}

// Train estimates the emissions of a train trip in passenger-km
func (c *Client) Train(ctx context.Context, p PassengerParams) (*climatiqdto.Estimation, error) {
	return c.passengerTrip(ctx, lookupFactor(trainFactors, p.Category, defaultTrainCategory), p)
}

// Bus estimates the emissions of a bus trip in passenger-km
func (c *Client) Bus(ctx context.Context, p PassengerParams) (*climatiqdto.Estimation, error) {
	return c.passengerTrip(ctx, lookupFactor(busFactors, p.Category, defaultBusCategory), p)
}

func (c *Client) passengerTrip(ctx context.Context, factor climatiqdto.EmissionFactorSelector, p PassengerParams) (*climatiqdto.Estimation, error) {
	if p.Passengers == 0 {
		p.Passengers = 1
	}
	if p.DistanceUnit == "" {
		p.DistanceUnit = "km"
	}
	factor.Region = p.Region
	return c.Estimate(ctx, climatiqdto.EstimateRequest{
		EmissionFactor: factor,
		Parameters: climatiqdto.Parameters{
			"passengers":    p.Passengers,
			"distance":      p.Distance,
			"distance_unit": p.DistanceUnit,
		},
	})
}
