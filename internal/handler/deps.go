package handler

import (
	"context"

	"footprint/internal/climatiq"
	"footprint/internal/compare"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"
)

type emissionsService interface {
	Flight(ctx context.Context, p climatiq.FlightParams) (*climatiqdto.Estimation, error)
	Car(ctx context.Context, p climatiq.CarParams) (*climatiqdto.Estimation, error)
	Train(ctx context.Context, p climatiq.PassengerParams) (*climatiqdto.Estimation, error)
	Bus(ctx context.Context, p climatiq.PassengerParams) (*climatiqdto.Estimation, error)

	CPU(ctx context.Context, p climatiq.CPUParams) (*climatiqdto.Estimation, error)
	Storage(ctx context.Context, p climatiq.StorageParams) (*climatiqdto.Estimation, error)
	Memory(ctx context.Context, p climatiq.MemoryParams) (*climatiqdto.Estimation, error)
	Instance(ctx context.Context, p climatiq.InstanceParams) (*climatiqdto.Estimation, error)
	CloudRegions(ctx context.Context, provider string) []schema.Region

	Electricity(ctx context.Context, p climatiq.EnergyParams) (*climatiqdto.Estimation, error)
	Heat(ctx context.Context, p climatiq.EnergyParams) (*climatiqdto.Estimation, error)
	Fuel(ctx context.Context, p climatiq.FuelParams) (*climatiqdto.Estimation, error)

	Search(ctx context.Context, p climatiq.SearchParams) (*climatiqdto.SearchResponse, error)
	EmissionFactor(ctx context.Context, id string) (*climatiqdto.Factor, error)
	Estimate(ctx context.Context, req climatiqdto.EstimateRequest) (*climatiqdto.Estimation, error)
	BatchEstimate(ctx context.Context, reqs []climatiqdto.EstimateRequest) (*climatiqdto.BatchResponse, error)

	CustomEstimate(ctx context.Context, label string, params climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error)
	CreateLabels(ctx context.Context, labels []climatiqdto.Label, dataVersion string) (climatiqdto.Document, error)

	Countries(ctx context.Context, activity string, params climatiqdto.Parameters, countries []string) ([]schema.CountryResult, error)
	TransportTypes(ctx context.Context, params climatiqdto.Parameters, types []string) ([]schema.TypeResult, error)
	EnergyTypes(ctx context.Context, params climatiqdto.Parameters, types []string) ([]schema.TypeResult, error)
	Activities(ctx context.Context, activities []compare.Activity) ([]schema.ActivityResult, error)
	CountryStats(ctx context.Context, countries []string) ([]schema.CountryStats, error)
}

type metrics interface {
	UpstreamError(kind string)
}
