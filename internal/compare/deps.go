package compare

import (
	"context"

	"footprint/internal/climatiq"
	climatiqdto "footprint/internal/dto/climatiq_dto"
)

type estimator interface {
	CustomEstimate(ctx context.Context, label string, params climatiqdto.Parameters, opts climatiq.CustomOptions) (*climatiqdto.Estimation, error)
	Flight(ctx context.Context, p climatiq.FlightParams) (*climatiqdto.Estimation, error)
	CPU(ctx context.Context, p climatiq.CPUParams) (*climatiqdto.Estimation, error)
	Storage(ctx context.Context, p climatiq.StorageParams) (*climatiqdto.Estimation, error)
	Memory(ctx context.Context, p climatiq.MemoryParams) (*climatiqdto.Estimation, error)
}
