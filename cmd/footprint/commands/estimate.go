package commands

import (
	"context"

	"github.com/spf13/cobra"

	apiv1dto "footprint/internal/dto/api_v1_dto"
	climatiqdto "footprint/internal/dto/climatiq_dto"
)

type estimator struct {
	use   string
	short string
	build func() runner
}

func estimators() []estimator {
	return []estimator{
		{"flight", "Flight between two airports", func() runner { return bind(client.Flight) }},
		{"car", "Car trip", func() runner { return bind(client.Car) }},
		{"train", "Train trip", func() runner { return bind(client.Train) }},
		{"bus", "Bus trip", func() runner { return bind(client.Bus) }},
		{"cpu", "Cloud cpu usage", func() runner { return bind(client.CPU) }},
		{"storage", "Cloud storage usage", func() runner { return bind(client.Storage) }},
		{"memory", "Cloud memory usage", func() runner { return bind(client.Memory) }},
		{"instance", "Cloud virtual machine", func() runner { return bind(client.Instance) }},
		{"electricity", "Consumed electricity", func() runner { return bind(client.Electricity) }},
		{"heat", "Consumed heat", func() runner { return bind(client.Heat) }},
		{"fuel", "Burned fuel", func() runner { return bind(client.Fuel) }},
		{"data", "Estimate against an explicit emission factor", func() runner { return bind(client.Estimate) }},
		{"batch", "Several data estimates in one call", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.BatchRequest) (*climatiqdto.BatchResponse, error) {
				return client.BatchEstimate(ctx, r)
			})
		}},
		{"custom", "Estimate through a custom mapping label", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.CustomEstimateRequest) (*climatiqdto.Estimation, error) {
				return client.CustomEstimate(ctx, r.Label, r.Parameters, r.Options)
			})
		}},
	}
}

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the emissions of an activity",
	}
	for _, e := range estimators() {
		cmd.AddCommand(&cobra.Command{
			Use:   e.use,
			Short: e.short,
			Args:  cobra.NoArgs,
			RunE:  runWith(e.build),
		})
	}
	return cmd
}
