package commands

import (
	"context"

	"github.com/spf13/cobra"

	apiv1dto "footprint/internal/dto/api_v1_dto"
	"footprint/internal/schema"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare emissions side by side",
	}

	subs := []struct {
		use   string
		short string
		build func() runner
	}{
		{"countries", "One activity across countries", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.CountriesRequest) (apiv1dto.ResultsResponse[schema.CountryResult], error) {
				res, err := comparator.Countries(ctx, r.Activity, r.Parameters, r.Countries)
				return apiv1dto.ResultsResponse[schema.CountryResult]{Results: res}, err
			})
		}},
		{"transport", "Transport modes for the same trip", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.TypesRequest) (apiv1dto.ResultsResponse[schema.TypeResult], error) {
				res, err := comparator.TransportTypes(ctx, r.Parameters, r.Types)
				return apiv1dto.ResultsResponse[schema.TypeResult]{Results: res}, err
			})
		}},
		{"energy", "Energy sources for the same consumption", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.TypesRequest) (apiv1dto.ResultsResponse[schema.TypeResult], error) {
				res, err := comparator.EnergyTypes(ctx, r.Parameters, r.Types)
				return apiv1dto.ResultsResponse[schema.TypeResult]{Results: res}, err
			})
		}},
		{"activities", "Heterogeneous activities", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.ActivitiesRequest) (apiv1dto.ResultsResponse[schema.ActivityResult], error) {
				res, err := comparator.Activities(ctx, r.Activities)
				return apiv1dto.ResultsResponse[schema.ActivityResult]{Results: res}, err
			})
		}},
		{"country-stats", "Total emissions per country", func() runner {
			return bind(func(ctx context.Context, r apiv1dto.CountryStatsRequest) (apiv1dto.ResultsResponse[schema.CountryStats], error) {
				res, err := comparator.CountryStats(ctx, r.Countries)
				return apiv1dto.ResultsResponse[schema.CountryStats]{Results: res}, err
			})
		}},
	}

	for _, s := range subs {
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE:  runWith(s.build),
		})
	}
	return cmd
}
