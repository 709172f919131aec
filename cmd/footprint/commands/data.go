package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"footprint/internal/climatiq"
	apiv1dto "footprint/internal/dto/api_v1_dto"
	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"
)

func searchCmd() *cobra.Command {
	var (
		filters     []string
		limit       int
		dataVersion string
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search emission factors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := climatiq.SearchParams{
				Query:       args[0],
				DataVersion: dataVersion,
				Limit:       limit,
				Filters:     map[string]string{},
			}
			for _, f := range filters {
				k, v, ok := strings.Cut(f, "=")
				if !ok || k == "" {
					return fmt.Errorf("wrong filter %q, expected key=value", f)
				}
				p.Filters[k] = v
			}
			res, err := client.Search(cmd.Context(), p)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, res)
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "search filter as key=value, e.g. region=FR")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&dataVersion, "data-version", "", "data version, defaults to the configured one")
	return cmd
}

func factorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor <id>",
		Short: "Show one emission factor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.EmissionFactor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, res)
		},
	}
}

func regionsCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "regions <provider>",
		Short: "List the cloud regions of a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := args[0]
			var regions []schema.Region
			if strict {
				var err error
				if regions, err = client.FetchCloudRegions(cmd.Context(), provider); err != nil {
					return err
				}
			} else {
				regions = client.CloudRegions(cmd.Context(), provider)
			}
			return render(cmd.OutOrStdout(), outputFormat, apiv1dto.RegionsResponse{Provider: provider, Regions: regions})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing the built-in region list")
	return cmd
}

func labelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Create custom mapping labels",
		Args:  cobra.NoArgs,
		RunE: runWith(func() runner {
			return bind(func(ctx context.Context, r apiv1dto.LabelsRequest) (climatiqdto.Document, error) {
				return client.CreateLabels(ctx, r.Labels, r.DataVersion)
			})
		}),
	}
}
