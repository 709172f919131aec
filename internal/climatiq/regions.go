package climatiq

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"slices"

	climatiqdto "footprint/internal/dto/climatiq_dto"
	"footprint/internal/schema"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var staticRegionsYAML []byte

var staticRegions = mustLoadStaticRegions(staticRegionsYAML)

func mustLoadStaticRegions(data []byte) map[string][]schema.Region {
	var regions map[string][]schema.Region
	if err := yaml.Unmarshal(data, &regions); err != nil {
		panic(fmt.Sprintf("climatiq: embedded region table: %v", err))
	}
	return regions
}

// StaticRegions returns the built-in region list of a provider, empty if unknown
func StaticRegions(provider string) []schema.Region {
	regions, ok := staticRegions[provider]
	if !ok {
		return []schema.Region{}
	}
	return slices.Clone(regions)
}

// CloudRegions lists the regions of a cloud provider. It never fails: when
// the API can't answer, the built-in list is returned instead.
func (c *Client) CloudRegions(ctx context.Context, provider string) []schema.Region {
	regions, err := c.FetchCloudRegions(ctx, provider)
	if err != nil {
		return c.FallbackRegions(provider, err)
	}
	return regions
}

// FetchCloudRegions lists the regions of a cloud provider as the API reports them
func (c *Client) FetchCloudRegions(ctx context.Context, provider string) ([]schema.Region, error) {
	var res climatiqdto.RegionsResponse
	if err := c.call(ctx, http.MethodGet, computePath(provider, "regions"), nil, nil, &res); err != nil {
		return nil, err
	}
	return toSchema(res.Regions), nil
}

// FallbackRegions logs why the API list is unavailable and returns the built-in one
func (c *Client) FallbackRegions(provider string, err error) []schema.Region {
	c.logger.Warn().Err(err).Str("provider", provider).Msg("couldn't fetch cloud regions, using static fallback")
	return StaticRegions(provider)
}

func toSchema(regions []climatiqdto.Region) []schema.Region {
	result := make([]schema.Region, 0, len(regions))
	for _, r := range regions {
		result = append(result, schema.Region{ID: r.ID, Name: r.Name})
	}
	return result
}
