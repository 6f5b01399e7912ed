package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tbruun/voyage-log/backend/internal/cache"
	"github.com/tbruun/voyage-log/backend/internal/domain"
)

// ReferenceClient fetches the read-only reference lists (vessels, unit
// types) that populate the form's selection widgets. Results are cached in
// the shared list cache under stable per-resource keys and refetched only
// after explicit invalidation.
type ReferenceClient struct {
	client  *http.Client
	baseURL string
	lists   *cache.Cache
}

// NewReferenceClient constructs a ReferenceClient reading from baseURL and
// caching in lists.
func NewReferenceClient(client *http.Client, baseURL string, lists *cache.Cache) *ReferenceClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &ReferenceClient{client: client, baseURL: baseURL, lists: lists}
}

// Vessels returns the vessel reference list, fetching it on first use.
func (c *ReferenceClient) Vessels(ctx context.Context) ([]domain.Vessel, error) {
	v, err := c.lists.GetOrLoad(ctx, cache.KeyVessels, func(ctx context.Context) (any, error) {
		var vessels []domain.Vessel
		if err := c.getJSON(ctx, "/api/vessel", &vessels); err != nil {
			return nil, err
		}
		return vessels, nil
	})
	if err != nil {
		return nil, fmt.Errorf("draft.ReferenceClient.Vessels: %w", err)
	}
	return v.([]domain.Vessel), nil
}

// UnitTypes returns the unit-type reference list, fetching it on first use.
func (c *ReferenceClient) UnitTypes(ctx context.Context) ([]domain.UnitType, error) {
	v, err := c.lists.GetOrLoad(ctx, cache.KeyUnitTypes, func(ctx context.Context) (any, error) {
		var unitTypes []domain.UnitType
		if err := c.getJSON(ctx, "/api/unittype", &unitTypes); err != nil {
			return nil, err
		}
		return unitTypes, nil
	})
	if err != nil {
		return nil, fmt.Errorf("draft.ReferenceClient.UnitTypes: %w", err)
	}
	return v.([]domain.UnitType), nil
}

// getJSON issues a GET for path and decodes the JSON body into out.
func (c *ReferenceClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
