package trackbear

import (
	"context"
	"net/url"

	"github.com/quillhq/trackbear-go/models"
)

// StatClient reads the /stats aggregates. Stats are derived projections; only
// listing is supported.
type StatClient struct {
	api *apiClient
}

// StatFilter narrows a List call to a date range. Zero-valued fields are
// omitted from the query; both dates are validated before any request is
// issued.
type StatFilter struct {
	StartDate string
	EndDate   string
}

// List retrieves per-day progress aggregates.
func (c *StatClient) List(ctx context.Context, filter StatFilter) ([]models.Stat, error) {
	query := url.Values{}
	if filter.StartDate != "" {
		if err := validateDate("startDate", filter.StartDate); err != nil {
			return nil, err
		}
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		if err := validateDate("endDate", filter.EndDate); err != nil {
			return nil, err
		}
		query.Set("endDate", filter.EndDate)
	}

	resp, err := c.api.get(ctx, "/stats/days", query)
	if err != nil {
		return nil, err
	}
	if err := resp.apiErr(); err != nil {
		return nil, err
	}
	items, err := decodeList(resp.Data)
	if err != nil {
		return nil, err
	}
	stats := make([]models.Stat, 0, len(items))
	for _, item := range items {
		stat, err := models.BuildStat(item)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
