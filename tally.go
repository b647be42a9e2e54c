package trackbear

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/quillhq/trackbear-go/enums"
	"github.com/quillhq/trackbear-go/models"
)

// TallyClient operates on the /tally resource collection.
type TallyClient struct {
	api *apiClient
}

// TallyFilter narrows a List call. Zero-valued fields are omitted from the
// query entirely. Works and Tags are serialized as repeated works[]/tags[]
// parameters; the measure and both dates are validated before any request is
// issued.
type TallyFilter struct {
	Works     []int
	Tags      []int
	Measure   enums.Measure
	StartDate string
	EndDate   string
}

// TallyParams carries the writable fields of a tally for Save. TallyID
// selects an update (PATCH) when greater than zero; leave it zero to create.
// SetTotal records Count as a running total rather than an increment. Tags
// holds tag names, not ids.
type TallyParams struct {
	TallyID  int
	WorkID   int
	Date     string
	Measure  enums.Measure
	Count    int
	Note     string
	Tags     []string
	SetTotal bool
}

// List retrieves tallies, optionally narrowed by filter.
func (c *TallyClient) List(ctx context.Context, filter TallyFilter) ([]models.Tally, error) {
	query := url.Values{}
	for _, id := range filter.Works {
		query.Add("works[]", strconv.Itoa(id))
	}
	for _, id := range filter.Tags {
		query.Add("tags[]", strconv.Itoa(id))
	}
	if filter.Measure != "" {
		measure, err := enums.ParseMeasure(filter.Measure.String())
		if err != nil {
			return nil, err
		}
		query.Set("measure", measure.String())
	}
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

	resp, err := c.api.get(ctx, "/tally", query)
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
	tallies := make([]models.Tally, 0, len(items))
	for _, item := range items {
		tally, err := models.BuildTally(item)
		if err != nil {
			return nil, err
		}
		tallies = append(tallies, tally)
	}
	return tallies, nil
}

// Get retrieves one tally by id.
func (c *TallyClient) Get(ctx context.Context, tallyID int) (models.Tally, error) {
	resp, err := c.api.get(ctx, fmt.Sprintf("/tally/%d", tallyID), nil)
	if err != nil {
		return models.Tally{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Tally{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Tally{}, err
	}
	return models.BuildTally(data)
}

// Save creates or updates a tally. The measure and date are validated before
// any request is issued.
func (c *TallyClient) Save(ctx context.Context, params TallyParams) (models.Tally, error) {
	measure, err := enums.ParseMeasure(params.Measure.String())
	if err != nil {
		return models.Tally{}, err
	}
	if err := validateDate("date", params.Date); err != nil {
		return models.Tally{}, err
	}

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}
	payload := map[string]any{
		"date":     params.Date,
		"measure":  measure.String(),
		"count":    params.Count,
		"note":     params.Note,
		"workId":   params.WorkID,
		"setTotal": params.SetTotal,
		"tags":     tags,
	}

	var resp *response
	if params.TallyID > 0 {
		resp, err = c.api.patch(ctx, fmt.Sprintf("/tally/%d", params.TallyID), payload)
	} else {
		resp, err = c.api.post(ctx, "/tally", payload)
	}
	if err != nil {
		return models.Tally{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Tally{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Tally{}, err
	}
	return models.BuildTally(data)
}

// Delete removes a tally by id and returns its final state.
func (c *TallyClient) Delete(ctx context.Context, tallyID int) (models.Tally, error) {
	resp, err := c.api.delete(ctx, fmt.Sprintf("/tally/%d", tallyID))
	if err != nil {
		return models.Tally{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Tally{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Tally{}, err
	}
	return models.BuildTally(data)
}
