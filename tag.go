package trackbear

import (
	"context"
	"fmt"

	"github.com/quillhq/trackbear-go/enums"
	"github.com/quillhq/trackbear-go/models"
)

// TagClient operates on the /tag resource collection.
type TagClient struct {
	api *apiClient
}

// TagParams carries the writable fields of a tag for Save. TagID selects an
// update (PATCH) when greater than zero; leave it zero to create.
type TagParams struct {
	TagID int
	Name  string
	Color enums.Color
}

// List retrieves all tags.
func (c *TagClient) List(ctx context.Context) ([]models.Tag, error) {
	resp, err := c.api.get(ctx, "/tag", nil)
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
	tags := make([]models.Tag, 0, len(items))
	for _, item := range items {
		tag, err := models.BuildTag(item)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Get retrieves one tag by id.
func (c *TagClient) Get(ctx context.Context, tagID int) (models.Tag, error) {
	resp, err := c.api.get(ctx, fmt.Sprintf("/tag/%d", tagID), nil)
	if err != nil {
		return models.Tag{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Tag{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Tag{}, err
	}
	return models.BuildTag(data)
}

// Save creates or updates a tag. The color is validated before any request is
// issued.
func (c *TagClient) Save(ctx context.Context, params TagParams) (models.Tag, error) {
	color, err := enums.ParseColor(params.Color.String())
	if err != nil {
		return models.Tag{}, err
	}

	payload := map[string]any{
		"name":  params.Name,
		"color": color.String(),
	}

	var resp *response
	if params.TagID > 0 {
		resp, err = c.api.patch(ctx, fmt.Sprintf("/tag/%d", params.TagID), payload)
	} else {
		resp, err = c.api.post(ctx, "/tag", payload)
	}
	if err != nil {
		return models.Tag{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Tag{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Tag{}, err
	}
	return models.BuildTag(data)
}

// Delete removes a tag by id and returns its final state.
func (c *TagClient) Delete(ctx context.Context, tagID int) (models.Tag, error) {
	resp, err := c.api.delete(ctx, fmt.Sprintf("/tag/%d", tagID))
	if err != nil {
		return models.Tag{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Tag{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Tag{}, err
	}
	return models.BuildTag(data)
}
