package trackbear

import (
	"context"
	"fmt"

	"github.com/quillhq/trackbear-go/enums"
	"github.com/quillhq/trackbear-go/models"
)

// ProjectClient operates on the /project resource collection.
type ProjectClient struct {
	api *apiClient
}

// ProjectParams carries the writable fields of a project for Save. ProjectID
// selects an update (PATCH) when greater than zero; leave it zero to create.
// The six counter fields form the project's starting balance.
type ProjectParams struct {
	ProjectID        int
	Title            string
	Description      string
	Phase            enums.Phase
	Starred          bool
	DisplayOnProfile bool
	Word             int
	Time             int
	Page             int
	Chapter          int
	Scene            int
	Line             int
}

// List retrieves all projects.
func (c *ProjectClient) List(ctx context.Context) ([]models.Project, error) {
	resp, err := c.api.get(ctx, "/project", nil)
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
	projects := make([]models.Project, 0, len(items))
	for _, item := range items {
		project, err := models.BuildProject(item)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// Get retrieves one project by id.
func (c *ProjectClient) Get(ctx context.Context, projectID int) (models.Project, error) {
	resp, err := c.api.get(ctx, fmt.Sprintf("/project/%d", projectID), nil)
	if err != nil {
		return models.Project{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Project{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Project{}, err
	}
	return models.BuildProject(data)
}

// Save creates or updates a project. The phase is validated before any
// request is issued. Mutation endpoints return the reduced project shape.
func (c *ProjectClient) Save(ctx context.Context, params ProjectParams) (models.ProjectStub, error) {
	phase, err := enums.ParsePhase(params.Phase.String())
	if err != nil {
		return models.ProjectStub{}, err
	}

	payload := map[string]any{
		"title":       params.Title,
		"description": params.Description,
		"phase":       phase.String(),
		"startingBalance": map[string]int{
			"word":    params.Word,
			"time":    params.Time,
			"page":    params.Page,
			"chapter": params.Chapter,
			"scene":   params.Scene,
			"line":    params.Line,
		},
		"starred":          params.Starred,
		"displayOnProfile": params.DisplayOnProfile,
	}

	var resp *response
	if params.ProjectID > 0 {
		resp, err = c.api.patch(ctx, fmt.Sprintf("/project/%d", params.ProjectID), payload)
	} else {
		resp, err = c.api.post(ctx, "/project", payload)
	}
	if err != nil {
		return models.ProjectStub{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.ProjectStub{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.ProjectStub{}, err
	}
	return models.BuildProjectStub(data)
}

// Delete removes a project by id and returns its final state.
func (c *ProjectClient) Delete(ctx context.Context, projectID int) (models.ProjectStub, error) {
	resp, err := c.api.delete(ctx, fmt.Sprintf("/project/%d", projectID))
	if err != nil {
		return models.ProjectStub{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.ProjectStub{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.ProjectStub{}, err
	}
	return models.BuildProjectStub(data)
}
