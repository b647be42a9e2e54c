package models

import (
	"github.com/google/uuid"

	"github.com/quillhq/trackbear-go/enums"
)

// Project is a writing project, including its cumulative totals.
type Project struct {
	ID               int         `json:"id"`
	UUID             uuid.UUID   `json:"uuid"`
	CreatedAt        string      `json:"createdAt"`
	UpdatedAt        string      `json:"updatedAt"`
	State            enums.State `json:"state"`
	OwnerID          int         `json:"ownerId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Phase            enums.Phase `json:"phase"`
	StartingBalance  Balance     `json:"startingBalance"`
	Cover            *string     `json:"cover"`
	Starred          bool        `json:"starred"`
	DisplayOnProfile bool        `json:"displayOnProfile"`
	Totals           Balance     `json:"totals"`
	LastUpdated      *string     `json:"lastUpdated"`
}

// ProjectStub is the reduced project shape returned by mutation endpoints and
// embedded in tallies. It omits the cumulative totals and last-updated marker.
type ProjectStub struct {
	ID               int         `json:"id"`
	UUID             uuid.UUID   `json:"uuid"`
	CreatedAt        string      `json:"createdAt"`
	UpdatedAt        string      `json:"updatedAt"`
	State            enums.State `json:"state"`
	OwnerID          int         `json:"ownerId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Phase            enums.Phase `json:"phase"`
	StartingBalance  Balance     `json:"startingBalance"`
	Cover            *string     `json:"cover"`
	Starred          bool        `json:"starred"`
	DisplayOnProfile bool        `json:"displayOnProfile"`
}

// BuildProject constructs a Project from a decoded JSON object.
func BuildProject(data map[string]any) (Project, error) {
	project, err := buildProject(data)
	if err != nil {
		return Project{}, buildError("Project", data, err)
	}
	return project, nil
}

func buildProject(data map[string]any) (Project, error) {
	raw := newRawObject(data)
	project := Project{
		ID:               raw.integer("id"),
		UUID:             raw.uuid("uuid"),
		CreatedAt:        raw.str("createdAt"),
		UpdatedAt:        raw.str("updatedAt"),
		State:            raw.state("state"),
		OwnerID:          raw.integer("ownerId"),
		Title:            raw.str("title"),
		Description:      raw.str("description"),
		Phase:            raw.phase("phase"),
		StartingBalance:  raw.balance("startingBalance"),
		Cover:            raw.nullStr("cover"),
		Starred:          raw.optBool("starred"),
		DisplayOnProfile: raw.optBool("displayOnProfile"),
		Totals:           raw.balance("totals"),
		LastUpdated:      raw.nullStr("lastUpdated"),
	}
	if raw.err != nil {
		return Project{}, raw.err
	}
	return project, nil
}

// BuildProjectStub constructs a ProjectStub from a decoded JSON object.
func BuildProjectStub(data map[string]any) (ProjectStub, error) {
	stub, err := buildProjectStub(data)
	if err != nil {
		return ProjectStub{}, buildError("ProjectStub", data, err)
	}
	return stub, nil
}

func buildProjectStub(data map[string]any) (ProjectStub, error) {
	raw := newRawObject(data)
	stub := ProjectStub{
		ID:               raw.integer("id"),
		UUID:             raw.uuid("uuid"),
		CreatedAt:        raw.str("createdAt"),
		UpdatedAt:        raw.str("updatedAt"),
		State:            raw.state("state"),
		OwnerID:          raw.integer("ownerId"),
		Title:            raw.str("title"),
		Description:      raw.str("description"),
		Phase:            raw.phase("phase"),
		StartingBalance:  raw.balance("startingBalance"),
		Cover:            raw.nullStr("cover"),
		Starred:          raw.optBool("starred"),
		DisplayOnProfile: raw.optBool("displayOnProfile"),
	}
	if raw.err != nil {
		return ProjectStub{}, raw.err
	}
	return stub, nil
}
