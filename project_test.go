package trackbear

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/quillhq/trackbear-go/enums"
	"github.com/quillhq/trackbear-go/models"
)

func TestProjectList(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successListBody(projectJSON, 3)))

	projects, err := client.Projects.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("len(projects) = %d, want 3", len(projects))
	}
	if projects[0].Title != "New Project" {
		t.Errorf("Title = %q, want New Project", projects[0].Title)
	}
	if projects[0].Phase != enums.PhasePlanning {
		t.Errorf("Phase = %q, want %q", projects[0].Phase, enums.PhasePlanning)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/api/v1/project" {
		t.Errorf("request = %s %s, want GET /api/v1/project", req.Method, req.Path)
	}
}

func TestProjectListBuildFailure(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusOK, successListBody(`{"title": "incomplete"}`, 1)))

	_, err := client.Projects.List(context.Background())
	var buildErr *models.ModelBuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error = %v, want *models.ModelBuildError", err)
	}
	if buildErr.Model != "Project" {
		t.Errorf("Model = %q, want Project", buildErr.Model)
	}
}

func TestProjectListFailure(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusConflict, failureJSON))

	_, err := client.Projects.List(context.Background())
	var apiErr *APIResponseError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIResponseError", err)
	}
	want := "API Failure (409) SOME_ERROR_CODE - A human-readable error message"
	if apiErr.Error() != want {
		t.Errorf("Error() = %q, want %q", apiErr.Error(), want)
	}
}

func TestProjectGet(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(projectJSON)))

	project, err := client.Projects.Get(context.Background(), 123)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if project.ID != 123 {
		t.Errorf("ID = %d, want 123", project.ID)
	}
	if project.Totals.Word != 1667 {
		t.Errorf("Totals.Word = %d, want 1667", project.Totals.Word)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/api/v1/project/123" {
		t.Errorf("request = %s %s, want GET /api/v1/project/123", req.Method, req.Path)
	}
}

func TestProjectSaveCreate(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(projectStubJSON)))

	stub, err := client.Projects.Save(context.Background(), ProjectParams{
		Title:       "New Project",
		Description: "This is a mock project for some tests.",
		Phase:       enums.PhaseDrafting,
		Starred:     true,
		Word:        1667,
		Page:        2,
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if stub.Title != "New Project" {
		t.Errorf("Title = %q, want New Project", stub.Title)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/project" {
		t.Fatalf("request = %s %s, want POST /api/v1/project", req.Method, req.Path)
	}

	var payload map[string]any
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	want := map[string]any{
		"title":       "New Project",
		"description": "This is a mock project for some tests.",
		"phase":       "drafting",
		"startingBalance": map[string]any{
			"word": float64(1667), "time": float64(0), "page": float64(2),
			"chapter": float64(0), "scene": float64(0), "line": float64(0),
		},
		"starred":          true,
		"displayOnProfile": false,
	}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload = %#v, want %#v", payload, want)
	}
}

func TestProjectSaveUpdate(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(projectStubJSON)))

	_, err := client.Projects.Save(context.Background(), ProjectParams{
		ProjectID: 123,
		Title:     "New Project",
		Phase:     enums.PhaseRevising,
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPatch || req.Path != "/api/v1/project/123" {
		t.Errorf("request = %s %s, want PATCH /api/v1/project/123", req.Method, req.Path)
	}
}

func TestProjectSaveInvalidPhase(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(projectStubJSON)))

	_, err := client.Projects.Save(context.Background(), ProjectParams{Title: "x", Phase: "daydreaming"})
	var invalidErr *enums.InvalidValueError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want *enums.InvalidValueError", err)
	}
	if len(*requests) != 0 {
		t.Errorf("server saw %d requests, want 0", len(*requests))
	}
}

func TestProjectDelete(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(projectStubJSON)))

	stub, err := client.Projects.Delete(context.Background(), 123)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if stub.ID != 123 {
		t.Errorf("ID = %d, want 123", stub.ID)
	}

	req := (*requests)[0]
	if req.Method != http.MethodDelete || req.Path != "/api/v1/project/123" {
		t.Errorf("request = %s %s, want DELETE /api/v1/project/123", req.Method, req.Path)
	}
}
