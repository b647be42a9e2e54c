package trackbear

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/quillhq/trackbear-go/enums"
)

func TestTagList(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successListBody(tagJSON, 2)))

	tags, err := client.Tags.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
	if tags[0].Name != "Pure Awesome" {
		t.Errorf("Name = %q, want Pure Awesome", tags[0].Name)
	}
	if tags[0].Color != enums.ColorRed {
		t.Errorf("Color = %q, want %q", tags[0].Color, enums.ColorRed)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/api/v1/tag" {
		t.Errorf("request = %s %s, want GET /api/v1/tag", req.Method, req.Path)
	}
}

func TestTagGet(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(tagJSON)))

	tag, err := client.Tags.Get(context.Background(), 123)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if tag.ID != 123 {
		t.Errorf("ID = %d, want 123", tag.ID)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/api/v1/tag/123" {
		t.Errorf("request = %s %s, want GET /api/v1/tag/123", req.Method, req.Path)
	}
}

func TestTagGetFailure(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusNotFound, failureJSON))

	_, err := client.Tags.Get(context.Background(), 999)
	var apiErr *APIResponseError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIResponseError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}

func TestTagSaveCreate(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(tagJSON)))

	tag, err := client.Tags.Save(context.Background(), TagParams{Name: "Pure Awesome", Color: enums.ColorRed})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if tag.Name != "Pure Awesome" {
		t.Errorf("Name = %q, want Pure Awesome", tag.Name)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/tag" {
		t.Fatalf("request = %s %s, want POST /api/v1/tag", req.Method, req.Path)
	}

	var payload map[string]any
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	want := map[string]any{"name": "Pure Awesome", "color": "red"}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload = %#v, want %#v", payload, want)
	}
}

func TestTagSaveUpdate(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(tagJSON)))

	_, err := client.Tags.Save(context.Background(), TagParams{TagID: 123, Name: "Renamed", Color: enums.ColorBlue})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPatch || req.Path != "/api/v1/tag/123" {
		t.Errorf("request = %s %s, want PATCH /api/v1/tag/123", req.Method, req.Path)
	}
}

func TestTagSaveInvalidColor(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(tagJSON)))

	_, err := client.Tags.Save(context.Background(), TagParams{Name: "x", Color: "chartreuse"})
	var invalidErr *enums.InvalidValueError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want *enums.InvalidValueError", err)
	}
	if len(*requests) != 0 {
		t.Errorf("server saw %d requests, want 0", len(*requests))
	}
}

func TestTagDelete(t *testing.T) {
	client, requests := newTestClient(t, jsonHandler(http.StatusOK, successBody(tagJSON)))

	tag, err := client.Tags.Delete(context.Background(), 123)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if tag.ID != 123 {
		t.Errorf("ID = %d, want 123", tag.ID)
	}

	req := (*requests)[0]
	if req.Method != http.MethodDelete || req.Path != "/api/v1/tag/123" {
		t.Errorf("request = %s %s, want DELETE /api/v1/tag/123", req.Method, req.Path)
	}
}
