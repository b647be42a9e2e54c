package models

import (
	"github.com/google/uuid"

	"github.com/quillhq/trackbear-go/enums"
)

// Tag is a named, colored label attached to tallies.
type Tag struct {
	ID        int         `json:"id"`
	UUID      uuid.UUID   `json:"uuid"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	State     enums.State `json:"state"`
	OwnerID   int         `json:"ownerId"`
	Name      string      `json:"name"`
	Color     enums.Color `json:"color"`
}

// BuildTag constructs a Tag from a decoded JSON object.
func BuildTag(data map[string]any) (Tag, error) {
	tag, err := buildTag(data)
	if err != nil {
		return Tag{}, buildError("Tag", data, err)
	}
	return tag, nil
}

func buildTag(data map[string]any) (Tag, error) {
	raw := newRawObject(data)
	tag := Tag{
		ID:        raw.integer("id"),
		UUID:      raw.uuid("uuid"),
		CreatedAt: raw.str("createdAt"),
		UpdatedAt: raw.str("updatedAt"),
		State:     raw.state("state"),
		OwnerID:   raw.integer("ownerId"),
		Name:      raw.str("name"),
		Color:     raw.color("color"),
	}
	if raw.err != nil {
		return Tag{}, raw.err
	}
	return tag, nil
}
