package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quillhq/trackbear-go/enums"
)

// Tally is a single progress entry. The embedded project stub and tags are
// point-in-time snapshots taken when the response was produced, not live
// references.
type Tally struct {
	ID        int           `json:"id"`
	UUID      uuid.UUID     `json:"uuid"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
	State     enums.State   `json:"state"`
	OwnerID   int           `json:"ownerId"`
	Date      string        `json:"date"`
	Measure   enums.Measure `json:"measure"`
	Count     int           `json:"count"`
	Note      string        `json:"note"`
	WorkID    int           `json:"workId"`
	Work      ProjectStub   `json:"work"`
	Tags      []Tag         `json:"tags"`
}

// BuildTally constructs a Tally from a decoded JSON object. A failure while
// building the nested project stub or a tag is reported as a single error for
// the tally.
func BuildTally(data map[string]any) (Tally, error) {
	tally, err := buildTally(data)
	if err != nil {
		return Tally{}, buildError("Tally", data, err)
	}
	return tally, nil
}

func buildTally(data map[string]any) (Tally, error) {
	raw := newRawObject(data)
	tally := Tally{
		ID:        raw.integer("id"),
		UUID:      raw.uuid("uuid"),
		CreatedAt: raw.str("createdAt"),
		UpdatedAt: raw.str("updatedAt"),
		State:     raw.state("state"),
		OwnerID:   raw.integer("ownerId"),
		Date:      raw.str("date"),
		Measure:   raw.measure("measure"),
		Count:     raw.integer("count"),
		Note:      raw.str("note"),
		WorkID:    raw.integer("workId"),
	}
	workData := raw.object("work")
	tagList := raw.list("tags")
	if raw.err != nil {
		return Tally{}, raw.err
	}

	work, err := buildProjectStub(workData)
	if err != nil {
		return Tally{}, fmt.Errorf("key %q: %w", "work", err)
	}
	tally.Work = work

	tally.Tags = make([]Tag, 0, len(tagList))
	for i, item := range tagList {
		tagData, ok := item.(map[string]any)
		if !ok {
			return Tally{}, fmt.Errorf("key %q[%d]: expected object, got %T", "tags", i, item)
		}
		tag, err := buildTag(tagData)
		if err != nil {
			return Tally{}, fmt.Errorf("key %q[%d]: %w", "tags", i, err)
		}
		tally.Tags = append(tally.Tags, tag)
	}
	return tally, nil
}
