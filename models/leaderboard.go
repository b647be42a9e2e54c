package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quillhq/trackbear-go/enums"
)

// LeaderboardMember is a participant listing on a board.
type LeaderboardMember struct {
	ID            int       `json:"id"`
	UUID          uuid.UUID `json:"uuid"`
	DisplayName   string    `json:"displayName"`
	Avatar        *string   `json:"avatar"`
	IsOwner       bool      `json:"isOwner"`
	IsParticipant bool      `json:"isParticipant"`
	TeamID        *int      `json:"teamId"`
}

// LeaderboardTeam is a team listing on a board.
type LeaderboardTeam struct {
	ID    int         `json:"id"`
	UUID  uuid.UUID   `json:"uuid"`
	Name  string      `json:"name"`
	Color enums.Color `json:"color"`
}

// LeaderboardMemberExtended is a member listing enriched with computed totals.
type LeaderboardMemberExtended struct {
	LeaderboardMember
	Totals Balance `json:"totals"`
}

// LeaderboardTeamExtended is a team listing enriched with computed totals.
type LeaderboardTeamExtended struct {
	LeaderboardTeam
	Totals Balance `json:"totals"`
}

// Leaderboard is a shared progress board with its member and team listings.
// Boards are read-only through the API.
type Leaderboard struct {
	ID                 int                 `json:"id"`
	UUID               uuid.UUID           `json:"uuid"`
	CreatedAt          string              `json:"createdAt"`
	UpdatedAt          string              `json:"updatedAt"`
	State              enums.State         `json:"state"`
	OwnerID            int                 `json:"ownerId"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Measures           []enums.Measure     `json:"measures"`
	StartDate          *string             `json:"startDate"`
	EndDate            *string             `json:"endDate"`
	IndividualGoalMode bool                `json:"individualGoalMode"`
	FundraiserMode     bool                `json:"fundraiserMode"`
	IsJoinable         bool                `json:"isJoinable"`
	IsPublic           bool                `json:"isPublic"`
	JoinCode           string              `json:"joinCode"`
	Members            []LeaderboardMember `json:"members"`
	Teams              []LeaderboardTeam   `json:"teams"`
}

// LeaderboardExtended is the list-endpoint shape of a board, with every
// member and team enriched by computed totals.
type LeaderboardExtended struct {
	ID                 int                         `json:"id"`
	UUID               uuid.UUID                   `json:"uuid"`
	CreatedAt          string                      `json:"createdAt"`
	UpdatedAt          string                      `json:"updatedAt"`
	State              enums.State                 `json:"state"`
	OwnerID            int                         `json:"ownerId"`
	Title              string                      `json:"title"`
	Description        string                      `json:"description"`
	Measures           []enums.Measure             `json:"measures"`
	StartDate          *string                     `json:"startDate"`
	EndDate            *string                     `json:"endDate"`
	IndividualGoalMode bool                        `json:"individualGoalMode"`
	FundraiserMode     bool                        `json:"fundraiserMode"`
	IsJoinable         bool                        `json:"isJoinable"`
	IsPublic           bool                        `json:"isPublic"`
	JoinCode           string                      `json:"joinCode"`
	Members            []LeaderboardMemberExtended `json:"members"`
	Teams              []LeaderboardTeamExtended   `json:"teams"`
}

// BuildLeaderboard constructs a Leaderboard from a decoded JSON object.
func BuildLeaderboard(data map[string]any) (Leaderboard, error) {
	board, err := buildLeaderboard(data)
	if err != nil {
		return Leaderboard{}, buildError("Leaderboard", data, err)
	}
	return board, nil
}

func buildLeaderboard(data map[string]any) (Leaderboard, error) {
	raw := newRawObject(data)
	board := Leaderboard{
		ID:                 raw.integer("id"),
		UUID:               raw.uuid("uuid"),
		CreatedAt:          raw.str("createdAt"),
		UpdatedAt:          raw.str("updatedAt"),
		State:              raw.state("state"),
		OwnerID:            raw.integer("ownerId"),
		Title:              raw.str("title"),
		Description:        raw.str("description"),
		Measures:           raw.measures("measures"),
		StartDate:          raw.nullStr("startDate"),
		EndDate:            raw.nullStr("endDate"),
		IndividualGoalMode: raw.boolean("individualGoalMode"),
		FundraiserMode:     raw.boolean("fundraiserMode"),
		IsJoinable:         raw.boolean("isJoinable"),
		IsPublic:           raw.boolean("isPublic"),
		JoinCode:           raw.str("joinCode"),
	}
	memberList := raw.list("members")
	teamList := raw.list("teams")
	if raw.err != nil {
		return Leaderboard{}, raw.err
	}

	board.Members = make([]LeaderboardMember, 0, len(memberList))
	for i, item := range memberList {
		memberData, ok := item.(map[string]any)
		if !ok {
			return Leaderboard{}, fmt.Errorf("key %q[%d]: expected object, got %T", "members", i, item)
		}
		member, err := buildLeaderboardMember(memberData)
		if err != nil {
			return Leaderboard{}, fmt.Errorf("key %q[%d]: %w", "members", i, err)
		}
		board.Members = append(board.Members, member)
	}

	board.Teams = make([]LeaderboardTeam, 0, len(teamList))
	for i, item := range teamList {
		teamData, ok := item.(map[string]any)
		if !ok {
			return Leaderboard{}, fmt.Errorf("key %q[%d]: expected object, got %T", "teams", i, item)
		}
		team, err := buildLeaderboardTeam(teamData)
		if err != nil {
			return Leaderboard{}, fmt.Errorf("key %q[%d]: %w", "teams", i, err)
		}
		board.Teams = append(board.Teams, team)
	}
	return board, nil
}

// BuildLeaderboardExtended constructs a LeaderboardExtended from a decoded
// JSON object.
func BuildLeaderboardExtended(data map[string]any) (LeaderboardExtended, error) {
	board, err := buildLeaderboardExtended(data)
	if err != nil {
		return LeaderboardExtended{}, buildError("LeaderboardExtended", data, err)
	}
	return board, nil
}

func buildLeaderboardExtended(data map[string]any) (LeaderboardExtended, error) {
	raw := newRawObject(data)
	board := LeaderboardExtended{
		ID:                 raw.integer("id"),
		UUID:               raw.uuid("uuid"),
		CreatedAt:          raw.str("createdAt"),
		UpdatedAt:          raw.str("updatedAt"),
		State:              raw.state("state"),
		OwnerID:            raw.integer("ownerId"),
		Title:              raw.str("title"),
		Description:        raw.str("description"),
		Measures:           raw.measures("measures"),
		StartDate:          raw.nullStr("startDate"),
		EndDate:            raw.nullStr("endDate"),
		IndividualGoalMode: raw.boolean("individualGoalMode"),
		FundraiserMode:     raw.boolean("fundraiserMode"),
		IsJoinable:         raw.boolean("isJoinable"),
		IsPublic:           raw.boolean("isPublic"),
		JoinCode:           raw.str("joinCode"),
	}
	memberList := raw.list("members")
	teamList := raw.list("teams")
	if raw.err != nil {
		return LeaderboardExtended{}, raw.err
	}

	board.Members = make([]LeaderboardMemberExtended, 0, len(memberList))
	for i, item := range memberList {
		memberData, ok := item.(map[string]any)
		if !ok {
			return LeaderboardExtended{}, fmt.Errorf("key %q[%d]: expected object, got %T", "members", i, item)
		}
		member, err := buildLeaderboardMember(memberData)
		if err != nil {
			return LeaderboardExtended{}, fmt.Errorf("key %q[%d]: %w", "members", i, err)
		}
		extendedRaw := newRawObject(memberData)
		extended := LeaderboardMemberExtended{
			LeaderboardMember: member,
			Totals:            extendedRaw.balance("totals"),
		}
		if extendedRaw.err != nil {
			return LeaderboardExtended{}, fmt.Errorf("key %q[%d]: %w", "members", i, extendedRaw.err)
		}
		board.Members = append(board.Members, extended)
	}

	board.Teams = make([]LeaderboardTeamExtended, 0, len(teamList))
	for i, item := range teamList {
		teamData, ok := item.(map[string]any)
		if !ok {
			return LeaderboardExtended{}, fmt.Errorf("key %q[%d]: expected object, got %T", "teams", i, item)
		}
		team, err := buildLeaderboardTeam(teamData)
		if err != nil {
			return LeaderboardExtended{}, fmt.Errorf("key %q[%d]: %w", "teams", i, err)
		}
		extendedRaw := newRawObject(teamData)
		extended := LeaderboardTeamExtended{
			LeaderboardTeam: team,
			Totals:          extendedRaw.balance("totals"),
		}
		if extendedRaw.err != nil {
			return LeaderboardExtended{}, fmt.Errorf("key %q[%d]: %w", "teams", i, extendedRaw.err)
		}
		board.Teams = append(board.Teams, extended)
	}
	return board, nil
}

func buildLeaderboardMember(data map[string]any) (LeaderboardMember, error) {
	raw := newRawObject(data)
	member := LeaderboardMember{
		ID:            raw.integer("id"),
		UUID:          raw.uuid("uuid"),
		DisplayName:   raw.str("displayName"),
		Avatar:        raw.nullStr("avatar"),
		IsOwner:       raw.boolean("isOwner"),
		IsParticipant: raw.boolean("isParticipant"),
		TeamID:        raw.nullInt("teamId"),
	}
	if raw.err != nil {
		return LeaderboardMember{}, raw.err
	}
	return member, nil
}

func buildLeaderboardTeam(data map[string]any) (LeaderboardTeam, error) {
	raw := newRawObject(data)
	team := LeaderboardTeam{
		ID:    raw.integer("id"),
		UUID:  raw.uuid("uuid"),
		Name:  raw.str("name"),
		Color: raw.color("color"),
	}
	if raw.err != nil {
		return LeaderboardTeam{}, raw.err
	}
	return team, nil
}
