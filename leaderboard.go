package trackbear

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillhq/trackbear-go/models"
)

// LeaderboardClient reads the /leaderboard resource collection. Boards are
// read-only through the API; joining and management happen in the web app.
type LeaderboardClient struct {
	api *apiClient
}

// List retrieves all leaderboards with members and teams enriched by
// computed totals.
func (c *LeaderboardClient) List(ctx context.Context) ([]models.LeaderboardExtended, error) {
	resp, err := c.api.get(ctx, "/leaderboard", nil)
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
	boards := make([]models.LeaderboardExtended, 0, len(items))
	for _, item := range items {
		board, err := models.BuildLeaderboardExtended(item)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

// Get retrieves one leaderboard by its UUID. Boards are the one collection
// addressed by UUID rather than numeric id.
func (c *LeaderboardClient) Get(ctx context.Context, boardUUID uuid.UUID) (models.Leaderboard, error) {
	return c.fetch(ctx, "/leaderboard/"+boardUUID.String())
}

// GetByJoinCode retrieves one leaderboard by its public join code. This is a
// distinct collection path, not an overload of Get.
func (c *LeaderboardClient) GetByJoinCode(ctx context.Context, joinCode string) (models.Leaderboard, error) {
	return c.fetch(ctx, "/leaderboard/joincode/"+joinCode)
}

func (c *LeaderboardClient) fetch(ctx context.Context, path string) (models.Leaderboard, error) {
	resp, err := c.api.get(ctx, path, nil)
	if err != nil {
		return models.Leaderboard{}, err
	}
	if err := resp.apiErr(); err != nil {
		return models.Leaderboard{}, err
	}
	data, err := decodeObject(resp.Data)
	if err != nil {
		return models.Leaderboard{}, err
	}
	return models.BuildLeaderboard(data)
}
