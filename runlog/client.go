package runlog

import (
	"context"
	"fmt"

	"github.com/calvinmclean/babyapi"

	"github.com/calvinmclean/pushpull"
)

type Client struct {
	client *babyapi.Client[*Run]
}

func NewClient(addr string) *Client {
	return &Client{client: babyapi.NewClient[*Run](addr, "/runs")}
}

// Record posts a completed run and returns its ID
func (c *Client) Record(ctx context.Context, run pushpull.Run) (string, error) {
	resp, err := c.client.Post(ctx, &Run{Run: run})
	if err != nil {
		return "", fmt.Errorf("error posting run: %w", err)
	}
	return resp.Data.GetID(), nil
}

// Get fetches a run by ID
func (c *Client) Get(ctx context.Context, id string) (*Run, error) {
	resp, err := c.client.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting run: %w", err)
	}
	return resp.Data, nil
}
