package labs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/unilabs/labplatform/pkg/repo"
)

// Client talks to the labs service over its REST surface. Lookups are
// best-effort: callers decide whether a miss is fatal.
type Client struct {
	http *resty.Client
}

func New(addr string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(addr).
			SetTimeout(5 * time.Second).
			SetRetryCount(0),
	}
}

type equipoResp struct {
	Data *repo.EquipoInfo `json:"data"`
}

func (c *Client) GetEquipo(ctx context.Context, id int64) (*repo.EquipoInfo, error) {
	result := &equipoResp{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(result).
		Get(fmt.Sprintf("/equipos/%d", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("labs service answered %d for equipo %d", resp.StatusCode(), id)
	}
	if result.Data == nil {
		return nil, fmt.Errorf("labs service returned empty payload for equipo %d", id)
	}
	return result.Data, nil
}
