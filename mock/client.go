// Package mock provides a recording in-memory implementation of exa.API
// for tests of code that consumes the client.
package mock

import (
	"context"
	"sync"
	"time"

	exa "github.com/kitbuilder587/exa-go"
)

type Client struct {
	SearchResult      *exa.SearchResponse
	FindSimilarResult *exa.FindSimilarResponse
	ContentsResult    *exa.ContentsResponse
	Error             error
	Delay             time.Duration

	CallCount       int
	LastSearch      exa.SearchRequest
	LastFindSimilar exa.FindSimilarRequest
	LastContents    exa.ContentsRequest

	mu sync.Mutex
}

var _ exa.API = (*Client)(nil)

func New() *Client {
	return &Client{}
}

func (c *Client) WithSearchResult(resp *exa.SearchResponse) *Client {
	c.SearchResult = resp
	return c
}

func (c *Client) WithFindSimilarResult(resp *exa.FindSimilarResponse) *Client {
	c.FindSimilarResult = resp
	return c
}

func (c *Client) WithContentsResult(resp *exa.ContentsResponse) *Client {
	c.ContentsResult = resp
	return c
}

func (c *Client) WithError(err error) *Client {
	c.Error = err
	return c
}

func (c *Client) WithDelay(delay time.Duration) *Client {
	c.Delay = delay
	return c
}

func (c *Client) Search(ctx context.Context, req exa.SearchRequest) (*exa.SearchResponse, error) {
	c.mu.Lock()
	c.CallCount++
	c.LastSearch = req
	resp := c.SearchResult
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = &exa.SearchResponse{}
	}
	return resp, nil
}

func (c *Client) FindSimilar(ctx context.Context, req exa.FindSimilarRequest) (*exa.FindSimilarResponse, error) {
	c.mu.Lock()
	c.CallCount++
	c.LastFindSimilar = req
	resp := c.FindSimilarResult
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = &exa.FindSimilarResponse{}
	}
	return resp, nil
}

func (c *Client) GetContents(ctx context.Context, req exa.ContentsRequest) (*exa.ContentsResponse, error) {
	c.mu.Lock()
	c.CallCount++
	c.LastContents = req
	resp := c.ContentsResult
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = &exa.ContentsResponse{}
	}
	return resp, nil
}

func (c *Client) wait(ctx context.Context) error {
	c.mu.Lock()
	delay := c.Delay
	err := c.Error
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CallCount = 0
	c.LastSearch = exa.SearchRequest{}
	c.LastFindSimilar = exa.FindSimilarRequest{}
	c.LastContents = exa.ContentsRequest{}
}
