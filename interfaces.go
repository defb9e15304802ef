package exa

import "context"

// API is the operation surface of the Exa client. Client implements it;
// mock.Client provides a recording test double for consumers.
type API interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	FindSimilar(ctx context.Context, req FindSimilarRequest) (*FindSimilarResponse, error)
	GetContents(ctx context.Context, req ContentsRequest) (*ContentsResponse, error)
}

var _ API = (*Client)(nil)
