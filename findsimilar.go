package exa

import (
	"context"
	"fmt"
	"net/url"
)

// FindSimilarRequest is the payload for POST /findSimilar: the same
// optional filters as search, minus the query and kind, keyed on a
// target URL instead.
type FindSimilarRequest struct {
	URL                string    `json:"url"`
	NumResults         *int      `json:"numResults,omitempty"`
	IncludeDomains     []string  `json:"includeDomains,omitempty"`
	ExcludeDomains     []string  `json:"excludeDomains,omitempty"`
	StartCrawlDate     *string   `json:"startCrawlDate,omitempty"`
	EndCrawlDate       *string   `json:"endCrawlDate,omitempty"`
	StartPublishedDate *string   `json:"startPublishedDate,omitempty"`
	EndPublishedDate   *string   `json:"endPublishedDate,omitempty"`
	IncludeText        []string  `json:"includeText,omitempty"`
	ExcludeText        []string  `json:"excludeText,omitempty"`
	Contents           *Contents `json:"contents,omitempty"`
}

type FindSimilarResponse struct {
	Results []Result `json:"results"`
}

func (r *FindSimilarResponse) validate() error {
	return validateResults(r.Results)
}

// NewFindSimilarRequest validates the target URL before any network call
// is attempted. The URL must be absolute (scheme and host present); a
// malformed input fails fast with ErrInvalidURL.
func NewFindSimilarRequest(rawURL string) (FindSimilarRequest, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return FindSimilarRequest{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return FindSimilarRequest{URL: rawURL}, nil
}

// FindSimilar retrieves documents similar to the request's target URL.
func (c *Client) FindSimilar(ctx context.Context, req FindSimilarRequest) (*FindSimilarResponse, error) {
	return post[FindSimilarRequest, FindSimilarResponse](ctx, c, "/findSimilar", req)
}
