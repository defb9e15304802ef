package exa

import (
	"context"
	"fmt"
)

// SearchKind selects the retrieval strategy for a search.
type SearchKind string

const (
	SearchKindNeural  SearchKind = "neural"
	SearchKindKeyword SearchKind = "keyword"
	SearchKindAuto    SearchKind = "auto"
)

// SearchRequest is the payload for POST /search. Only Query is required;
// unset optional fields are omitted from the wire payload entirely.
type SearchRequest struct {
	Query string `json:"query"`
	// UseAutoprompt lets the API expand the query before searching.
	UseAutoprompt *bool       `json:"useAutoprompt,omitempty"`
	Kind          *SearchKind `json:"type,omitempty"`
	// NumResults defaults to 10 server-side, max 100.
	NumResults     *int     `json:"numResults,omitempty"`
	IncludeText    []string `json:"includeText,omitempty"`
	ExcludeText    []string `json:"excludeText,omitempty"`
	IncludeDomains []string `json:"includeDomains,omitempty"`
	ExcludeDomains []string `json:"excludeDomains,omitempty"`
	// Crawl/publish date bounds, ISO 8601.
	StartCrawlDate     *string   `json:"startCrawlDate,omitempty"`
	EndCrawlDate       *string   `json:"endCrawlDate,omitempty"`
	StartPublishedDate *string   `json:"startPublishedDate,omitempty"`
	EndPublishedDate   *string   `json:"endPublishedDate,omitempty"`
	Contents           *Contents `json:"contents,omitempty"`
}

type SearchResponse struct {
	Results []Result `json:"results"`
	// AutopromptString is the expanded query when autoprompt was used.
	AutopromptString *string `json:"autopromptString,omitempty"`
	// AutoDate is the date filter inferred from the query by autoprompt.
	AutoDate *string `json:"autoDate,omitempty"`
}

// Result is one matched document, shared by search and findSimilar.
type Result struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Score         float64 `json:"score"`
	PublishedDate *string `json:"publishedDate,omitempty"`
	Author        *string `json:"author,omitempty"`
	Text          *string `json:"text,omitempty"`
	// Highlights and HighlightScores are parallel slices.
	Highlights      []string  `json:"highlights,omitempty"`
	HighlightScores []float64 `json:"highlightScores,omitempty"`
}

func (r *SearchResponse) validate() error {
	return validateResults(r.Results)
}

func validateResults(results []Result) error {
	for i, r := range results {
		if r.ID == "" || r.Title == "" || r.URL == "" {
			return fmt.Errorf("result %d: missing required field", i)
		}
	}
	return nil
}

// Search performs a query against POST /search. The decoded response is
// returned as-is; an empty result list is a valid outcome, not an error.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	return post[SearchRequest, SearchResponse](ctx, c, "/search", req)
}
