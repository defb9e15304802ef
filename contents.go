package exa

import (
	"context"
	"fmt"
)

// Contents is the content-shaping block accepted by search and
// findSimilar requests: how much of each matched document's text,
// highlights, and summary comes back with the results.
type Contents struct {
	Text       *TextOptions      `json:"text,omitempty"`
	Highlights *HighlightOptions `json:"highlights,omitempty"`
	Summary    *SummaryOptions   `json:"summary,omitempty"`
}

type TextOptions struct {
	// MaxCharacters caps the extracted text length.
	MaxCharacters *int `json:"maxCharacters,omitempty"`
	// IncludeHTMLTags keeps structural tags in the text. Default false.
	IncludeHTMLTags *bool `json:"includeHtmlTags,omitempty"`
}

type HighlightOptions struct {
	// NumSentences per snippet. Default 5.
	NumSentences *int `json:"numSentences,omitempty"`
	// HighlightsPerURL is the number of snippets per page. Default 1.
	HighlightsPerURL *int `json:"highlightsPerUrl,omitempty"`
	// Query targets snippets most relevant to it; defaults to the
	// search query server-side.
	Query *string `json:"query,omitempty"`
}

type SummaryOptions struct {
	// Query, when set, asks the summary to answer it.
	Query *string `json:"query,omitempty"`
}

// ContentsRequest is the payload for POST /contents: page contents for
// result IDs returned by a previous search or findSimilar call.
type ContentsRequest struct {
	IDs        []string          `json:"ids"`
	Text       *TextOptions      `json:"text,omitempty"`
	Highlights *HighlightOptions `json:"highlights,omitempty"`
	Summary    *SummaryOptions   `json:"summary,omitempty"`
}

type ContentsResponse struct {
	Results []Content `json:"results"`
}

// Content is one retrieved document body.
type Content struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	Title           string    `json:"title"`
	Text            *string   `json:"text,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	HighlightScores []float64 `json:"highlightScores,omitempty"`
}

func (r *ContentsResponse) validate() error {
	for i, c := range r.Results {
		if c.ID == "" || c.URL == "" || c.Title == "" {
			return fmt.Errorf("result %d: missing required field", i)
		}
	}
	return nil
}

// GetContents retrieves the contents of documents by their result IDs.
func (c *Client) GetContents(ctx context.Context, req ContentsRequest) (*ContentsResponse, error) {
	return post[ContentsRequest, ContentsResponse](ctx, c, "/contents", req)
}
