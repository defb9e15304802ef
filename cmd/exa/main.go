// Command exa runs a search from the command line and hydrates the top
// results: page contents and similar pages are fetched concurrently once
// the search returns.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	exa "github.com/kitbuilder587/exa-go"
	"github.com/kitbuilder587/exa-go/internal/config"
	"github.com/kitbuilder587/exa-go/metrics"
)

func main() {
	numResults := flag.Int("n", 5, "number of search results")
	withContents := flag.Bool("contents", false, "fetch page text for each result")
	withSimilar := flag.Bool("similar", false, "find pages similar to the top result")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: exa [flags] <query>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	query := strings.Join(flag.Args(), " ")

	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger, query, *numResults, *withContents, *withSimilar); err != nil {
		logger.Fatal("exa failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, query string, numResults int, withContents, withSimilar bool) error {
	var observer exa.Observer
	if cfg.Metrics.Addr != "" {
		m := metrics.New()
		observer = m
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, m.Handler()); err != nil {
				logger.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	client, err := exa.New(exa.Config{
		APIKey:   cfg.Exa.APIKey,
		BaseURL:  cfg.Exa.BaseURL,
		Timeout:  cfg.Exa.Timeout,
		Observer: observer,
	}, logger)
	if err != nil {
		return err
	}

	resp, err := client.Search(ctx, exa.SearchRequest{
		Query:      query,
		NumResults: exa.Int(numResults),
	})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if resp.AutopromptString != nil {
		fmt.Printf("expanded query: %s\n\n", *resp.AutopromptString)
	}
	for i, r := range resp.Results {
		fmt.Printf("%d. %s (%.3f)\n   %s\n", i+1, r.Title, r.Score, r.URL)
	}

	if len(resp.Results) == 0 || (!withContents && !withSimilar) {
		return nil
	}

	var (
		contents *exa.ContentsResponse
		similar  *exa.FindSimilarResponse
	)
	g, ctx := errgroup.WithContext(ctx)

	if withContents {
		ids := make([]string, len(resp.Results))
		for i, r := range resp.Results {
			ids[i] = r.ID
		}
		g.Go(func() error {
			var err error
			contents, err = client.GetContents(ctx, exa.ContentsRequest{
				IDs:  ids,
				Text: &exa.TextOptions{MaxCharacters: exa.Int(500)},
			})
			if err != nil {
				return fmt.Errorf("get contents: %w", err)
			}
			return nil
		})
	}

	if withSimilar {
		req, err := exa.NewFindSimilarRequest(resp.Results[0].URL)
		if err != nil {
			return err
		}
		req.NumResults = exa.Int(numResults)
		g.Go(func() error {
			var err error
			similar, err = client.FindSimilar(ctx, req)
			if err != nil {
				return fmt.Errorf("find similar: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if contents != nil {
		fmt.Println("\ncontents:")
		for _, c := range contents.Results {
			text := ""
			if c.Text != nil {
				text = *c.Text
			}
			fmt.Printf("- %s\n  %s\n", c.Title, text)
		}
	}
	if similar != nil {
		fmt.Printf("\nsimilar to %s:\n", resp.Results[0].URL)
		for _, r := range similar.Results {
			fmt.Printf("- %s (%.3f)\n  %s\n", r.Title, r.Score, r.URL)
		}
	}
	return nil
}
