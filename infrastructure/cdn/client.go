// Package cdn downloads the game data export
package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gorgonzola/application/ports"
	"gorgonzola/domain/dump"
	pkgerrors "gorgonzola/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Client fetches the export files from the CDN
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

var _ ports.GameDataSource = (*Client)(nil)

// filesPerFetch is how many files one Fetch requests concurrently
const filesPerFetch = 5

const breakerOpenTimeout = 30 * time.Second

// NewClient creates a CDN client. httpClient may be nil; a traced client is
// passed in when X-Ray is enabled.
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		timeout: timeout,
		logger:  logger,
	}
	c.breaker = newBreaker(breakerOpenTimeout, logger)
	return c
}

// newBreaker trips after three consecutive failures. Half-open admits a
// whole Fetch worth of requests, since every file is requested at once.
func newBreaker(openTimeout time.Duration, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gorgon-cdn",
		MaxRequests: filesPerFetch,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// Fetch downloads every export file concurrently. Any failure fails the whole fetch.
func (c *Client) Fetch(ctx context.Context) (*dump.Dump, error) {
	d := &dump.Dump{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.fetchJSON(ctx, dump.ItemsFile, &d.Items) })
	g.Go(func() error { return c.fetchJSON(ctx, dump.RecipesFile, &d.Recipes) })
	g.Go(func() error { return c.fetchJSON(ctx, dump.NPCsFile, &d.NPCs) })
	g.Go(func() error { return c.fetchJSON(ctx, dump.QuestsFile, &d.Quests) })
	g.Go(func() error { return c.fetchJSON(ctx, dump.ItemSourcesFile, &d.ItemSources) })

	if err := g.Wait(); err != nil {
		return nil, pkgerrors.NewExternalError("gorgon-cdn", err)
	}

	c.logger.Info("Fetched game data",
		zap.String("baseURL", c.baseURL),
		zap.Int("items", len(d.Items)),
		zap.Int("recipes", len(d.Recipes)),
		zap.Int("npcs", len(d.NPCs)),
		zap.Int("quests", len(d.Quests)),
		zap.Int("itemSources", len(d.ItemSources)),
	)
	return d, nil
}

func (c *Client) fetchJSON(ctx context.Context, file string, out interface{}) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.get(ctx, file, out)
	})
	if err != nil {
		return fmt.Errorf("fetch %s: %w", file, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, file string, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := c.baseURL + "/" + file
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	return nil
}
