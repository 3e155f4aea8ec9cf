// Package hub talks to the game hub HTTP API that serves the catalog.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hberge/lobby/internal/criteria"
)

// CatalogFetcher defines the interface for fetching catalog data.
// This interface is implemented by *Client and can be used for testing.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context, query criteria.Query) (CatalogPage, error)
	FetchProviders(ctx context.Context) ([]Provider, error)
}

// Ensure Client implements CatalogFetcher at compile time.
var _ CatalogFetcher = (*Client)(nil)

// Client talks to the hub HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8640"
	defaultUserAgent = "lobby/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCatalog retrieves one page of catalog results for the given query.
// The client never retries; the caller decides whether to reissue the same
// query.
func (c *Client) FetchCatalog(ctx context.Context, query criteria.Query) (CatalogPage, error) {
	if c == nil {
		return CatalogPage{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if text := strings.TrimSpace(query.Search); text != "" {
		values.Set(criteria.ParamSearch, text)
	}
	if query.Scope != "" && query.Scope != criteria.ScopeAll {
		values.Set(criteria.ParamScope, string(query.Scope))
	}
	if len(query.Providers) > 0 {
		values.Set(criteria.ParamProviders, strings.Join(query.Providers, ","))
	}
	if len(query.Types) > 0 {
		values.Set(criteria.ParamTypes, strings.Join(query.Types, ","))
	}
	if len(query.Tags) > 0 {
		values.Set(criteria.ParamTags, strings.Join(query.Tags, ","))
	}
	if query.Sort != "" {
		values.Set(criteria.ParamSort, string(query.Sort))
	}
	if query.FavoritesOnly {
		values.Set(criteria.ParamFavorites, "true")
	}
	if query.NewOnly {
		values.Set(criteria.ParamNew, "true")
	}
	if query.HotOnly {
		values.Set(criteria.ParamHot, "true")
	}
	if query.ComingSoonOnly {
		values.Set(criteria.ParamComingSoon, "true")
	}
	if query.RTPMin >= 0 {
		values.Set(criteria.ParamRTPMin, strconv.FormatFloat(query.RTPMin, 'f', -1, 64))
	}
	if query.RTPMax >= 0 {
		values.Set(criteria.ParamRTPMax, strconv.FormatFloat(query.RTPMax, 'f', -1, 64))
	}
	// Pagination always travels with the request.
	values.Set(criteria.ParamPage, strconv.Itoa(query.Page))
	values.Set(criteria.ParamPageSize, strconv.Itoa(query.PageSize))

	rel := &url.URL{Path: "/api/catalog", RawQuery: values.Encode()}
	var payload CatalogPage
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return CatalogPage{}, err
	}
	return payload, nil
}

// FetchProviders retrieves the studio list for the filter panel.
func (c *Client) FetchProviders(ctx context.Context) ([]Provider, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload ProviderListResponse
	if err := c.do(ctx, http.MethodGet, "/api/providers", &payload); err != nil {
		return nil, err
	}
	return payload.Providers, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
