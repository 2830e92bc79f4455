// Package api implements the HTTP client for the public Dragon Ball API
// (https://dragonball-api.com/api). List endpoints return a paginated
// envelope; detail endpoints return the raw object. The client normalizes
// both into the resource model.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/waylonwalker/senzu/internal/config"
	"github.com/waylonwalker/senzu/internal/errors"
	"github.com/waylonwalker/senzu/internal/resource"
)

// Client talks to the Dragon Ball API.
type Client struct {
	baseURL    string
	language   string
	pageSize   int
	httpClient *http.Client
}

// NewClient creates a client from config.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		pageSize: cfg.PageSize,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	}
}

// FetchList fetches one page of summaries for the kind. page is 0-based;
// the upstream API counts pages from 1.
func (c *Client) FetchList(ctx context.Context, kind resource.Kind, page int) (*resource.ListPage, error) {
	if !kind.Valid() {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown kind %v", kind))
	}
	if page < 0 {
		return nil, errors.NewInvalidRequest("page must not be negative")
	}

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, kind.Endpoint(), url.Values{
		"page":     {strconv.Itoa(page + 1)},
		"limit":    {strconv.Itoa(c.pageSize)},
		"language": {c.language},
	}.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.NewDecodeFailed(err)
	}

	result := &resource.ListPage{
		Kind:       kind,
		Page:       page,
		TotalItems: envelope.Meta.TotalItems,
		TotalPages: envelope.Meta.TotalPages,
	}
	for _, raw := range envelope.Items {
		summary, err := decodeSummary(kind, raw)
		if err != nil {
			return nil, errors.NewDecodeFailed(err)
		}
		result.Items = append(result.Items, summary)
	}
	return result, nil
}

// FetchDetail fetches the full record for a ref.
func (c *Client) FetchDetail(ctx context.Context, ref resource.Ref) (*resource.Record, error) {
	if !ref.Kind.Valid() {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown kind %v", ref.Kind))
	}

	u := fmt.Sprintf("%s/%s/%d?language=%s", c.baseURL, ref.Kind.Endpoint(), ref.ID, url.QueryEscape(c.language))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	rec, err := decodeRecord(ref.Kind, body)
	if err != nil {
		return nil, errors.NewDecodeFailed(err)
	}
	return rec, nil
}

// FetchTransformations fetches the transformations of one character as a
// single-page list. The endpoint returns a plain array, not the paginated
// envelope.
func (c *Client) FetchTransformations(ctx context.Context, characterID int) (*resource.ListPage, error) {
	u := fmt.Sprintf("%s/characters/%d/transformations?language=%s", c.baseURL, characterID, url.QueryEscape(c.language))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		// Some deployments wrap the array in the list envelope
		var envelope listEnvelope
		if envErr := json.Unmarshal(body, &envelope); envErr != nil {
			return nil, errors.NewDecodeFailed(err)
		}
		items = envelope.Items
	}

	result := &resource.ListPage{
		Kind:       resource.Transformation,
		Page:       0,
		TotalItems: len(items),
		TotalPages: 1,
	}
	for _, raw := range items {
		summary, err := decodeSummary(resource.Transformation, raw)
		if err != nil {
			return nil, errors.NewDecodeFailed(err)
		}
		result.Items = append(result.Items, summary)
	}
	return result, nil
}

// get performs a GET request and returns the response body, mapping
// transport and status failures to structured errors.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFound(u)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUpstreamStatus(resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstreamUnavailable(err)
	}
	return body, nil
}
