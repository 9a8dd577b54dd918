// Package notion is the content source adapter: it fetches pages and
// blocks from the Notion API, maps database properties onto the site's
// domain records, and converts raw blocks into content.Block values.
// Fetch failures are logged and surfaced as empty results so pages
// render as "no content" instead of erroring.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const apiVersion = "2022-06-28"

const blockPageSize = 100

// Client is a minimal Notion API client covering database queries and
// block-children listing.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient returns a Client authenticated with apiKey. An empty key
// yields an unconfigured client whose callers fall back to local
// content.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.notion.com/v1",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the client has an API key to send.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("notion: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("notion: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notion: %s %s: status %d: %s", method, path, resp.StatusCode, detail)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: decode %s: %w", path, err)
	}
	return nil
}

// query is the body of a databases/{id}/query call.
type query struct {
	Filter   any    `json:"filter,omitempty"`
	Sorts    []sort `json:"sorts,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

type sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

func selectEquals(property, value string) map[string]any {
	return map[string]any{"property": property, "select": map[string]any{"equals": value}}
}

func richTextEquals(property, value string) map[string]any {
	return map[string]any{"property": property, "rich_text": map[string]any{"equals": value}}
}

func checkboxEquals(property string, value bool) map[string]any {
	return map[string]any{"property": property, "checkbox": map[string]any{"equals": value}}
}

// allOf collapses a filter list: a single filter stands alone, several
// combine under "and".
func allOf(filters ...map[string]any) any {
	if len(filters) == 1 {
		return filters[0]
	}
	return map[string]any{"and": filters}
}

type queryResponse struct {
	Results    []page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

func (c *Client) queryDatabase(ctx context.Context, databaseID string, q query) (queryResponse, error) {
	var resp queryResponse
	err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", q, &resp)
	return resp, err
}

type blockChildrenResponse struct {
	Results    []rawBlock `json:"results"`
	HasMore    bool       `json:"has_more"`
	NextCursor string     `json:"next_cursor"`
}

func (c *Client) blockChildren(ctx context.Context, blockID, cursor string) (blockChildrenResponse, error) {
	params := url.Values{"page_size": {fmt.Sprint(blockPageSize)}}
	if cursor != "" {
		params.Set("start_cursor", cursor)
	}
	var resp blockChildrenResponse
	err := c.do(ctx, http.MethodGet, "/blocks/"+blockID+"/children?"+params.Encode(), nil, &resp)
	return resp, err
}

// AllBlocks lists every block under pageID, following pagination
// cursors and descending into blocks that have children. Children are
// appended after their parent, preserving document order within each
// level.
func (c *Client) AllBlocks(ctx context.Context, pageID string) ([]rawBlock, error) {
	var all []rawBlock
	var walk func(blockID string) error
	walk = func(blockID string) error {
		cursor := ""
		for {
			resp, err := c.blockChildren(ctx, blockID, cursor)
			if err != nil {
				return err
			}
			for _, b := range resp.Results {
				all = append(all, b)
				if b.HasChildren {
					if err := walk(b.ID); err != nil {
						return err
					}
				}
			}
			if !resp.HasMore || resp.NextCursor == "" {
				return nil
			}
			cursor = resp.NextCursor
		}
	}
	if err := walk(pageID); err != nil {
		return nil, err
	}
	return all, nil
}
