package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
)

// restGetter is the subset of api.RESTClient the client uses
type restGetter interface {
	Get(path string, response interface{}) error
}

// Client wraps GitHub API operations
type Client struct {
	rest restGetter
}

// NewClient creates a new GitHub client using the ambient gh authentication
func NewClient() (*Client, error) {
	rest, err := api.DefaultRESTClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{rest: rest}, nil
}

// NewClientWithToken creates a GitHub client authenticated with an explicit token
func NewClientWithToken(token string) (*Client, error) {
	if token == "" {
		return NewClient()
	}

	rest, err := api.NewRESTClient(api.ClientOptions{AuthToken: token})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{rest: rest}, nil
}

// Close releases resources
func (c *Client) Close() error {
	return nil
}

// ParseRepo splits "owner/repo" into owner and repo
func ParseRepo(fullRepo string) (string, string, error) {
	parts := strings.Split(fullRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/repo)", fullRepo)
	}
	return parts[0], parts[1], nil
}

// contentResponse is the repository contents API payload for a single file
type contentResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

// FileContents fetches a single file from a repository at the given ref.
// An empty ref reads the default branch.
func (c *Client) FileContents(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s", org, repo, strings.TrimPrefix(path, "/"))
	if ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref)
	}

	var resp contentResponse
	if err := c.rest.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s/%s: %w", org, repo, path, err)
	}

	return decodeContent(&resp)
}

func decodeContent(resp *contentResponse) ([]byte, error) {
	if resp.Type != "" && resp.Type != "file" {
		return nil, fmt.Errorf("path is a %s, not a file", resp.Type)
	}

	switch resp.Encoding {
	case "base64":
		// The API wraps base64 content at 60 columns
		data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(resp.Content, "\n", ""))
		if err != nil {
			return nil, fmt.Errorf("failed to decode file content: %w", err)
		}
		return data, nil
	case "", "none":
		return []byte(resp.Content), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding: %s", resp.Encoding)
	}
}
