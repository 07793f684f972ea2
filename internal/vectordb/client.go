package vectordb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/qdrant/go-client/qdrant"
)

const defaultGRPCPort = 6334

// Client wraps the Qdrant operations used by the product copy index
type Client struct {
	qdrant *qdrant.Client
}

// NewClient connects to Qdrant over gRPC
func NewClient(cfg *config.QdrantConfig) (*Client, error) {
	host, port := parseHostPort(cfg.URL)

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS || isCloudHost(host) || strings.HasPrefix(cfg.URL, "https://"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}

	return &Client{qdrant: client}, nil
}

// parseHostPort accepts host, host:port and URLs with an http(s) scheme
func parseHostPort(url string) (string, int) {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimSuffix(url, "/")

	idx := strings.LastIndex(url, ":")
	if idx == -1 {
		return url, defaultGRPCPort
	}
	port, err := strconv.Atoi(url[idx+1:])
	if err != nil || port <= 0 {
		port = defaultGRPCPort
	}
	return url[:idx], port
}

func isCloudHost(host string) bool {
	return strings.HasSuffix(host, "qdrant.io") || strings.HasSuffix(host, "qdrant.cloud")
}

func (c *Client) Close() error {
	if c.qdrant != nil {
		return c.qdrant.Close()
	}
	return nil
}
