package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

type fakeREST struct {
	payload  interface{}
	err      error
	lastPath string
}

func (f *fakeREST) Get(path string, response interface{}) error {
	f.lastPath = path
	if f.err != nil {
		return f.err
	}
	data, _ := json.Marshal(f.payload)
	return json.Unmarshal(data, response)
}

func TestParseRepo(t *testing.T) {
	tests := []struct {
		input   string
		org     string
		repo    string
		wantErr bool
	}{
		{"acme/rules", "acme", "rules", false},
		{"acme", "", "", true},
		{"acme/rules/extra", "", "", true},
		{"/rules", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			org, repo, err := ParseRepo(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRepo(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if org != tt.org || repo != tt.repo {
				t.Errorf("ParseRepo(%q) = %q, %q, want %q, %q", tt.input, org, repo, tt.org, tt.repo)
			}
		})
	}
}

func TestFileContents(t *testing.T) {
	body := "version: 1\nkeywords:\n  vague: [meh]\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(body))
	// Simulate API line wrapping
	wrapped := encoded[:10] + "\n" + encoded[10:]

	rest := &fakeREST{payload: map[string]string{"type": "file", "encoding": "base64", "content": wrapped}}
	c := &Client{rest: rest}

	got, err := c.FileContents(context.Background(), "acme", "rules", "/shopcopy-rules.yaml", "main")
	if err != nil {
		t.Fatalf("FileContents() error = %v", err)
	}
	if string(got) != body {
		t.Errorf("FileContents() = %q, want %q", got, body)
	}
	if rest.lastPath != "repos/acme/rules/contents/shopcopy-rules.yaml?ref=main" {
		t.Errorf("requested path = %q", rest.lastPath)
	}
}

func TestFileContents_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		c := &Client{rest: &fakeREST{err: errors.New("HTTP 404")}}
		if _, err := c.FileContents(context.Background(), "a", "b", "c", ""); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("directory", func(t *testing.T) {
		c := &Client{rest: &fakeREST{payload: map[string]string{"type": "dir"}}}
		if _, err := c.FileContents(context.Background(), "a", "b", "c", ""); err == nil {
			t.Error("expected error for directory")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := &Client{rest: &fakeREST{}}
		if _, err := c.FileContents(ctx, "a", "b", "c", ""); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
