// Package gemini generates closing narratives with the Gemini generative language API.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// Config configures the client. Only APIKey is required.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	// HTTPClient replaces the default transport. The API key is then not attached automatically.
	HTTPClient *http.Client
}

// Client implements clients.TextGenerator.
type Client struct {
	svc   *generativelanguage.Service
	model string
}

var _ clients.TextGenerator = (*Client)(nil)

// NewClient builds a client. Without an API key it returns a client whose Generate
// always fails with apperrors.ErrMissingCredentials, so callers can still wire it.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	c := &Client{model: modelName(cfg.Model)}
	if cfg.APIKey == "" {
		return c, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create generative language service: %w", err)
	}
	c.svc = svc
	return c, nil
}

// Generate sends prompt as a single user turn and joins the text parts of the first candidate.
// An empty string with a nil error means the model answered with no text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.svc == nil {
		return "", apperrors.ErrMissingCredentials
	}

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	resp, err := c.svc.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

func modelName(model string) string {
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}
