// Package launchpad fetches translation template metadata from the Launchpad
// REST API.
//
// The data is supplementary. Every failure is logged at debug level and
// reported as an empty result.
package launchpad

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/joeblew999/langpack-inspector/internal/config"
)

// maxBody caps the size of a decoded response.
const maxBody = 8 << 20

// Template is one translation template (POT) of a source package.
type Template struct {
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	TranslationDomain string `json:"translation_domain,omitempty" yaml:"translation_domain,omitempty"`
	Path              string `json:"path,omitempty" yaml:"path,omitempty"`
	IsCurrent         bool   `json:"iscurrent,omitempty" yaml:"iscurrent,omitempty"`
	Priority          int    `json:"priority,omitempty" yaml:"priority,omitempty"`
	MessageCount      int    `json:"message_count,omitempty" yaml:"message_count,omitempty"`
	DateLastUpdated   string `json:"date_last_updated,omitempty" yaml:"date_last_updated,omitempty"`
	WebLink           string `json:"web_link,omitempty" yaml:"web_link,omitempty"`

	// Raw is the complete JSON object as returned by Launchpad.
	Raw map[string]any `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the whole object in Raw.
func (t *Template) UnmarshalJSON(data []byte) error {
	type plain Template
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &p.Raw); err != nil {
		return err
	}
	*t = Template(p)
	return nil
}

// MarshalJSON writes the raw object when present so no field is lost.
func (t Template) MarshalJSON() ([]byte, error) {
	if t.Raw != nil {
		return json.Marshal(t.Raw)
	}
	type plain Template
	return json.Marshal(plain(t))
}

// Client talks to the Launchpad API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for the public Launchpad API.
func New() *Client {
	return &Client{
		BaseURL: config.LaunchpadAPI,
		HTTP:    &http.Client{Timeout: config.LaunchpadTimeout},
	}
}

// TemplatesURL returns the endpoint listing the templates of sourcePackage in series.
func (c *Client) TemplatesURL(sourcePackage, series string) string {
	if series == "" {
		series = config.DefaultSeries
	}
	return fmt.Sprintf("%s/ubuntu/%s/+source/%s/+pot",
		strings.TrimSuffix(c.BaseURL, "/"), url.PathEscape(series), url.PathEscape(sourcePackage))
}

// Templates returns the translation templates of sourcePackage in series
// (default "noble"). It returns nil on any error.
func (c *Client) Templates(ctx context.Context, sourcePackage, series string) []Template {
	templates, err := c.fetch(ctx, c.TemplatesURL(sourcePackage, series))
	if err != nil {
		log.Debug().Err(err).Str("package", sourcePackage).Msg("launchpad templates unavailable")
		return nil
	}
	return templates
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]Template, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: config.LaunchpadTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("launchpad returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return parseTemplates(body)
}

// parseTemplates accepts either a collection ({"entries": [...]}) or a
// single template object.
func parseTemplates(body []byte) ([]Template, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if entries, ok := obj["entries"]; ok {
		var templates []Template
		if err := json.Unmarshal(entries, &templates); err != nil {
			return nil, fmt.Errorf("failed to parse entries: %w", err)
		}
		return templates, nil
	}

	var t Template
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return []Template{t}, nil
}
