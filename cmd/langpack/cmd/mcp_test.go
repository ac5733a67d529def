package cmd

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
	"github.com/joeblew999/langpack-inspector/internal/config"
	"github.com/joeblew999/langpack-inspector/internal/inspector"
	"github.com/joeblew999/langpack-inspector/internal/launchpad"
	"github.com/joeblew999/langpack-inspector/internal/mo/motest"
)

type staticPacks []catalog.LanguagePack

func (s staticPacks) ListLanguagePacks(ctx context.Context) []catalog.LanguagePack {
	return s
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func decodeToolJSON(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content %T", result.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, text.Text)
	}
}

func testToolServer(t *testing.T) *toolServer {
	t.Helper()
	root := t.TempDir()
	for _, domain := range []string{"gedit", "gtk30"} {
		path := filepath.Join(root, "sv", "LC_MESSAGES", domain+".mo")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		data := motest.Build(binary.LittleEndian, []motest.Entry{{ID: "a", Translation: "A"}, {ID: "b"}})
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
	}

	settings := config.Defaults()
	settings.LocaleDirs = []string{root}
	return &toolServer{
		settings: settings,
		scanner: func(dirs ...string) *inspector.Inspector {
			in := inspector.New(dirs...)
			in.Packs = staticPacks{}
			in.Owners = nil
			return in
		},
		packs: staticPacks{
			catalog.NewLanguagePack("language-pack-sv", "1:24.04"),
			catalog.NewLanguagePack("language-pack-de", "1:24.04"),
		},
		launchpad: launchpad.New(),
	}
}

func TestHandleScan(t *testing.T) {
	s := testToolServer(t)

	result, err := s.handleScan(context.Background(), callRequest(map[string]any{"language": "sv", "filter": "gtk"}))
	if err != nil {
		t.Fatal(err)
	}
	var scan inspector.ScanResult
	decodeToolJSON(t, result, &scan)

	if scan.Language != "sv" || len(scan.Catalogs) != 1 || scan.Catalogs[0].Domain != "gtk30" {
		t.Errorf("scan = %+v", scan)
	}
	if scan.Summary.TotalStrings != 2 || scan.Summary.Translated != 1 {
		t.Errorf("summary = %+v", scan.Summary)
	}
}

func TestHandleScanBadSort(t *testing.T) {
	s := testToolServer(t)
	result, err := s.handleScan(context.Background(), callRequest(map[string]any{"language": "sv", "sort": "size"}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected tool error for unknown sort key")
	}
}

func TestHandlePacks(t *testing.T) {
	s := testToolServer(t)

	result, err := s.handlePacks(context.Background(), callRequest(map[string]any{"language": "de"}))
	if err != nil {
		t.Fatal(err)
	}
	var packs struct {
		Language string           `json:"language"`
		Packs    []map[string]any `json:"packs"`
	}
	decodeToolJSON(t, result, &packs)
	if packs.Language != "de" || len(packs.Packs) != 1 || packs.Packs[0]["name"] != "language-pack-de" {
		t.Errorf("packs = %+v", packs)
	}

	result, _ = s.handlePacks(context.Background(), callRequest(nil))
	decodeToolJSON(t, result, &packs)
	if len(packs.Packs) != 2 {
		t.Errorf("expected all packs, got %d", len(packs.Packs))
	}
}

func TestHandleTemplates(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"entries": [{"name": "gedit", "translation_domain": "gedit", "message_count": 1200}]}`)
	}))
	defer srv.Close()

	s := testToolServer(t)
	s.launchpad = &launchpad.Client{BaseURL: srv.URL, HTTP: srv.Client()}

	result, err := s.handleTemplates(context.Background(), callRequest(map[string]any{"package": "gedit"}))
	if err != nil {
		t.Fatal(err)
	}
	var templates struct {
		Series    string           `json:"series"`
		Templates []map[string]any `json:"templates"`
	}
	decodeToolJSON(t, result, &templates)

	if gotPath != "/ubuntu/noble/+source/gedit/+pot" {
		t.Errorf("request path = %s", gotPath)
	}
	if templates.Series != config.DefaultSeries || len(templates.Templates) != 1 || templates.Templates[0]["message_count"] != 1200.0 {
		t.Errorf("templates = %+v", templates)
	}

	result, _ = s.handleTemplates(context.Background(), callRequest(map[string]any{}))
	if !result.IsError {
		t.Error("expected error without package")
	}
}

func TestGetMCPHTTPAddress(t *testing.T) {
	t.Setenv(envMCPPort, "")
	if got := getMCPHTTPAddress(":9000"); got != ":9000" {
		t.Errorf("flag address = %s", got)
	}
	if got := getMCPHTTPAddress("true"); got != ":"+config.DefaultMCPPort {
		t.Errorf("default address = %s", got)
	}

	t.Setenv(envMCPPort, "9100")
	if got := getMCPHTTPAddress(""); got != ":9100" {
		t.Errorf("env address = %s", got)
	}
}
