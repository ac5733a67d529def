package launchpad

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return &Client{BaseURL: url, HTTP: &http.Client{Timeout: 2 * time.Second}}
}

func TestTemplatesURL(t *testing.T) {
	c := New()
	got := c.TemplatesURL("gedit", "")
	want := "https://api.launchpad.net/devel/ubuntu/noble/+source/gedit/+pot"
	if got != want {
		t.Errorf("TemplatesURL() = %q, want %q", got, want)
	}
	if got := c.TemplatesURL("gtk+3.0", "jammy"); got != "https://api.launchpad.net/devel/ubuntu/jammy/+source/gtk+3.0/+pot" {
		t.Errorf("TemplatesURL(jammy) = %q", got)
	}
}

func TestTemplatesCollection(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_size": 2,
			"entries": [
				{"name": "gedit", "translation_domain": "gedit", "iscurrent": true, "priority": 100, "message_count": 1234, "self_link": "x"},
				{"name": "gedit-plugins", "translation_domain": "gedit-plugins", "iscurrent": false}
			]
		}`))
	}))
	defer srv.Close()

	templates := newTestClient(srv.URL).Templates(context.Background(), "gedit", "noble")

	if gotPath != "/ubuntu/noble/+source/gedit/+pot" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}
	first := templates[0]
	if first.Name != "gedit" || !first.IsCurrent || first.Priority != 100 || first.MessageCount != 1234 {
		t.Errorf("templates[0] = %+v", first)
	}
	if first.Raw["self_link"] != "x" {
		t.Errorf("Raw lost unknown field: %v", first.Raw)
	}
}

func TestTemplatesSingleObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "coreutils", "path": "po/coreutils.pot"}`))
	}))
	defer srv.Close()

	templates := newTestClient(srv.URL).Templates(context.Background(), "coreutils", "")
	if len(templates) != 1 || templates[0].Path != "po/coreutils.pot" {
		t.Errorf("Templates() = %+v", templates)
	}
}

func TestTemplatesFailuresAreEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Object: <Ubuntu>, name: 'nope'", http.StatusNotFound)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"entries": [`))
		}},
		{"array body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[1, 2, 3]`))
		}},
		{"bad entries", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"entries": "nope"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			if got := newTestClient(srv.URL).Templates(context.Background(), "gedit", ""); got != nil {
				t.Errorf("Templates() = %+v, want nil", got)
			}
		})
	}
}

func TestTemplatesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if got := newTestClient(url).Templates(context.Background(), "gedit", ""); got != nil {
		t.Errorf("Templates() = %+v, want nil", got)
	}
}

func TestTemplatesCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"entries": []}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := newTestClient(srv.URL).Templates(ctx, "gedit", ""); got != nil {
		t.Errorf("Templates() = %+v, want nil", got)
	}
}

func TestTemplateMarshalKeepsRaw(t *testing.T) {
	var tpl Template
	if err := json.Unmarshal([]byte(`{"name": "gedit", "owner_link": "https://example"}`), &tpl); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(tpl)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back["owner_link"] != "https://example" || back["name"] != "gedit" {
		t.Errorf("marshalled = %s", out)
	}

	plain, err := json.Marshal(Template{Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if string(plain) != `{"name":"x"}` {
		t.Errorf("plain marshal = %s", plain)
	}
}
