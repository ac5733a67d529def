// Package cmd provides CLI commands for langpack.
//
// mcp.go - Embedded MCP (Model Context Protocol) server
//
// Exposes scans, installed language packs and Launchpad templates as MCP
// tools so AI assistants can inspect translation coverage.
//
// Uses: https://github.com/mark3labs/mcp-go
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
	"github.com/joeblew999/langpack-inspector/internal/config"
	"github.com/joeblew999/langpack-inspector/internal/dpkg"
	"github.com/joeblew999/langpack-inspector/internal/inspector"
	"github.com/joeblew999/langpack-inspector/internal/launchpad"
)

// MCP environment variable for port override
const envMCPPort = "LANGPACK_MCP_PORT"

// MCPCmd is the parent command for MCP operations
var MCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP (Model Context Protocol) server",
	Long: `Provides an MCP server that exposes langpack scans as tools for AI assistants.

Tools:
  scan_language          Coverage of every catalog of a language
  list_language_packs    Installed language-pack-* packages
  launchpad_templates    Launchpad translation templates of a source package

Examples:
  langpack mcp serve              # Start MCP server (stdio)
  langpack mcp serve --http       # Streamable HTTP on :` + config.DefaultMCPPort,
}

// MCPServeCmd starts the MCP server
var MCPServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server (stdio or HTTP transport)",
	Long: `Starts an MCP server exposing the langpack tools.

TRANSPORTS:
  stdio (default)  - JSON-RPC over stdin/stdout, spawned by AI client
  http             - HTTP server on specified port

STDIO MODE (default):
  langpack mcp serve

  Config for Claude Desktop/Cursor:
    {
      "mcpServers": {
        "langpack": {
          "command": "langpack",
          "args": ["mcp", "serve"]
        }
      }
    }

HTTP MODE:
  langpack mcp serve --http           # Uses default port :` + config.DefaultMCPPort + `
  langpack mcp serve --http=:9000     # Custom port

  Environment: LANGPACK_MCP_PORT=9000`,
	RunE: runMCPServe,
}

var mcpHTTP string

func init() {
	MCPCmd.AddCommand(MCPServeCmd)

	MCPServeCmd.Flags().StringVar(&mcpHTTP, "http", "", "HTTP address (default :"+config.DefaultMCPPort+", or $LANGPACK_MCP_PORT)")
	MCPServeCmd.Flags().Lookup("http").NoOptDefVal = "true"
}

// toolServer holds the collaborators behind the MCP tools
type toolServer struct {
	settings  *config.Settings
	scanner   func(localeDirs ...string) *inspector.Inspector
	packs     inspector.PackLister
	launchpad *launchpad.Client
}

func newToolServer(s *config.Settings) *toolServer {
	return &toolServer{
		settings:  s,
		scanner:   inspector.New,
		packs:     dpkg.New(),
		launchpad: launchpad.New(),
	}
}

// stringArg returns a string argument, or def when it is missing or empty
func stringArg(request mcp.CallToolRequest, name, def string) string {
	if v, ok := request.GetArguments()[name].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := inspector.Encode(&buf, inspector.FormatJSON, v); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *toolServer) handleScan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lang := stringArg(request, "language", "")
	if lang == "" {
		lang = languageOf(nil, s.settings)
	}

	result, err := s.scanner(s.settings.ResolvedLocaleDirs()...).Scan(ctx, lang)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Scan of '%s' failed: %v", lang, err)), nil
	}

	records, err := inspector.Sort(
		inspector.Filter(result.Catalogs, stringArg(request, "filter", "")),
		stringArg(request, "sort", s.settings.Sort),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result.WithCatalogs(records))
}

func (s *toolServer) handlePacks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := inspector.PacksResult{Packs: s.packs.ListLanguagePacks(ctx)}
	if lang := stringArg(request, "language", ""); lang != "" {
		result.Language = lang
		var packs []catalog.LanguagePack
		for _, p := range result.Packs {
			if p.MatchesLanguage(lang) {
				packs = append(packs, p)
			}
		}
		result.Packs = packs
	}
	return jsonResult(result)
}

func (s *toolServer) handleTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg := stringArg(request, "package", "")
	if pkg == "" {
		return mcp.NewToolResultError("package is required"), nil
	}
	series := stringArg(request, "series", s.settings.Series)

	return jsonResult(inspector.TemplatesResult{
		Package:   pkg,
		Series:    series,
		URL:       s.launchpad.TemplatesURL(pkg, series),
		Templates: s.launchpad.Templates(ctx, pkg, series),
	})
}

// register adds the tools and the settings resource to mcpServer
func (s *toolServer) register(mcpServer *server.MCPServer) {
	mcpServer.AddTool(mcp.NewTool("scan_language",
		mcp.WithDescription("Translation coverage of every compiled catalog (.mo) of a language, with owning packages and a summary."),
		mcp.WithString("language", mcp.Description("Language code such as sv or pt_BR (default: configured or system language)")),
		mcp.WithString("filter", mcp.Description("Only include domains containing this text")),
		mcp.WithString("sort", mcp.Description("Sort by: "+strings.Join(inspector.SortKeys, ", "))),
	), s.handleScan)

	mcpServer.AddTool(mcp.NewTool("list_language_packs",
		mcp.WithDescription("Installed language-pack-* packages with versions."),
		mcp.WithString("language", mcp.Description("Only include packs of this language")),
	), s.handlePacks)

	mcpServer.AddTool(mcp.NewTool("launchpad_templates",
		mcp.WithDescription("Launchpad translation templates of an Ubuntu source package."),
		mcp.WithString("package", mcp.Required(), mcp.Description("Source package name, e.g. gedit")),
		mcp.WithString("series", mcp.Description("Ubuntu series (default: "+config.DefaultSeries+")")),
	), s.handleTemplates)

	settingsResource := mcp.NewResource(
		"langpack://settings",
		"langpack settings",
		mcp.WithResourceDescription("The persisted langpack settings (language, series, locale roots)."),
		mcp.WithMIMEType("application/yaml"),
	)
	mcpServer.AddResource(settingsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := yaml.Marshal(s.settings)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	})
}

// getMCPHTTPAddress returns the HTTP address for MCP server.
// Priority: flag value > env var > default port
func getMCPHTTPAddress(flagValue string) string {
	if flagValue != "" && flagValue != "true" {
		return flagValue
	}
	if envPort := os.Getenv(envMCPPort); envPort != "" {
		if !strings.HasPrefix(envPort, ":") {
			return ":" + envPort
		}
		return envPort
	}
	return ":" + config.DefaultMCPPort
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	mcpServer := server.NewMCPServer(
		"langpack-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
	)
	newToolServer(settings).register(mcpServer)

	if cmd.Flags().Changed("http") {
		addr := getMCPHTTPAddress(mcpHTTP)
		fmt.Fprintf(cmd.ErrOrStderr(), "Starting MCP HTTP server on %s\n", addr)
		fmt.Fprintf(cmd.ErrOrStderr(), "Endpoint: http://localhost%s/mcp\n", addr)
		return server.NewStreamableHTTPServer(mcpServer).Start(addr)
	}
	return server.ServeStdio(mcpServer)
}
