package cmd

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joeblew999/langpack-inspector/internal/mo/motest"
)

// execute runs a fresh root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := &cobra.Command{Use: "langpack", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(ScanCmd, HeatmapCmd, ExportCmd, ConfigCmd, VersionCmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// resetScanFlags restores flag variables shared by package-level commands.
func resetScanFlags(t *testing.T) {
	t.Cleanup(func() {
		scanOut = outputFlags{format: "text"}
		scanFilter, scanSort = "", ""
		scanHeatmap, scanFailOnIssues = false, false
		scanLocaleDirs = nil
		exportFormat, exportOutput = "csv", ""
		exportLocaleDirs = nil
		versionDebug = false
		for _, c := range []*cobra.Command{ScanCmd, HeatmapCmd, ExportCmd, VersionCmd} {
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
	})
}

func localeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write := func(domain string, entries []motest.Entry) {
		path := filepath.Join(root, "sv", "LC_MESSAGES", domain+".mo")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, motest.Build(binary.LittleEndian, entries), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("gedit", []motest.Entry{{ID: "a", Translation: "A"}})
	write("nautilus", []motest.Entry{{ID: "a", Translation: "A"}, {ID: "b"}, {ID: "c"}, {ID: "d"}})
	return root
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("LANGPACK_HOME", t.TempDir())

	if _, err := execute(t, "config", "set", "series", "jammy"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	out, err := execute(t, "config", "get", "series")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "jammy" {
		t.Errorf("series = %q", out)
	}

	if _, err := execute(t, "config", "set", "view", "grid"); err == nil {
		t.Error("expected error for invalid view")
	}

	out, _ = execute(t, "config", "list")
	if !strings.Contains(out, "series") || !strings.Contains(out, "jammy") {
		t.Errorf("config list = %s", out)
	}

	out, _ = execute(t, "config", "path")
	if !strings.HasSuffix(strings.TrimSpace(out), "settings.yaml") {
		t.Errorf("config path = %s", out)
	}
}

func TestScanCommandJSON(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("LANGPACK_HOME", t.TempDir())
	root := localeTree(t)

	out, err := execute(t, "scan", "sv", "--locale-dir", root, "--jq", ".summary.num_mo_files")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("num_mo_files = %q", out)
	}
}

func TestScanCommandText(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("LANGPACK_HOME", t.TempDir())
	root := localeTree(t)

	out, err := execute(t, "scan", "sv", "--locale-dir", root, "--no-color", "--sort", "coverage")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if strings.Index(out, "nautilus") > strings.Index(out, "gedit") {
		t.Errorf("expected least translated first:\n%s", out)
	}
	if !strings.Contains(out, "Language: sv — 2/5 strings translated (40.0%) — 2 .mo files — 0 outdated") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestScanCommandFailOnIssues(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("LANGPACK_HOME", t.TempDir())
	root := localeTree(t)

	_, err := execute(t, "scan", "sv", "--locale-dir", root, "-f", "json", "--fail-on-issues")
	if !errors.Is(err, ErrIssues) {
		t.Errorf("expected ErrIssues, got %v", err)
	}
}

func TestHeatmapCommand(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("LANGPACK_HOME", t.TempDir())
	root := localeTree(t)

	out, err := execute(t, "heatmap", "sv", "--locale-dir", root, "--no-color")
	if err != nil {
		t.Fatalf("heatmap failed: %v", err)
	}
	if !strings.Contains(out, "=== Coverage heatmap ===") || !strings.Contains(out, " 25%") {
		t.Errorf("heatmap output:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("LANGPACK_HOME", t.TempDir())
	root := localeTree(t)
	dest := filepath.Join(t.TempDir(), "sv.csv")

	if _, err := execute(t, "export", "sv", "--locale-dir", root, "-o", dest); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	f, err := os.Open(dest)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[1][0] != "gedit" || rows[2][0] != "nautilus" {
		t.Errorf("rows = %v", rows)
	}

	if _, err := execute(t, "export", "sv", "--format", "xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestScanUsesHeatmapViewAndWelcomesOnce(t *testing.T) {
	resetScanFlags(t)
	home := t.TempDir()
	t.Setenv("LANGPACK_HOME", home)
	root := localeTree(t)

	if _, err := execute(t, "config", "set", "view", "heatmap"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	out, errOut, err := executeWithStderr(t, "scan", "sv", "--locale-dir", root, "--no-color")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(out, "=== Coverage heatmap ===") || strings.Contains(out, "=== Catalogs ===") {
		t.Errorf("expected heatmap view:\n%s", out)
	}
	if !strings.Contains(errOut, "Welcome to Language Pack Inspector") {
		t.Errorf("expected welcome on stderr, got %q", errOut)
	}
	if strings.Contains(out, "Welcome") {
		t.Error("welcome written to stdout")
	}

	data, err := os.ReadFile(filepath.Join(home, "settings.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "welcome_shown: true") || !strings.Contains(string(data), "view: heatmap") {
		t.Errorf("settings.yaml = %s", data)
	}

	_, errOut, err = executeWithStderr(t, "scan", "sv", "--locale-dir", root, "--no-color")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(errOut, "Welcome") {
		t.Error("welcome shown twice")
	}
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error {
	return f.closeErr
}

func TestWriteAndClose(t *testing.T) {
	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "domain\n")
		return err
	}

	ok := &failingCloser{}
	if err := writeAndClose(ok, "out.csv", write); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if ok.String() != "domain\n" {
		t.Errorf("written = %q", ok.String())
	}

	diskFull := errors.New("no space left on device")
	err := writeAndClose(&failingCloser{closeErr: diskFull}, "out.csv", write)
	if !errors.Is(err, diskFull) || !strings.Contains(err.Error(), "cannot write out.csv") {
		t.Errorf("close error not reported: %v", err)
	}

	writeErr := errors.New("short write")
	err = writeAndClose(&failingCloser{}, "out.csv", func(io.Writer) error { return writeErr })
	if !errors.Is(err, writeErr) {
		t.Errorf("write error not reported: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	resetScanFlags(t)
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, _ := execute(t, "version")
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version = %q", out)
	}

	out, _ = execute(t, "version", "--debug")
	for _, want := range []string{"Version: 1.2.3", "Go: go", "OS: "} {
		if !strings.Contains(out, want) {
			t.Errorf("debug info missing %q:\n%s", want, out)
		}
	}
}
