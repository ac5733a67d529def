// Package dpkg queries the Debian package database through dpkg-query and
// dpkg -S.
//
// Both queries are best effort. A missing binary, a timeout or unparsable
// output yields an empty result and a debug log line, never an error.
package dpkg

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/joeblew999/langpack-inspector/internal/catalog"
	"github.com/joeblew999/langpack-inspector/internal/config"
)

// listFormat is the dpkg-query output format: one tab-separated row per package.
const listFormat = "${Package}\t${Version}\t${Status}\n"

// Runner runs an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args. Output already written to stdout is returned
// together with a non-nil error when the command exits non-zero.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Client queries dpkg through a Runner.
type Client struct {
	Runner       Runner
	BatchSize    int
	ListTimeout  time.Duration
	OwnerTimeout time.Duration
}

// New returns a Client that runs the real dpkg tools.
func New() *Client {
	return &Client{
		Runner:       ExecRunner{},
		BatchSize:    config.OwnerBatchSize,
		ListTimeout:  config.ListTimeout,
		OwnerTimeout: config.OwnerTimeout,
	}
}

// ListLanguagePacks returns the installed language-pack-* packages.
func (c *Client) ListLanguagePacks(ctx context.Context) []catalog.LanguagePack {
	ctx, cancel := context.WithTimeout(ctx, c.ListTimeout)
	defer cancel()

	out, err := c.Runner.Run(ctx, "dpkg-query", "-W", "-f", listFormat, config.LanguagePackPattern)
	if err != nil && !usableOutput(out, err) {
		log.Debug().Err(err).Msg("dpkg-query unavailable, no language packs listed")
		return nil
	}
	return ParseLanguagePacks(string(out))
}

// Owners maps catalog paths to the packages that ship them. Paths are queried
// in batches of BatchSize; unowned paths and failed batches are left out.
func (c *Client) Owners(ctx context.Context, paths []string) map[string]string {
	owners := make(map[string]string)
	size := c.BatchSize
	if size <= 0 {
		size = config.OwnerBatchSize
	}

	for start := 0; start < len(paths); start += size {
		end := min(start+size, len(paths))
		c.ownersBatch(ctx, paths[start:end], owners)
		if ctx.Err() != nil {
			break
		}
	}
	return owners
}

func (c *Client) ownersBatch(ctx context.Context, batch []string, owners map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, c.OwnerTimeout)
	defer cancel()

	args := append([]string{"-S"}, batch...)
	out, err := c.Runner.Run(ctx, "dpkg", args...)
	if err != nil && !usableOutput(out, err) {
		log.Debug().Err(err).Int("paths", len(batch)).Msg("dpkg -S failed, batch left unmapped")
		return
	}
	for path, pkg := range ParseOwners(string(out)) {
		owners[path] = pkg
	}
}

// usableOutput reports whether stdout can still be parsed after err. dpkg -S
// exits 1 when any path is unowned but still prints the owned ones.
func usableOutput(out []byte, err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && len(out) > 0
}

// ParseLanguagePacks parses dpkg-query rows of Package, Version and Status.
// Only packages whose status is "installed" are returned.
func ParseLanguagePacks(out string) []catalog.LanguagePack {
	var packs []catalog.LanguagePack
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(parts) < 3 || !isInstalled(parts[2]) {
			continue
		}
		packs = append(packs, catalog.NewLanguagePack(parts[0], parts[1]))
	}
	return packs
}

// isInstalled checks the third word of a dpkg status ("install ok installed").
func isInstalled(status string) bool {
	fields := strings.Fields(status)
	return len(fields) > 0 && fields[len(fields)-1] == "installed"
}

// ParseOwners parses "package: /path" lines from dpkg -S.
func ParseOwners(out string) map[string]string {
	owners := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "diversion by ") {
			continue
		}
		pkg, path, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		owners[strings.TrimSpace(path)] = strings.TrimSpace(pkg)
	}
	return owners
}
