// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the registry document into the input directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/glext/internal/httputil"
	"github.com/pdiddy/glext/pkg/types"
)

const (
	// DefaultURL is the upstream location of gl.xml.
	DefaultURL = "https://raw.githubusercontent.com/KhronosGroup/OpenGL-Registry/main/xml/gl.xml"
	// DefaultUserAgent identifies the tool to the registry host.
	DefaultUserAgent = "glext/0.1"
)

// Result describes a completed download.
type Result struct {
	Path  string
	Bytes int64
}

// Registry downloads cfg.URL to cfg.InputDir/cfg.RegistryFile. The document
// is written to a temporary file and renamed on success, so an interrupted
// download leaves any previous registry in place.
func Registry(ctx context.Context, client *http.Client, cfg types.FetchConfig, log zerolog.Logger) (Result, error) {
	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating directory %s: %w", cfg.InputDir, err)
	}
	dest := filepath.Join(cfg.InputDir, cfg.RegistryFile)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/xml, text/xml, text/plain")

	log.Debug().Str("url", cfg.URL).Msg("downloading registry")
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, log)
	if err != nil {
		return Result{}, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, cfg.URL)
	}

	tmpFile, err := os.CreateTemp(cfg.InputDir, ".fetch-*.tmp")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("closing temp file: %w", closeErr)
	}
	if n == 0 {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("empty registry from %s", cfg.URL)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("renaming temp file: %w", err)
	}
	log.Debug().Str("path", dest).Int64("bytes", n).Msg("registry saved")
	return Result{Path: dest, Bytes: n}, nil
}
