// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest runs a classification against the registry in the input
// directory and writes the resulting extension manifest, reporting every
// step through a transcript sink.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/glext/internal/registry"
	"github.com/pdiddy/glext/internal/transcript"
	"github.com/pdiddy/glext/pkg/types"
)

const (
	// ManifestFile is the manifest name inside the output directory.
	ManifestFile = "extensions.txt"
	// LogFile is the transcript name inside the output directory.
	LogFile = "result_log.txt"
	// reportBase is the report name without its format extension.
	reportBase = "extensions_report"
)

// Summary describes a completed run.
type Summary struct {
	RegistryPath   string                `json:"registry_path" yaml:"registry_path"`
	RegistrySHA256 string                `json:"registry_sha256" yaml:"registry_sha256"`
	Profile        string                `json:"profile" yaml:"profile"`
	StopVersion    string                `json:"stop_version" yaml:"stop_version"`
	ManifestPath   string                `json:"manifest_path" yaml:"manifest_path"`
	ReportPath     string                `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	GeneratedAt    time.Time             `json:"generated_at" yaml:"generated_at"`
	Classification *types.Classification `json:"classification" yaml:"classification"`
}

// CheckDirs verifies that the input and output directories exist.
func CheckDirs(cfg types.ParseConfig, sink transcript.Sink) error {
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			transcript.Errorf(sink, "Failed to find %s folder from '%s'!", filepath.Base(dir), absPath(dir))
			return fmt.Errorf("%w: %s", registry.ErrMissingInputPath, dir)
		}
	}
	return nil
}

// OpenLog creates the transcript file in the output directory.
func OpenLog(cfg types.ParseConfig, sink transcript.Sink) (*os.File, error) {
	path := filepath.Join(cfg.OutputDir, LogFile)
	f, err := os.Create(path)
	if err != nil {
		transcript.Errorf(sink, "Failed to open '%s' for writing!", path)
		return nil, fmt.Errorf("%w: %v", registry.ErrFileOpen, err)
	}
	return f, nil
}

// Generate classifies the registry named by cfg and writes the optional
// report and then the manifest to the output directory. No manifest is
// written when classification or the report fails.
func Generate(cfg types.ParseConfig, sink transcript.Sink, log zerolog.Logger) (*Summary, error) {
	opts := registry.OptionsFrom(cfg.ClassifyConfig)
	regPath := filepath.Join(cfg.InputDir, cfg.RegistryFile)

	if _, err := os.Stat(regPath); err != nil {
		transcript.Errorf(sink, "Failed to find file '%s'!", regPath)
		return nil, fmt.Errorf("%w: %s", registry.ErrMissingInputFile, regPath)
	}

	digest, err := fileDigest(regPath)
	if err != nil {
		transcript.Errorf(sink, "Failed to open file '%s' for reading!", regPath)
		return nil, err
	}
	log.Debug().Str("registry", regPath).Str("sha256", digest).Msg("registry located")

	result, err := registry.Classify(registry.FileSource{Path: regPath}, opts, log)
	switch {
	case errors.Is(err, registry.ErrEmptyResult):
		transcript.Errorf(sink, "Failed to find any extensions from file '%s'!", regPath)
		return nil, err
	case errors.Is(err, registry.ErrFileRead):
		transcript.Errorf(sink, "Failed to read file '%s'!", regPath)
		return nil, err
	case err != nil:
		transcript.Errorf(sink, "Failed to open file '%s' for reading!", regPath)
		return nil, err
	}

	summary := &Summary{
		RegistryPath:   regPath,
		RegistrySHA256: digest,
		Profile:        valueOr(cfg.Profile, registry.DefaultProfile),
		StopVersion:    valueOr(cfg.StopVersion, registry.DefaultStopVersion),
		ManifestPath:   filepath.Join(cfg.OutputDir, ManifestFile),
		GeneratedAt:    time.Now().UTC(),
		Classification: result,
	}

	// The report goes first so a failed report leaves no manifest behind.
	if cfg.Report != types.ReportNone {
		summary.ReportPath = filepath.Join(cfg.OutputDir, reportBase+"."+string(cfg.Report))
		if err := WriteReport(summary.ReportPath, summary, cfg.Report); err != nil {
			transcript.Errorf(sink, "Failed to open file '%s' for writing!", summary.ReportPath)
			return nil, err
		}
	}

	if err := WriteManifest(summary.ManifestPath, result.Extensions); err != nil {
		transcript.Errorf(sink, "Failed to open file '%s' for writing!", summary.ManifestPath)
		return nil, err
	}

	transcript.Successf(sink, "Found and saved '%d' extensions to '%s'!", len(result.Extensions), summary.ManifestPath)
	return summary, nil
}

// WriteManifest writes names one per line through a temporary file that is
// renamed into place, so a failed write leaves no partial manifest.
func WriteManifest(path string, names []string) error {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	return writeAtomic(path, []byte(b.String()))
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".glext-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", registry.ErrFileOpen, err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %v", registry.ErrFileOpen, path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: closing temp file: %v", registry.ErrFileOpen, closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming temp file: %v", registry.ErrFileOpen, err)
	}
	return nil
}

// fileDigest returns the hex SHA-256 of the file at path.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", registry.ErrFileOpen, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("%w: hashing %s: %v", registry.ErrFileOpen, path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
