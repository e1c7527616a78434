// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/glext/internal/registry"
	"github.com/pdiddy/glext/internal/transcript"
	"github.com/pdiddy/glext/pkg/types"
)

const registryDoc = `<registry>
    <feature api="gl" name="GL_VERSION_1_1" number="1.1">
        <require comment="Promoted from EXT_texture_object"/>
    </feature>
    <feature api="gl" name="GL_VERSION_4_0" number="4.0">
        <require comment="Reuse ARB_gpu_shader5"/>
    </feature>
    <extensions>
        <extension name="GL_KHR_debug" supported="gl|glcore|gles2"/>
        <extension name="GL_EXT_texture_object" supported="gl|glcore"/>
        <extension name="GL_ARB_gpu_shader5" supported="gl|glcore"/>
        <extension name="GL_ARB_pixel_buffer_object" supported="gl|glcore"/>
        <extension name="GL_EXT_texture_filter_anisotropic" supported="gl|glcore|gles2"/>
    </extensions>
</registry>
`

// setupDirs creates parser_in/ with the given registry and an empty
// parser_out/, returning the parse configuration for them.
func setupDirs(t *testing.T, doc string) types.ParseConfig {
	t.Helper()
	tmp := t.TempDir()
	cfg := types.ParseConfig{
		InputDir:     filepath.Join(tmp, "parser_in"),
		OutputDir:    filepath.Join(tmp, "parser_out"),
		RegistryFile: "gl.xml",
	}
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if doc != "" {
		if err := os.WriteFile(filepath.Join(cfg.InputDir, cfg.RegistryFile), []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := setupDirs(t, registryDoc)
	var rec transcript.Recorder

	summary, err := Generate(cfg, &rec, zerolog.Nop())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, ManifestFile))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	want := "GL_ARB_gpu_shader5\nGL_EXT_texture_filter_anisotropic\nGL_KHR_debug\n"
	if string(data) != want {
		t.Errorf("manifest = %q, want %q", data, want)
	}

	if summary.StopVersion != registry.DefaultStopVersion {
		t.Errorf("stop version = %q, want %q", summary.StopVersion, registry.DefaultStopVersion)
	}
	if len(summary.RegistrySHA256) != 64 {
		t.Errorf("sha256 = %q, want 64 hex chars", summary.RegistrySHA256)
	}
	if summary.ReportPath != "" {
		t.Errorf("report path = %q, want none", summary.ReportPath)
	}

	lines := rec.Lines()
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[SUCCESS] Found and saved '3' extensions to '") {
		t.Errorf("transcript = %q", lines)
	}
}

func TestGenerate_EmptyResultWritesNothing(t *testing.T) {
	cfg := setupDirs(t, "<registry>\n<extension name=\"GL_NV_fence\" supported=\"glcore\"/>\n</registry>\n")
	var rec transcript.Recorder

	_, err := Generate(cfg, &rec, zerolog.Nop())
	if !errors.Is(err, registry.ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, ManifestFile)); !os.IsNotExist(err) {
		t.Errorf("manifest should not exist, stat err = %v", err)
	}
	if len(rec.Events) != 1 || rec.Events[0].Severity != transcript.Error ||
		!strings.Contains(rec.Events[0].Message, "Failed to find any extensions from file") {
		t.Errorf("transcript = %+v", rec.Events)
	}
}

func TestGenerate_MissingRegistry(t *testing.T) {
	cfg := setupDirs(t, "")
	var rec transcript.Recorder

	_, err := Generate(cfg, &rec, zerolog.Nop())
	if !errors.Is(err, registry.ErrMissingInputFile) {
		t.Fatalf("err = %v, want ErrMissingInputFile", err)
	}
	if len(rec.Events) != 1 || !strings.HasPrefix(rec.Events[0].Message, "Failed to find file '") {
		t.Errorf("transcript = %+v", rec.Events)
	}
}

func TestGenerate_Report(t *testing.T) {
	tests := []struct {
		format types.ReportFormat
		decode func([]byte, any) error
	}{
		{types.ReportYAML, yaml.Unmarshal},
		{types.ReportJSON, json.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			cfg := setupDirs(t, registryDoc)
			cfg.Report = tt.format

			summary, err := Generate(cfg, &transcript.Recorder{}, zerolog.Nop())
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			wantPath := filepath.Join(cfg.OutputDir, "extensions_report."+string(tt.format))
			if summary.ReportPath != wantPath {
				t.Errorf("report path = %q, want %q", summary.ReportPath, wantPath)
			}

			data, err := os.ReadFile(wantPath)
			if err != nil {
				t.Fatalf("reading report: %v", err)
			}
			var r Report
			if err := tt.decode(data, &r); err != nil {
				t.Fatalf("decoding report: %v", err)
			}
			if r.Counts.Candidates != 5 || r.Counts.Promoted != 1 || r.Counts.Overrides != 1 || r.Counts.Manifest != 3 {
				t.Errorf("counts = %+v", r.Counts)
			}
			if len(r.Versions) != 1 || r.Versions[0] != "GL_VERSION_1_1" {
				t.Errorf("versions = %v", r.Versions)
			}
		})
	}
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.txt")
	if err := WriteReport(path, &Summary{}, "toml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no report should be written")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFile)

	if err := WriteManifest(path, []string{"GL_A", "GL_B"}); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "GL_A\nGL_B\n" {
		t.Errorf("manifest = %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the manifest in %s, found %d entries", dir, len(entries))
	}
}

func TestWriteManifest_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ManifestFile)
	err := WriteManifest(path, []string{"GL_A"})
	if !errors.Is(err, registry.ErrFileOpen) {
		t.Fatalf("err = %v, want ErrFileOpen", err)
	}
}

func TestCheckDirs(t *testing.T) {
	cfg := setupDirs(t, registryDoc)
	var rec transcript.Recorder
	if err := CheckDirs(cfg, &rec); err != nil {
		t.Fatalf("CheckDirs: %v", err)
	}
	if len(rec.Events) != 0 {
		t.Errorf("unexpected transcript: %+v", rec.Events)
	}

	cfg.OutputDir = filepath.Join(filepath.Dir(cfg.OutputDir), "nowhere")
	err := CheckDirs(cfg, &rec)
	if !errors.Is(err, registry.ErrMissingInputPath) {
		t.Fatalf("err = %v, want ErrMissingInputPath", err)
	}
	if len(rec.Events) != 1 || !strings.HasPrefix(rec.Events[0].Message, "Failed to find nowhere folder from '") {
		t.Errorf("transcript = %+v", rec.Events)
	}
}

func TestOpenLog(t *testing.T) {
	cfg := setupDirs(t, registryDoc)
	f, err := OpenLog(cfg, &transcript.Recorder{})
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	defer f.Close()
	if filepath.Base(f.Name()) != LogFile {
		t.Errorf("log file = %s, want %s", f.Name(), LogFile)
	}

	cfg.OutputDir = filepath.Join(cfg.OutputDir, "missing")
	var rec transcript.Recorder
	if _, err := OpenLog(cfg, &rec); !errors.Is(err, registry.ErrFileOpen) {
		t.Fatalf("err = %v, want ErrFileOpen", err)
	}
	if len(rec.Events) != 1 {
		t.Errorf("transcript = %+v", rec.Events)
	}
}

func TestGenerate_ReportFailureWritesNoManifest(t *testing.T) {
	cfg := setupDirs(t, registryDoc)
	cfg.Report = types.ReportYAML
	// A directory at the report path makes the rename fail.
	if err := os.Mkdir(filepath.Join(cfg.OutputDir, "extensions_report.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	var rec transcript.Recorder

	if _, err := Generate(cfg, &rec, zerolog.Nop()); !errors.Is(err, registry.ErrFileOpen) {
		t.Fatalf("err = %v, want ErrFileOpen", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, ManifestFile)); !os.IsNotExist(err) {
		t.Errorf("manifest should not exist, stat err = %v", err)
	}
	if len(rec.Events) != 1 || !strings.HasPrefix(rec.Events[0].Message, "Failed to open file '") {
		t.Errorf("transcript = %+v", rec.Events)
	}
}

func TestGenerate_ReadFailure(t *testing.T) {
	long := "<registry>\n<extension name=\"GL_KHR_debug\" supported=\"glcore\"/>\n" +
		strings.Repeat("x", 2<<20) + "\n</registry>\n"
	cfg := setupDirs(t, long)
	var rec transcript.Recorder

	_, err := Generate(cfg, &rec, zerolog.Nop())
	if !errors.Is(err, registry.ErrFileRead) || !errors.Is(err, registry.ErrFileOpen) {
		t.Fatalf("err = %v, want ErrFileRead", err)
	}
	if len(rec.Events) != 1 || !strings.HasPrefix(rec.Events[0].Message, "Failed to read file '") {
		t.Errorf("transcript = %+v", rec.Events)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, ManifestFile)); !os.IsNotExist(err) {
		t.Errorf("manifest should not exist, stat err = %v", err)
	}
}
