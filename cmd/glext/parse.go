// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/glext/internal/history"
	"github.com/pdiddy/glext/internal/manifest"
	"github.com/pdiddy/glext/internal/transcript"
	"github.com/pdiddy/glext/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Write the non-core extension manifest from the registry",
	Long: `Parse reads <input-dir>/<registry> twice: once for the extensions supported
by the profile and once for the feature blocks before the stop version. Every
extension a feature block reuses or promotes, and every extension on the fixed
override list, is removed. The sorted remainder is written to
<output-dir>/extensions.txt and all status messages to
<output-dir>/result_log.txt.

Nothing is written to extensions.txt when classification or the report
fails. With --record the manifest is in place before the history entry is
stored, so a failed record leaves extensions.txt written and exits non-zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := parseConfig()
		if err != nil {
			return err
		}
		return runParse(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	parseCmd.Flags().String("profile", "glcore", "profile marker an extension's supported attribute must contain")
	parseCmd.Flags().String("stop-version", "GL_VERSION_4_0", "first feature version whose promotions are ignored")
	parseCmd.Flags().String("report", "", "also write extensions_report.<format>: yaml or json")
	parseCmd.Flags().Bool("record", false, "store the manifest in <output-dir>/history.db")

	mustBind("profile", parseCmd.Flags().Lookup("profile"))
	mustBind("stop_version", parseCmd.Flags().Lookup("stop-version"))
	mustBind("report", parseCmd.Flags().Lookup("report"))
	mustBind("record", parseCmd.Flags().Lookup("record"))

	rootCmd.AddCommand(parseCmd)
}

// runParse performs one full run, mirroring every status line to console
// and, once it is open, the transcript file.
func runParse(ctx context.Context, cfg types.ParseConfig, console io.Writer) error {
	sink := transcript.New(console)

	if err := manifest.CheckDirs(cfg, sink); err != nil {
		return err
	}

	logFile, err := manifest.OpenLog(cfg, sink)
	if err != nil {
		return err
	}
	defer logFile.Close()
	sink.Attach(logFile)

	transcript.Infof(sink, "Starting to parse extensions...")

	summary, err := manifest.Generate(cfg, sink, logger)
	if err != nil {
		transcript.Errorf(sink, "Failed to parse extensions!")
		return err
	}

	if cfg.Record {
		id, err := recordRun(ctx, cfg, summary)
		if err != nil {
			transcript.Errorf(sink, "Failed to record run in history: %v", err)
			return err
		}
		sink.Emit(transcript.Event{Severity: transcript.Info, Message: fmt.Sprintf("Recorded as history run %d", id), Indent: 2})
	}

	transcript.Successf(sink, "Parsed all extensions!")
	return sink.Err()
}

func recordRun(ctx context.Context, cfg types.ParseConfig, s *manifest.Summary) (int64, error) {
	store, err := history.Open(cfg.OutputDir)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	return store.Record(ctx, history.Run{
		CreatedAt:      s.GeneratedAt,
		RegistryPath:   s.RegistryPath,
		RegistrySHA256: s.RegistrySHA256,
		Profile:        s.Profile,
		StopVersion:    s.StopVersion,
		Extensions:     s.Classification.Extensions,
	})
}
