// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/glext/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect manifests recorded with parse --record",
	Long: `History reads <output-dir>/history.db, where "glext parse --record" stores
each manifest together with the registry checksum it came from. Use the
subcommands to list runs, print one, or compare two.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(historyConfig().OutputDir)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		return formatRuns(cmd.OutOrStdout(), runs)
	},
}

func formatRuns(w io.Writer, runs []history.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-12s  %-16s  %s\n", "ID", "Created", "SHA256", "Stop", "Extensions")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, r := range runs {
		sum := r.RegistrySHA256
		if len(sum) > 12 {
			sum = sum[:12]
		}
		fmt.Fprintf(w, "%-4d  %-20s  %-12s  %-16s  %d\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), sum, r.StopVersion, r.Count)
	}
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRunID(args[0])
		if err != nil {
			return err
		}
		store, err := history.Open(historyConfig().OutputDir)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return encode(cmd.OutOrStdout(), format, run, func(w io.Writer) {
			for _, name := range run.Extensions {
				fmt.Fprintln(w, name)
			}
		})
	},
}

// --- diff subcommand ---

var historyDiffCmd = &cobra.Command{
	Use:   "diff [from to]",
	Short: "Compare two recorded manifests (default: the latest two)",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("provide no run IDs or exactly two, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(historyConfig().OutputDir)
		if err != nil {
			return err
		}
		defer store.Close()

		var from, to int64
		if len(args) == 2 {
			if from, err = parseRunID(args[0]); err != nil {
				return err
			}
			if to, err = parseRunID(args[1]); err != nil {
				return err
			}
		} else if from, to, err = store.Latest(cmd.Context()); err != nil {
			return err
		}

		d, err := store.Diff(cmd.Context(), from, to)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return encode(cmd.OutOrStdout(), format, d, func(w io.Writer) {
			if d.Empty() {
				fmt.Fprintf(w, "runs %d and %d hold the same extensions\n", d.From, d.To)
				return
			}
			for _, name := range d.Added {
				fmt.Fprintf(w, "+ %s\n", name)
			}
			for _, name := range d.Removed {
				fmt.Fprintf(w, "- %s\n", name)
			}
		})
	},
}

// --- shared helpers ---

func parseRunID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run ID %q", s)
	}
	return id, nil
}

// encode writes v as YAML or JSON, or calls text for the plain format.
func encode(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case "text", "":
		text(w)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
	}
}

func init() {
	historyShowCmd.Flags().String("format", "text", "output format: text, yaml or json")
	historyDiffCmd.Flags().String("format", "text", "output format: text, yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDiffCmd)

	rootCmd.AddCommand(historyCmd)
}
