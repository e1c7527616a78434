package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/glext/internal/fetch"
)

const defaultTimeout = 60 * time.Second

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the registry document into the input directory",
	Long: `Fetch downloads gl.xml from the Khronos OpenGL-Registry repository (or --url)
into <input-dir>/<registry>. Rate-limited and unavailable responses are
retried with backoff. The previous registry is replaced only after the
download completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := fetchConfig()
		if cfg.Timeout == 0 {
			cfg.Timeout = defaultTimeout
		}
		client := &http.Client{Timeout: cfg.Timeout}

		res, err := fetch.Registry(cmd.Context(), client, cfg, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d bytes)\n", res.Path, res.Bytes)
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("url", fetch.DefaultURL, "registry document URL")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Int("max-retries", 0, "retries on HTTP 429/503 (default 5)")

	mustBind("fetch.url", fetchCmd.Flags().Lookup("url"))
	mustBind("fetch.timeout", fetchCmd.Flags().Lookup("timeout"))
	mustBind("fetch.max_retries", fetchCmd.Flags().Lookup("max-retries"))

	rootCmd.AddCommand(fetchCmd)
}
