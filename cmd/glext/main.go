// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the glext CLI. glext reads an OpenGL
// API registry (gl.xml) and writes the sorted list of core-profile
// extensions that were never promoted into a core version before the stop
// version.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger receives diagnostics; the transcript carries user-facing status.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// rootCmd is the base command for the glext CLI.
var rootCmd = &cobra.Command{
	Use:   "glext",
	Short: "Derive the non-core OpenGL extension manifest from gl.xml",
	Long: `glext scans an OpenGL API registry document for extensions supported by the
core profile and removes every extension that a core version up to the stop
version reuses or promotes. The remainder is written, sorted, to
parser_out/extensions.txt for code generators and capability loaders.

Run "glext fetch" once per registry update, then "glext parse".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if viper.GetBool("verbose") {
			level = zerolog.DebugLevel
		}
		logger = logger.Level(level)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./glext.yaml or ~/.config/glext/glext.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug diagnostics on stderr")
	rootCmd.PersistentFlags().String("input-dir", "parser_in", "directory containing the registry document")
	rootCmd.PersistentFlags().String("output-dir", "parser_out", "directory receiving the manifest and transcript")
	rootCmd.PersistentFlags().String("registry", "gl.xml", "registry document name inside the input directory")

	mustBind("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	mustBind("input_dir", rootCmd.PersistentFlags().Lookup("input-dir"))
	mustBind("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	mustBind("registry_file", rootCmd.PersistentFlags().Lookup("registry"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("glext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "glext"))
		}
	}

	viper.SetEnvPrefix("GLEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
