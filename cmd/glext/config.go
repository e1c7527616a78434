// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/glext/pkg/types"
)

// mustBind ties a config key to a flag so flags override config and env.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding %s: %v", key, err))
	}
}

// parseConfig assembles the parse settings from flags, env and config file.
func parseConfig() (types.ParseConfig, error) {
	cfg := types.ParseConfig{
		ClassifyConfig: types.ClassifyConfig{
			Profile:     viper.GetString("profile"),
			StopVersion: viper.GetString("stop_version"),
		},
		InputDir:     viper.GetString("input_dir"),
		OutputDir:    viper.GetString("output_dir"),
		RegistryFile: viper.GetString("registry_file"),
		Report:       types.ReportFormat(viper.GetString("report")),
		Record:       viper.GetBool("record"),
	}
	switch cfg.Report {
	case types.ReportNone, types.ReportYAML, types.ReportJSON:
	default:
		return cfg, fmt.Errorf("unsupported report format %q: use yaml or json", cfg.Report)
	}
	return cfg, nil
}

// fetchConfig assembles the fetch settings.
func fetchConfig() types.FetchConfig {
	return types.FetchConfig{
		URL:          viper.GetString("fetch.url"),
		Timeout:      viper.GetDuration("fetch.timeout"),
		UserAgent:    "glext/" + version,
		MaxRetries:   viper.GetInt("fetch.max_retries"),
		InputDir:     viper.GetString("input_dir"),
		RegistryFile: viper.GetString("registry_file"),
	}
}

// historyConfig assembles the history settings.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{OutputDir: viper.GetString("output_dir")}
}
