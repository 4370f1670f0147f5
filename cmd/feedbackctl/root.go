package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-feedback/internal/feedback"
	"resume-feedback/internal/shared/telemetry"
)

const app = "feedbackctl"

// cliConfig mirrors the optional feedbackctl.yaml file.
type cliConfig struct {
	Industry string `mapstructure:"industry"`
	Format   string `mapstructure:"format"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           app,
		Short:         "feedbackctl scores résumé text and suggests improvements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			logger, err := telemetry.NewWithOutput(v.GetBool("json"), v.GetBool("debug"), "stderr")
			if err != nil {
				return fmt.Errorf("creating a logger: %w", err)
			}
			telemetry.SetLogger(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is feedbackctl.yaml in current directory, if present)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	v.SetEnvPrefix("FEEDBACKCTL")
	v.AutomaticEnv()
	v.SetDefault("format", formatSummary)

	root.AddCommand(
		newAnalyzeCmd(v),
		newImproveCmd(v),
		newJobsCmd(),
		newIndustriesCmd(),
	)
	return root
}

// readConfig loads cfgFile, or feedbackctl.yaml from the working directory
// when it exists.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	telemetry.Debug("config.loaded", map[string]any{"file": v.ConfigFileUsed()})
	return nil
}

func getConfig(v *viper.Viper) (cliConfig, error) {
	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// industryFlag prefers the command line, then the config file. Unknown tags
// are rejected so typos do not silently fall back to general scoring.
func industryFlag(cmd *cobra.Command, fromConfig string) (string, error) {
	raw := fromConfig
	if f := cmd.Flags().Lookup("industry"); f != nil && f.Changed {
		raw = f.Value.String()
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, feedback.IndustryGeneral) {
		return "", nil
	}
	tag, ok := feedback.NormalizeIndustry(raw)
	if !ok {
		return "", fmt.Errorf("unknown industry %q (want one of %s)", raw, strings.Join(feedback.Industries(), ", "))
	}
	return tag, nil
}
