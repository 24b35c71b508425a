package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tourgen/internal/config"
	"tourgen/internal/models"
)

type configOutput struct {
	Config config.Config `json:"config"`
	Flags  models.Flags  `json:"flags"`
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate the environment and print the resulting flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.LLMAPIKey = maskSecret(cfg.LLMAPIKey)
			return printJSON(cmd.OutOrStdout(), configOutput{Config: cfg, Flags: cfg.Flags()})
		},
	}
}

// maskSecret keeps the last four characters of long secrets.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
