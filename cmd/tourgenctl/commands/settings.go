package commands

import (
	"github.com/spf13/cobra"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Work with saved LLM settings",
	}

	var reveal bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print saved settings, or null when none were saved",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			settings := s.Bridge.LoadSettings(cmd.Context())
			if settings != nil && !reveal {
				settings.APIKey = maskSecret(settings.APIKey)
			}
			return printJSON(cmd.OutOrStdout(), settings)
		}),
	}
	show.Flags().BoolVar(&reveal, "reveal", false, "print the API key unmasked")

	cmd.AddCommand(show)
	return cmd
}
