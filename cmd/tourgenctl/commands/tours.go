package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tourgen/internal/utils"
)

func newToursCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tours",
		Short: "Work with saved tours",
	}

	var force bool

	list := &cobra.Command{
		Use:   "list",
		Short: "Print saved tours in save order",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			tours := s.Bridge.LoadTours(cmd.Context())
			out := cmd.OutOrStdout()
			if len(tours) == 0 {
				_, err := fmt.Fprintln(out, "no tours saved")
				return err
			}
			for i, t := range tours {
				if _, err := fmt.Fprintf(out, "%d. %s (%d stops) %s\n", i+1, t.ID, len(t.Stops), t.Prompt); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	export := &cobra.Command{
		Use:   "export [file]",
		Short: "Write saved tours as JSON to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			tours := s.Bridge.LoadTours(cmd.Context())
			if len(args) == 0 {
				return printJSON(cmd.OutOrStdout(), tours)
			}

			path := args[0]
			if utils.FileExists(path) && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := utils.EnsureParentDir(path); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			data, err := json.MarshalIndent(tours, "", "  ")
			if err != nil {
				return fmt.Errorf("encode tours: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d tours to %s\n", len(tours), path)
			return err
		}),
	}
	export.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(list, export)
	return cmd
}
