package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newStorageCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Low-level access to the key/value storage",
	}

	keys := &cobra.Command{
		Use:   "keys",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			keys, err := s.Storage.Keys(cmd.Context())
			if err != nil {
				return fmt.Errorf("list keys: %w", err)
			}
			for _, k := range keys {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	rm := &cobra.Command{
		Use:   "rm <key>...",
		Short: "Remove stored keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			for _, key := range args {
				if err := s.Storage.RemoveItem(cmd.Context(), key); err != nil {
					return fmt.Errorf("remove %s: %w", key, err)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored tour and setting",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			if !yes {
				return errors.New("refusing to clear storage without --yes")
			}
			if err := s.Storage.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear storage: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "storage cleared")
			return err
		}),
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	cmd.AddCommand(keys, rm, clearCmd)
	return cmd
}
