// Package commands provides the tourgenctl maintenance commands. They read
// and write the same storage the desktop host uses.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"tourgen/internal/config"
	"tourgen/internal/database"
	"tourgen/internal/logging"
	"tourgen/internal/services"
)

// rootOptions holds the persistent flags of one command tree.
type rootOptions struct {
	dbPath string
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tourgenctl",
		Short: "Inspect tourgen storage and configuration",
		Long: `tourgenctl reads the configuration and the local storage of the
tourgen desktop host without starting the window.

Examples:
  tourgenctl config
  tourgenctl tours list
  tourgenctl tours export tours.json
  tourgenctl settings show
  tourgenctl storage rm tours
  tourgenctl storage clear --yes`,
		SilenceUsage: true,
	}
	opts := &rootOptions{}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (defaults to TOURGEN_DB_PATH)")

	root.AddCommand(newConfigCmd(), newToursCmd(opts), newSettingsCmd(opts), newStorageCmd(opts))
	return root
}

// session is an open database plus the services built on it.
type session struct {
	*services.DbServices
	close func() error
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	host, err := config.LoadHost()
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		host.DBPath = opts.dbPath
	}

	log := logging.New(cmd.ErrOrStderr(), host.LogLevel)
	db, err := database.Init(database.Config{
		Path:     host.DBPath,
		LogLevel: logger.Silent,
		Log:      log,
	})
	if err != nil {
		return nil, err
	}

	var secrets services.SecretStore
	if host.Keyring {
		secrets = services.NewKeyringService()
	}
	return &session{
		DbServices: services.NewDbServices(db, secrets, log.WithField("cli", cmd.Name())),
		close:      func() error { return database.Close(db) },
	}, nil
}

func withSession(opts *rootOptions, fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, opts)
		if err != nil {
			return err
		}
		defer func() {
			if err := s.close(); err != nil {
				logrus.WithError(err).Warn("closing database")
			}
		}()
		return fn(cmd, args, s)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
