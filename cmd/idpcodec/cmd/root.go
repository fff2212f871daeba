package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ripkitten-co/idpcodec"
	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/spf13/cobra"
)

type appKey struct{}

// app is built once per invocation from the global flags.
type app struct {
	svc        *idpcodec.Service
	logger     *slog.Logger
	timestamps codec.TimestampFormat
}

func appFrom(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok {
		return nil, errors.New("service not found in context")
	}
	return a, nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		format  string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "idpcodec",
		Short: "Encode and decode identity-provider service messages",
		Long: `idpcodec converts identity-provider requests and responses between
caller JSON and the aws-json-1.1 wire form, and archives decoded users
in PostgreSQL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ParseTimestampFormat(format)
			if err != nil {
				return err
			}
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
				svc:        idpcodec.New(idpcodec.WithLogger(logger), idpcodec.WithTimestampFormat(f)),
				logger:     logger,
				timestamps: f,
			}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&format, "timestamp-format", codec.EpochSeconds.String(), "Timestamp format for output: epoch-seconds or iso8601")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newOperationsCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newArchiveCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads args[i] as a file path, or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string, i int) ([]byte, error) {
	if len(args) > i && args[i] != "-" {
		data, err := os.ReadFile(args[i])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
