package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/fivesquare/pkg/log"
	"github.com/macropower/fivesquare/pkg/squareerrors"
	"github.com/macropower/fivesquare/pkg/version"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

// NewRootCmd returns the root command, which runs the whole program.
func NewRootCmd(name, shortDesc, longDesc string, opts ...Option) *cobra.Command {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := slog.Default()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		logger = slog.New(h)

		logger.Debug("ready to go")

		return nil
	}

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		err := Run(logger, cfg)
		if err != nil {
			logger.Debug("run failed",
				"kind", squareerrors.KindOf(err).String(),
				"cause", causeOf(err),
			)
		}

		return err
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}
