package judge

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "serve the configured problems over http",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		options, err := loadOptions()
		if err != nil {
			return err
		}
		if options.API == nil {
			return fmt.Errorf("missing api options in config")
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c, coreLogger, err := newCore(ctx, options)
		if err != nil {
			return err
		}
		defer c.Close()
		watchSignal(ctx, cancel, c.RootLogger())
		err = c.Run(ctx)
		if err != nil {
			return &exitError{err: err}
		}
		coreLogger.Debug("bye")
		return nil
	},
}
