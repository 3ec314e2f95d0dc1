package judge

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rnetx/judge/constant"
	"github.com/rnetx/judge/core"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var MainCommand = &cobra.Command{
	Use:           "judge",
	Short:         "run competitive programming solvers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	MainCommand.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	MainCommand.AddCommand(runCommand, listCommand, serveCommand, versionCommand)
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	err := MainCommand.ExecuteContext(context.Background())
	if err != nil {
		var exitErr *exitError
		if !errors.As(err, &exitErr) {
			log.DefaultLogger.Error(err)
		}
		return 1
	}
	return 0
}

// exitError marks an error that was already logged.
type exitError struct {
	err error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func loadOptions() (core.Options, error) {
	var options core.Options
	if configPath == "" {
		return options, nil
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		log.DefaultLogger.Errorf("read config file failed: %s, error: %s", configPath, err)
		return options, &exitError{err: err}
	}
	err = yaml.Unmarshal(raw, &options)
	if err != nil {
		log.DefaultLogger.Errorf("parse config file failed: %s, error: %s", configPath, err)
		return options, &exitError{err: err}
	}
	return options, nil
}

func newCore(ctx context.Context, options core.Options) (*core.Core, log.Logger, error) {
	c, coreLogger, err := core.NewCore(ctx, options)
	if err != nil {
		log.DefaultLogger.Error(err)
		return nil, nil, &exitError{err: err}
	}
	coreLogger.Debugf("judge %s", constant.Version)
	coreLogger.Debugf("problem types: %s", strings.Join(problem.ProblemTypes(), ", "))
	return c, coreLogger, nil
}

// watchSignal cancels the serve context on SIGINT, SIGTERM or SIGQUIT.
func watchSignal(ctx context.Context, cancel context.CancelFunc, logger log.Logger) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	go func() {
		defer signal.Stop(signalChan)
		select {
		case <-signalChan:
			logger.Warn("receive signal, exiting...")
			cancel()
		case <-ctx.Done():
		}
	}()
}
