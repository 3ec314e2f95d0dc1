package judge

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rnetx/judge/problem"

	"github.com/spf13/cobra"
)

var inputPath string

var runCommand = &cobra.Command{
	Use:   "run <problem>",
	Short: "solve input from stdin (or --input) and print the answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProblem(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	runCommand.Flags().StringVarP(&inputPath, "input", "i", "", "read input from file instead of stdin")
}

func runProblem(ctx context.Context, tag string, stdin io.Reader, stdout io.Writer) error {
	options, err := loadOptions()
	if err != nil {
		return err
	}
	c, coreLogger, err := newCore(ctx, options)
	if err != nil {
		return err
	}
	defer c.Close()
	p := c.GetProblem(tag)
	if p == nil {
		coreLogger.Errorf("problem not found: %s", tag)
		return &exitError{err: fmt.Errorf("problem not found: %s", tag)}
	}
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			coreLogger.Errorf("open input failed: %s", err)
			return &exitError{err: err}
		}
		defer f.Close()
		stdin = f
	}
	err = problem.Run(ctx, coreLogger, p, stdin, stdout)
	if err != nil {
		return &exitError{err: err}
	}
	return nil
}
