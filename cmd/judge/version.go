package judge

import (
	"fmt"
	"strings"

	"github.com/rnetx/judge/constant"
	"github.com/rnetx/judge/problem"

	"github.com/spf13/cobra"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "print version and problem types",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "judge %s\n", constant.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "problem types: %s\n", strings.Join(problem.ProblemTypes(), ", "))
	},
}
