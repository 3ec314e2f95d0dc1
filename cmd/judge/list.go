package judge

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "list configured problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		options, err := loadOptions()
		if err != nil {
			return err
		}
		c, _, err := newCore(cmd.Context(), options)
		if err != nil {
			return err
		}
		defer c.Close()
		problems := c.GetProblems()
		tags := make([]string, 0, len(problems))
		types := make(map[string]string, len(problems))
		for _, p := range problems {
			tags = append(tags, p.Tag())
			types[p.Tag()] = p.Type()
		}
		sort.Strings(tags)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TAG\tTYPE")
		for _, tag := range tags {
			fmt.Fprintf(w, "%s\t%s\n", tag, types[tag])
		}
		return w.Flush()
	},
}
