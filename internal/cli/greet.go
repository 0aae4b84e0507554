package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-interval/detect/interval"
)

func newGreetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "Print the binding greeting",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			interval.Greet(func(msg string) {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			})
		},
	}
}
