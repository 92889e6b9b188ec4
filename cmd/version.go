package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-lang/folio/fx"
)

func init() {
	folioCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number of Folio",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(fx.Version())
			},
		})
}
