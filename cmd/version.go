package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SayaAndy/saya-today-article-schema/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "article-schema %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
