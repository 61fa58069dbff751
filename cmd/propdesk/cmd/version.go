package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the propdesk CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("propdesk version %s\n", version)
		fmt.Println("Prop-firm evaluation account tracking")
		fmt.Println("https://github.com/rustyeddy/propdesk")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
