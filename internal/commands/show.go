// internal/commands/show.go
package bstreport

import "github.com/spf13/cobra"

// showCmd groups read-only inspection commands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
