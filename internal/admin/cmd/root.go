package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version, buildDate string) *cobra.Command {
	var serverURL string
	root := &cobra.Command{
		Use:   "taskmasterctl",
		Short: "Taskmaster admin CLI",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Server base URL")

	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newKeysCmd())
	root.AddCommand(newProbeCmd(&serverURL))
	return root
}
