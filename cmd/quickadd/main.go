package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "quickadd",
		Short: "Quick-capture shortcuts for a Notion-style database store",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(initCmd())
	root.AddCommand(connectCmd())
	root.AddCommand(databasesCmd())
	root.AddCommand(schemaCmd())
	root.AddCommand(shortcutCmd())
	root.AddCommand(addCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(resetCmd())
	root.AddCommand(proxyCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
