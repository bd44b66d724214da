package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hanjadic/internal/app"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start an MCP server exposing the hanja_lookup and ping tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return app.New(cfg, os.Stderr).ServeMCP()
		},
	}
}
