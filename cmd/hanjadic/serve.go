package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hanjadic/internal/app"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return app.New(cfg, os.Stderr).ListenAndServe(cmd.Context())
		},
	}
}
