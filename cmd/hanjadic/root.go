package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/hanjadic/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "hanjadic",
		Short:        "Hanja dictionary lookups backed by dic.daum.net",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to YAML config (default $CONFIG_PATH or "+config.DefaultPath+")")

	cmd.AddCommand(
		newLookupCmd(opts),
		newServeCmd(opts),
		newMCPCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath)
}
