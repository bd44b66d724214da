package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/hanjadic/internal/app"
	"github.com/heartmarshall/hanjadic/internal/domain"
)

const noResult = "No result"

func newLookupCmd(root *rootOptions) *cobra.Command {
	var (
		raw     bool
		verbose bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "lookup <hanja>",
		Short: "Look up a hanja character or word and print the entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if !verbose {
				cfg.Log.Level = "warn"
			}
			a := app.New(cfg, cmd.ErrOrStderr())

			query := strings.Join(args, " ")
			fmt.Fprintf(cmd.ErrOrStderr(), "Searching for %s…\n", query)

			res, err := a.Service.Lookup(cmd.Context(), query)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), noResult)
				return nil
			}
			if err != nil {
				return err
			}

			out := res.Text
			if !raw {
				if out, err = renderMarkdown(res.Text, width); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown reply without terminal styling")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warn")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width for styled output")
	return cmd
}

func renderMarkdown(text string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	// Hard line breaks keep one block per line.
	out, err := r.Render(strings.ReplaceAll(text, "\n", "  \n"))
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}
