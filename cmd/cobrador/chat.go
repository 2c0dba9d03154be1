package main

import (
	"github.com/spf13/cobra"

	"github.com/marimarques/cobrador/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session over the business data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return tui.Run(cmd.Context(), buildEngine(store, cfg), store)
		},
	}
}
