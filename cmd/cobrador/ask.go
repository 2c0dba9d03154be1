package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marimarques/cobrador/internal/cli"
	"github.com/marimarques/cobrador/internal/conversation"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <pergunta>",
		Short: "Ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			pergunta := strings.Join(args, " ")
			resposta := buildEngine(store, cfg).Answer(cmd.Context(), pergunta, conversation.New())

			cmd.Println(cli.RenderAnswer(resposta))
			return nil
		},
	}
}
