package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alipatti/nyt-games-bots/pkg/strands"
)

func strandsCmd() *cobra.Command {
	var boardSpec string
	var maxWords int

	cmd := &cobra.Command{
		Use:   "strands",
		Short: "Find the words hidden in a Strands board",
		Long: "List every vocabulary word traceable on a Strands board, most\n" +
			"common first. With --board row1,row2,... the given letters are\n" +
			"used; otherwise today's board is fetched from the NYT site.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var board strands.Board
			var err error
			if boardSpec != "" {
				board, err = strands.NewBoard(strings.Split(boardSpec, ","))
			} else {
				board, err = strands.FetchToday(cmd.Context())
			}
			if err != nil {
				return err
			}

			trie, err := loadVocab()
			if err != nil {
				return err
			}

			words := strands.NewSolver(board, trie).Words()
			if len(words) == 0 {
				return fmt.Errorf("no words found on board:\n%s", board)
			}
			for i, w := range words {
				if i >= maxWords {
					break
				}
				fmt.Fprintln(cmd.OutOrStdout(), w.Word)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&boardSpec, "board", "", "comma-separated rows of six letters each")
	cmd.Flags().IntVar(&maxWords, "max-words", 50, "print at most this many words")
	return cmd
}
