package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alipatti/nyt-games-bots/pkg/letterboxed"
)

func letterboxedCmd() *cobra.Command {
	var boardSpec string
	var maxSolutions int

	cmd := &cobra.Command{
		Use:   "letterboxed",
		Short: "Solve a Letter Boxed board",
		Long: "Solve a Letter Boxed board, printing the best word chains first.\n" +
			"With --board lcv,rwa,eng,tio the given sides are used; otherwise\n" +
			"today's board is fetched from the NYT site.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var board letterboxed.Board
			var err error
			if boardSpec != "" {
				board, err = letterboxed.NewBoard(strings.Split(boardSpec, ","))
			} else {
				board, err = letterboxed.FetchToday(ctx)
			}
			if err != nil {
				return err
			}

			trie, err := loadVocab()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "board: %s\n", board)

			game := letterboxed.NewGame(board, trie)
			printed := 0
			for moves := range game.Solutions(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(moves, " -> "))
				printed++
				if printed >= maxSolutions {
					break
				}
			}
			if printed == 0 {
				return fmt.Errorf("no solutions for board %s", board)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&boardSpec, "board", "", "comma-separated sides, e.g. lcv,rwa,eng,tio")
	cmd.Flags().IntVar(&maxSolutions, "max-solutions", 5, "stop after this many solutions")
	return cmd
}
