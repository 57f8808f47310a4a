package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alipatti/nyt-games-bots/pkg/crossword"
)

func crosswordCmd() *cobra.Command {
	var boardFile string
	var maxFills int

	cmd := &cobra.Command{
		Use:   "crossword",
		Short: "Fill a crossword grid",
		Long: "Fill a crossword grid from the vocabulary, best words first.\n" +
			"The grid is read from --grid (or stdin): one line per row,\n" +
			"'#' for blocked squares, '.' or space for empty ones, letters\n" +
			"for pre-filled squares.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readGrid(boardFile)
			if err != nil {
				return err
			}
			board, err := crossword.ParseBoard(rows)
			if err != nil {
				return err
			}

			trie, err := loadVocab()
			if err != nil {
				return err
			}

			filler := crossword.NewFiller(trie)
			printed := 0
			for fill := range filler.Fill(cmd.Context(), board) {
				fmt.Fprintln(cmd.OutOrStdout(), fill.Render())
				fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", board.Cols()))
				printed++
				if printed >= maxFills {
					break
				}
			}
			if printed == 0 {
				return fmt.Errorf("no fills found")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&boardFile, "grid", "", "file holding the grid, one line per row (default stdin)")
	cmd.Flags().IntVar(&maxFills, "max-fills", 1, "stop after this many fills")
	return cmd
}

func readGrid(path string) ([]string, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows, scanner.Err()
}
