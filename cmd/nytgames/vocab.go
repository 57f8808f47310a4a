package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alipatti/nyt-games-bots/pkg/wordlist"
)

func vocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the vocabulary cache",
	}
	cmd.AddCommand(vocabBuildCmd())
	return cmd
}

func vocabBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the vocabulary cache from the word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := wordlist.LoadFile(viper.GetString("wordlist"), listOptions())
			if err != nil {
				return err
			}

			trie := wordlist.Build(entries)
			cachePath := viper.GetString("cache")
			if err := wordlist.Save(cachePath, trie); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cached %d words (%d trie nodes) to %s\n",
				trie.Len(), trie.NumNodes(), cachePath)
			return nil
		},
	}
}
