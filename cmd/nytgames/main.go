// nytgames solves the NYT daily word games from the command line.
package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
	"github.com/alipatti/nyt-games-bots/pkg/wordlist"
)

var cpuProfile *os.File

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nytgames",
		Short:         "Solvers for the NYT daily word games",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(viper.GetString("log-level"))
			if err != nil {
				return fmt.Errorf("bad log level: %w", err)
			}
			logrus.SetLevel(level)

			if path := viper.GetString("cpu-profile"); path != "" {
				cpuProfile, err = os.Create(path)
				if err != nil {
					return fmt.Errorf("creating profile file: %w", err)
				}
				if err := pprof.StartCPUProfile(cpuProfile); err != nil {
					return fmt.Errorf("starting CPU profile: %w", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cpuProfile != nil {
				pprof.StopCPUProfile()
				cpuProfile.Close()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("wordlist", "words.txt", "path to the scored word list")
	flags.String("cache", "vocab.json", "path to the vocabulary cache")
	flags.Int("min-length", 3, "drop words shorter than this")
	flags.Int("max-length", 0, "drop words longer than this (0 = no limit)")
	flags.Int("max-entries", 0, "keep at most this many words (0 = no limit)")
	flags.String("log-level", "info", "logrus level (debug, info, warn, error)")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("NYTGAMES")
	viper.AutomaticEnv()

	cmd.AddCommand(vocabCmd(), letterboxedCmd(), crosswordCmd(), strandsCmd())
	return cmd
}

// loadVocab builds the trie the solvers share, preferring the snapshot
// cache over reparsing the raw list.
func loadVocab() (*vocab.Trie[rune, int], error) {
	return wordlist.LoadOrBuild(
		viper.GetString("cache"),
		viper.GetString("wordlist"),
		listOptions(),
	)
}

func listOptions() wordlist.Options {
	return wordlist.Options{
		MinLength:  viper.GetInt("min-length"),
		MaxLength:  viper.GetInt("max-length"),
		MaxEntries: viper.GetInt("max-entries"),
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}
