package wordlist

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Save persists a built vocabulary's arena snapshot so later runs can skip
// rebuilding from the raw word list.
func Save(path string, trie *vocab.Trie[rune, int]) error {
	data, err := json.Marshal(trie.Snapshot())
	if err != nil {
		return fmt.Errorf("marshaling vocabulary snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing vocabulary cache: %w", err)
	}
	return nil
}

// Load rebuilds a vocabulary from a snapshot written by Save.
func Load(path string) (*vocab.Trie[rune, int], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snapshot vocab.Snapshot[rune, int]
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling vocabulary cache %s: %w", path, err)
	}

	trie, err := vocab.FromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("invalid vocabulary cache %s: %w", path, err)
	}
	return trie, nil
}

// LoadOrBuild loads the cached vocabulary at cachePath if present,
// otherwise builds it from the word list at listPath and writes the cache
// for next time. A failed cache write is logged but not fatal; the built
// trie is still returned.
func LoadOrBuild(cachePath, listPath string, opts Options) (*vocab.Trie[rune, int], error) {
	if trie, err := Load(cachePath); err == nil {
		log.WithField("path", cachePath).Info("loaded cached vocabulary")
		return trie, nil
	} else if !os.IsNotExist(err) {
		log.WithError(err).Warn("vocabulary cache unreadable, rebuilding")
	}

	entries, err := LoadFile(listPath, opts)
	if err != nil {
		return nil, err
	}
	trie := Build(entries)

	if err := Save(cachePath, trie); err != nil {
		log.WithError(err).Warn("failed to write vocabulary cache")
	}
	return trie, nil
}
