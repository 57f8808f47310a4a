// Package wordlist loads scored word lists and builds the vocabulary trie
// the solvers query. The trie itself owns no I/O or persistence; this
// package is the collaborator that feeds it and caches the result.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

var log = logrus.WithField("component", "wordlist")

// Entry is one vocabulary word with its popularity cost. Smaller means more
// common, so best-first queries surface common words first.
type Entry struct {
	Word string
	Cost int
}

// Options filter a word list before insertion. Filtering is caller policy:
// the trie accepts anything.
type Options struct {
	// MinLength drops words shorter than this many letters.
	MinLength int
	// MaxLength drops longer words when positive.
	MaxLength int
	// MaxEntries stops reading after this many kept entries when positive.
	MaxEntries int
}

// ParseReader reads "word" or "word popularity" lines. Blank lines and
// lines starting with '#' are skipped; words are lowercased and must be
// a-z only. Lines without an explicit popularity get their position in the
// kept list as cost, so frequency-sorted lists work unannotated.
func ParseReader(r io.Reader, opts Options) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		word := strings.ToLower(fields[0])
		if err := validateWord(word); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cost := len(entries) + 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad popularity %q: %w", line, fields[1], err)
			}
			cost = parsed
		}

		if len(word) < opts.MinLength {
			continue
		}
		if opts.MaxLength > 0 && len(word) > opts.MaxLength {
			continue
		}

		entries = append(entries, Entry{Word: word, Cost: cost})
		if opts.MaxEntries > 0 && len(entries) >= opts.MaxEntries {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning word list: %w", err)
	}
	return entries, nil
}

// LoadFile reads a word list from disk.
func LoadFile(path string, opts Options) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ParseReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"path": path, "entries": len(entries)}).Info("loaded word list")
	return entries, nil
}

// Build bulk-inserts entries into a fresh trie.
func Build(entries []Entry) *vocab.Trie[rune, int] {
	trie := vocab.New[rune, int]()
	for _, e := range entries {
		trie.Insert([]rune(e.Word), e.Cost)
	}
	return trie
}

func validateWord(word string) error {
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("word %q contains non-lowercase letter %q", word, r)
		}
	}
	return nil
}
