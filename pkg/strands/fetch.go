package strands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/hashicorp/go-retryablehttp"
)

const gameURL = "https://www.nytimes.com/games/strands"

// The page renders each board letter as a button whose id starts with
// "button"; the button text is the letter.
var letterPattern = regexp.MustCompile(`<button[^>]*\bid="button[^"]*"[^>]*>\s*([A-Za-z])`)

// FetchToday scrapes today's board from the NYT Strands page.
func FetchToday(ctx context.Context) (Board, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, gameURL, nil)
	if err != nil {
		return Board{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Board{}, fmt.Errorf("fetching %s: %w", gameURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Board{}, fmt.Errorf("fetching %s: unexpected status %s", gameURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Board{}, fmt.Errorf("reading page body: %w", err)
	}

	board, err := ParseGamePage(string(body))
	if err != nil {
		return Board{}, err
	}
	log.WithField("board", board.String()).Info("fetched today's board")
	return board, nil
}

// ParseGamePage extracts the board letters from the page HTML.
func ParseGamePage(html string) (Board, error) {
	matches := letterPattern.FindAllStringSubmatch(html, -1)
	if len(matches) != BoardWidth*BoardHeight {
		return Board{}, fmt.Errorf("found %d board letters, want %d", len(matches), BoardWidth*BoardHeight)
	}

	rows := make([]string, BoardHeight)
	for i := range BoardHeight {
		row := make([]rune, BoardWidth)
		for j := range BoardWidth {
			row[j] = rune(matches[i*BoardWidth+j][1][0])
		}
		rows[i] = string(row)
	}
	return NewBoard(rows)
}
