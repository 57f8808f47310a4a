package letterboxed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
)

const gameURL = "https://www.nytimes.com/puzzles/letter-boxed"

// The page embeds its game state as JSON; the sides array is all we need.
var sidesPattern = regexp.MustCompile(`"sides":\[(.*?)\]`)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FetchToday scrapes today's board from the NYT Letter Boxed page.
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

// ParseGamePage extracts the board from the page HTML.
func ParseGamePage(html string) (Board, error) {
	m := sidesPattern.FindStringSubmatch(html)
	if m == nil {
		return Board{}, fmt.Errorf("no sides found in page")
	}

	var sides []string
	if err := json.UnmarshalFromString("["+m[1]+"]", &sides); err != nil {
		return Board{}, fmt.Errorf("parsing sides %q: %w", m[1], err)
	}
	return NewBoard(sides)
}
