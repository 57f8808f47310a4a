// solverfn serves the Letter Boxed solver as a cloud function. Words come
// either inline with the request or from a hosted BigQuery word table.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/sirupsen/logrus"

	"github.com/alipatti/nyt-games-bots/pkg/letterboxed"
	"github.com/alipatti/nyt-games-bots/pkg/wordlist"
)

type SolveRequest struct {
	// Sides are the board's four sides, e.g. ["lcv", "rwa", "eng", "tio"].
	// When empty, today's board is fetched from the NYT site.
	Sides []string `json:"sides"`
	// Words is an inline word list; ignored when WordScope is set.
	Words []string `json:"words"`
	// WordScope selects a hosted word list instead of inline words.
	WordScope    string `json:"wordScope"`
	MaxSolutions int    `json:"maxSolutions"`
}

type SolveResponse struct {
	Success   bool       `json:"success"`
	Board     string     `json:"board,omitempty"`
	Solutions [][]string `json:"solutions"`
	Error     string     `json:"error,omitempty"`
}

func execute(ctx context.Context, req SolveRequest) (letterboxed.Board, [][]string, error) {
	var zero letterboxed.Board
	if req.MaxSolutions <= 0 {
		return zero, nil, fmt.Errorf("maxSolutions must be at least 1")
	}
	if req.MaxSolutions > 100 {
		return zero, nil, fmt.Errorf("maxSolutions must be at most 100")
	}

	var entries []wordlist.Entry
	if req.WordScope != "" {
		fetched, err := wordlist.FetchBigQuery(ctx, wordlist.BigQuerySource{
			Project: os.Getenv("BQ_PROJECT"),
			Table:   os.Getenv("BQ_WORD_TABLE"),
			Scope:   req.WordScope,
		})
		if err != nil {
			return zero, nil, fmt.Errorf("fetching word list: %w", err)
		}
		entries = fetched
	} else {
		for i, word := range req.Words {
			entries = append(entries, wordlist.Entry{Word: strings.ToLower(word), Cost: i + 1})
		}
	}
	if len(entries) == 0 {
		return zero, nil, fmt.Errorf("no words: set words or wordScope")
	}

	var board letterboxed.Board
	var err error
	if len(req.Sides) > 0 {
		board, err = letterboxed.NewBoard(req.Sides)
	} else {
		board, err = letterboxed.FetchToday(ctx)
	}
	if err != nil {
		return zero, nil, err
	}

	// Leave headroom before the platform deadline so the response still
	// gets written.
	timeout := 1 * time.Minute
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline) - 5*time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	game := letterboxed.NewGame(board, wordlist.Build(entries))
	var solutions [][]string
	for moves := range game.Solutions(ctx) {
		solutions = append(solutions, moves)
		if len(solutions) >= req.MaxSolutions {
			break
		}
	}
	return board, solutions, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solve(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SolveResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	board, solutions, err := execute(r.Context(), req)

	response := SolveResponse{
		Success:   err == nil,
		Solutions: solutions,
	}
	if err != nil {
		response.Error = err.Error()
	} else {
		response.Board = board.String()
	}
	if err == nil && len(solutions) == 0 {
		response.Error = "No solutions found for this board and word list"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.WithError(err).Error("encoding response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve", solve)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if os.Getenv("LOCAL_ONLY") == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		logrus.Fatalf("funcframework.StartHostPort: %v", err)
	}
}
