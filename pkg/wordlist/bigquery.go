package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
)

// BigQuerySource describes where hosted word lists live.
type BigQuerySource struct {
	Project string
	// Table is the fully qualified word table, e.g.
	// "project.dataset.all_words". Rows carry word_key (string), rank
	// (integer, smaller = more common), and scope (string).
	Table string
	// Scope selects which word list to pull.
	Scope string
}

// FetchBigQuery pulls a scored word list from BigQuery. Rows with invalid
// words fail the whole fetch; the hosted tables are expected to be clean.
func FetchBigQuery(ctx context.Context, src BigQuerySource) ([]Entry, error) {
	client, err := bigquery.NewClient(ctx, src.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf(
		"SELECT word_key, rank FROM `%s` WHERE scope = @scope ORDER BY rank", src.Table))
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: src.Scope}}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var entries []Entry
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		rank, ok := row[1].(int64)
		if !ok {
			return nil, fmt.Errorf("row[1] is not an integer: %v", row[1])
		}
		if err := validateWord(word); err != nil {
			return nil, fmt.Errorf("scope %q: %w", src.Scope, err)
		}

		entries = append(entries, Entry{Word: word, Cost: int(rank)})
	}

	log.WithFields(logrus.Fields{"scope": src.Scope, "entries": len(entries)}).
		Info("fetched word list from BigQuery")
	return entries, nil
}
