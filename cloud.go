// Package ncd wires the numeric-core decoder to its cloud collaborators:
// a BigQuery source of ciphertext lines and an HTTP function surface.
package ncd

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

const defaultProject = "numcore-decoder"

func cloudProject() string {
	if p := os.Getenv("NCD_PROJECT"); p != "" {
		return p
	}
	return defaultProject
}

// LoadLinesFromCloud fetches the ciphertext lines for a scope from the
// shared BigQuery table, in stored order.
func LoadLinesFromCloud(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, cloudProject())
	if err != nil {
		return nil, fmt.Errorf("creating bigquery client: %w", err)
	}
	defer client.Close()

	q := client.Query(`
		SELECT line
		FROM ciphertext.lines
		WHERE scope = @scope
		ORDER BY position`)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "scope", Value: scope},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying ciphertext lines: %w", err)
	}

	var lines []string
	for {
		var row struct {
			Line string `bigquery:"line"`
		}
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ciphertext lines: %w", err)
		}
		lines = append(lines, row.Line)
	}
	return lines, nil
}
