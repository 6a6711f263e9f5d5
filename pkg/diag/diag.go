package diag

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/musemeta/bqshell/pkg/util"
)

// Executor runs one SQL statement. Satisfied by *bqshell.Console.
type Executor interface {
	Execute(ctx context.Context, sql string) (*util.QueryResult, error)
}

// Runner executes the fixed diagnostic queries against one fully-qualified
// table. Each query's failure is reported and the next query still runs.
type Runner struct {
	exec  Executor
	table string
	out   io.Writer
}

func NewRunner(exec Executor, table string, out io.Writer) *Runner {
	return &Runner{exec: exec, table: table, out: out}
}

// Run executes the row count, field name, and sample release queries in
// that order.
func (r *Runner) Run(ctx context.Context) {
	fmt.Fprintln(r.out, "\n🔍 Querying release notification data:")
	fmt.Fprintln(r.out, strings.Repeat("-", 60))

	r.rowCount(ctx)
	r.fieldNames(ctx)
	r.sampleReleases(ctx)
}

func (r *Runner) rowCount(ctx context.Context) {
	sql := fmt.Sprintf("SELECT COUNT(*) as count FROM `%s`", r.table)

	result, err := r.exec.Execute(ctx, sql)
	if err != nil {
		r.fail(err)
		return
	}
	for _, record := range result.Records {
		fmt.Fprintf(r.out, "   Total rows: %v\n", record[0])
	}
}

func (r *Runner) fieldNames(ctx context.Context) {
	sql := fmt.Sprintf(`SELECT DISTINCT field.name as field_name
		FROM `+"`%s`"+`,
		UNNEST(fields) AS field
		ORDER BY field_name
		LIMIT 20`, r.table)

	fmt.Fprintln(r.out, "\n   Field names (first 20):")
	result, err := r.exec.Execute(ctx, sql)
	if err != nil {
		r.fail(err)
		return
	}
	for _, record := range result.Records {
		fmt.Fprintf(r.out, "     - %v\n", record[0])
	}
}

func (r *Runner) sampleReleases(ctx context.Context) {
	sql := fmt.Sprintf(`SELECT
		  (SELECT value FROM UNNEST(fields) WHERE name = 'MessageId') as message_id,
		  (SELECT value FROM UNNEST(fields) WHERE name = 'ISRC') as isrc,
		  (SELECT value FROM UNNEST(fields) WHERE name LIKE '%%TitleText%%' LIMIT 1) as title,
		  (SELECT value FROM UNNEST(fields) WHERE name = 'DisplayArtistName') as artist,
		  (SELECT value FROM UNNEST(fields) WHERE name = 'GenreText') as genre
		FROM `+"`%s`"+`
		LIMIT 5`, r.table)

	fmt.Fprintln(r.out, "\n   🎵 Sample releases:")
	result, err := r.exec.Execute(ctx, sql)
	if err != nil {
		r.fail(err)
		return
	}

	labels := []string{"Message ID", "ISRC", "Title", "Artist", "Genre"}
	for _, record := range result.Records {
		fmt.Fprintln(r.out)
		for idx, label := range labels {
			fmt.Fprintf(r.out, "     %s: %s\n", label, orNA(record, idx))
		}
	}
}

func (r *Runner) fail(err error) {
	fmt.Fprintf(r.out, "   ❌ Error: %s\n", err)
}

func orNA(record []interface{}, idx int) string {
	if idx >= len(record) || record[idx] == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", record[idx])
}
