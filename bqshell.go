package bqshell

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/musemeta/bqshell/pkg/util"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// DefaultLimit is the cap on rows fetched per query when no
// OptionDefaultLimit is given. Set 0 to fetch unlimited rows.
const DefaultLimit = 100

// Console is a connection handle to a BigQuery-compatible emulator. It is
// created once, used sequentially, and is not safe for concurrent use.
type Console struct {
	project      string
	endpoint     string
	dataset      string
	table        string
	defaultLimit int

	client *bigquery.Client
}

// New returns an unconnected Console for the given project.
func New(project string, options ...Option) (*Console, error) {
	console := &Console{
		project:      project,
		endpoint:     "http://localhost:9050",
		dataset:      "music_metadata",
		table:        "release_notifications",
		defaultLimit: DefaultLimit,
	}
	for _, opt := range options {
		if err := opt(console); err != nil {
			return nil, err
		}
	}
	return console, nil
}

// Connect builds the underlying client with anonymous credentials. The
// emulator accepts any identity, so no token is read from the environment.
func (c *Console) Connect(ctx context.Context) error {
	client, err := bigquery.NewClient(ctx, c.project,
		option.WithEndpoint(c.endpoint),
		option.WithoutAuthentication())
	if err != nil {
		return util.E(util.ConnectionFailed, "connect", err)
	}
	c.client = client
	return nil
}

// Close releases the underlying client.
func (c *Console) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Endpoint returns the emulator endpoint the console targets.
func (c *Console) Endpoint() string {
	return c.endpoint
}

// QualifiedTable returns the fully-qualified diagnostic table name.
func (c *Console) QualifiedTable() string {
	return fmt.Sprintf("%s.%s.%s", c.project, c.dataset, c.table)
}

// DatasetID returns the dataset addressed by the startup listing.
func (c *Console) DatasetID() string {
	return c.dataset
}

// ListTables resolves every table of the dataset to a summary of its name,
// row count, and field count. A dataset that exists but holds no tables is
// an empty, successful result.
func (c *Console) ListTables(ctx context.Context, datasetID string) ([]util.TableInfo, error) {
	infos := []util.TableInfo{}
	tables := c.client.Dataset(datasetID).Tables(ctx)
	for {
		table, err := tables.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, util.E(classify(err), "list tables", err)
		}
		md, err := table.Metadata(ctx)
		if err != nil {
			return nil, util.E(classify(err), "table metadata", err)
		}
		infos = append(infos, util.TableInfo{
			ID:     table.TableID,
			Rows:   md.NumRows,
			Fields: len(md.Schema),
		})
	}
	return infos, nil
}

// Execute runs sql and materializes up to the configured row limit. The
// query text is passed through verbatim, the emulator does all parsing and
// planning.
func (c *Console) Execute(ctx context.Context, sql string) (*util.QueryResult, error) {
	it, err := c.client.Query(sql).Read(ctx)
	if err != nil {
		return nil, util.E(util.QueryFailed, "query", err)
	}

	var records [][]interface{}
	for {
		if c.defaultLimit > 0 && len(records) >= c.defaultLimit {
			break
		}
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, util.E(util.QueryFailed, "read row", err)
		}
		record := make([]interface{}, len(row))
		for i, v := range row {
			record[i] = v
		}
		records = append(records, record)
	}

	var columns []string
	for _, field := range it.Schema {
		columns = append(columns, field.Name)
	}
	for _, record := range records {
		if len(record) != len(columns) {
			return nil, util.E(util.MalformedResult, "read row",
				fmt.Errorf("row has %d values, schema has %d columns", len(record), len(columns)))
		}
	}

	return &util.QueryResult{Columns: columns, Records: records}, nil
}

func classify(err error) util.ErrorKind {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return util.DatasetNotFound
	}
	return util.QueryFailed
}
