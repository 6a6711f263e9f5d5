package util

// QueryResult holds the rows produced by one query execution. Columns are
// ordered as the result schema orders them; every record has one value per
// column. Records are untyped, the console does no schema validation.
type QueryResult struct {
	Columns []string
	Records [][]interface{}
}

// TableInfo is one table's summary as shown by the startup listing.
type TableInfo struct {
	ID     string
	Rows   uint64
	Fields int
}
