package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/musemeta/bqshell/pkg/util"
	"github.com/olekukonko/tablewriter"
)

// MaxDisplayRows caps how many data rows one query prints. Cosmetic only,
// the result set the emulator holds may be larger.
const MaxDisplayRows = 10

// Query writes a result as delimited text: a header of column names, a
// dash separator, then at most MaxDisplayRows rows.
func Query(w io.Writer, result *util.QueryResult) {
	if len(result.Columns) == 0 && len(result.Records) == 0 {
		fmt.Fprintln(w, "    (no results)")
		return
	}
	fmt.Fprintln(w, "   ", strings.Join(result.Columns, " | "))
	fmt.Fprintln(w, "   ", strings.Repeat("-", 60))
	for i, record := range result.Records {
		if i >= MaxDisplayRows {
			break
		}
		values := make([]string, len(record))
		for idx, v := range record {
			values[idx] = Cell(v)
		}
		fmt.Fprintln(w, "   ", strings.Join(values, " | "))
	}
}

// Tables writes the startup table listing.
func Tables(w io.Writer, infos []util.TableInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"TABLE", "ROWS", "FIELDS"})
	for _, info := range infos {
		table.Append([]string{info.ID, fmt.Sprintf("%d", info.Rows), fmt.Sprintf("%d", info.Fields)})
	}
	table.Render()
	fmt.Fprintf(w, "(%d tables)\n", len(infos))
}

// Cell stringifies one value for display. Maps render as JSON, absent
// values as NULL.
func Cell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case map[string]interface{}:
		jsonVal, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(jsonVal)
	default:
		return fmt.Sprintf("%v", val)
	}
}
