package bqshell

import (
	"context"
	"os"
	"testing"

	"github.com/musemeta/bqshell/pkg/util"
)

const emulatorEnv = "BQSHELL_EMULATOR_ENDPOINT"

// TestAgainstEmulator exercises the console against a live emulator,
// e.g. ghcr.io/goccy/bigquery-emulator started on localhost:9050.
func TestAgainstEmulator(t *testing.T) {
	endpoint := os.Getenv(emulatorEnv)
	if endpoint == "" {
		t.Skipf("set %s to run against a live emulator", emulatorEnv)
	}

	ctx := context.Background()
	console, err := New("test-project", OptionEndpoint(endpoint))
	if err != nil {
		t.Fatal(err)
	}
	if err := console.Connect(ctx); err != nil {
		t.Fatalf("Connect() = %v", err)
	}
	defer console.Close()

	result, err := console.Execute(ctx, "SELECT 1 as one")
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if len(result.Columns) != 1 || result.Columns[0] != "one" {
		t.Errorf("Execute() columns = %v, want [one]", result.Columns)
	}
	if len(result.Records) != 1 {
		t.Errorf("Execute() returned %d records, want 1", len(result.Records))
	}

	if _, err := console.ListTables(ctx, "no_such_dataset"); err != nil {
		if kind := util.KindOf(err); kind != util.DatasetNotFound {
			t.Errorf("ListTables(no_such_dataset) kind = %v, want %v", kind, util.DatasetNotFound)
		}
	}
}
