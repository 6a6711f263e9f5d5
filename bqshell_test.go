package bqshell

import (
	"fmt"
	"testing"

	"github.com/musemeta/bqshell/pkg/util"
	"google.golang.org/api/googleapi"
)

func TestNewDefaults(t *testing.T) {
	console, err := New("test-project")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := console.Endpoint(), "http://localhost:9050"; got != want {
		t.Errorf("Endpoint() = %q, want %q", got, want)
	}
	if got, want := console.DatasetID(), "music_metadata"; got != want {
		t.Errorf("DatasetID() = %q, want %q", got, want)
	}
	if got, want := console.QualifiedTable(), "test-project.music_metadata.release_notifications"; got != want {
		t.Errorf("QualifiedTable() = %q, want %q", got, want)
	}
	if got := console.defaultLimit; got != DefaultLimit {
		t.Errorf("defaultLimit = %d, want %d", got, DefaultLimit)
	}
}

func TestNewWithOptions(t *testing.T) {
	console, err := New("proj",
		OptionEndpoint("http://localhost:9060"),
		OptionDataset("catalog"),
		OptionTable("works"),
		OptionDefaultLimit(0))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := console.Endpoint(), "http://localhost:9060"; got != want {
		t.Errorf("Endpoint() = %q, want %q", got, want)
	}
	if got, want := console.QualifiedTable(), "proj.catalog.works"; got != want {
		t.Errorf("QualifiedTable() = %q, want %q", got, want)
	}
	if console.defaultLimit != 0 {
		t.Errorf("defaultLimit = %d, want 0", console.defaultLimit)
	}
}

func TestOptionValidation(t *testing.T) {
	if _, err := New("proj", OptionEndpoint("")); err == nil {
		t.Error("New() with empty endpoint, want error")
	}
	if _, err := New("proj", OptionDefaultLimit(-1)); err == nil {
		t.Error("New() with negative limit, want error")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want util.ErrorKind
	}{
		{"not found", &googleapi.Error{Code: 404}, util.DatasetNotFound},
		{"wrapped not found", fmt.Errorf("listing: %w", &googleapi.Error{Code: 404}), util.DatasetNotFound},
		{"server error", &googleapi.Error{Code: 500}, util.QueryFailed},
		{"plain error", fmt.Errorf("connection refused"), util.QueryFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
