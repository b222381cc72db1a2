package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validDocument = `{
  "training_dataset": {
    "data": [
      {"query": "hello there", "response": "Hi! How can I help?", "intent": "greeting"},
      {"query": "where is my order", "response": "Let me check.", "intent": "order_status"},
      {"query": "cancel my order", "response": "Done.", "intent": "order_cancel"}
    ]
  }
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadValidDocument(t *testing.T) {
	t.Parallel()

	samples, err := Load(writeDataset(t, validDocument), LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("loaded %d samples, want 3", len(samples))
	}
	if samples[0].Intent != "greeting" || samples[0].Query != "hello there" {
		t.Fatalf("unexpected first sample %+v", samples[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), LoadOptions{})
	if !errors.Is(err, ErrDatasetMissing) {
		t.Fatalf("err = %v, want ErrDatasetMissing", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: "{not json"},
		{name: "missing wrapper", content: `{"data": []}`},
		{name: "missing data", content: `{"training_dataset": {}}`},
		{
			name: "record without intent",
			content: `{"training_dataset": {"data": [
				{"query": "hello", "response": "hi", "intent": ""}
			]}}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeDataset(t, tt.content), LoadOptions{})
			if !errors.Is(err, ErrDatasetMalformed) {
				t.Fatalf("err = %v, want ErrDatasetMalformed", err)
			}
		})
	}
}

func TestLoadIntentFilters(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, validDocument)

	included, err := Load(path, LoadOptions{IncludeIntents: []string{"order_*"}})
	if err != nil {
		t.Fatalf("Load include: %v", err)
	}
	if len(included) != 2 {
		t.Fatalf("include filter kept %d samples, want 2", len(included))
	}

	excluded, err := Load(path, LoadOptions{ExcludeIntents: []string{"order_cancel"}})
	if err != nil {
		t.Fatalf("Load exclude: %v", err)
	}
	if len(excluded) != 2 {
		t.Fatalf("exclude filter kept %d samples, want 2", len(excluded))
	}
	for _, sample := range excluded {
		if sample.Intent == "order_cancel" {
			t.Fatalf("excluded intent survived the filter")
		}
	}
}
