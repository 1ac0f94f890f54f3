package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOutputs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	examples := []TrainingExample{
		{Messages: []Message{
			{Role: "user", Content: "What is Card used for?"},
			{Role: "assistant", Content: "A card component"},
		}},
		synthesizer{newID: fixedID("abc123XYZ")}.toolExample(ShortcodeExample{
			Name:       "card",
			Parameters: map[string]string{"title": "Hello"},
		}),
	}
	corpus := []string{"first document", "second document"}

	if err := writeOutputs(dir, examples, corpus); err != nil {
		t.Fatalf("writeOutputs: %v", err)
	}

	jsonl, err := os.ReadFile(filepath.Join(dir, "training_data.jsonl"))
	if err != nil {
		t.Fatalf("read jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(jsonl), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL lines, got %d", len(lines))
	}
	for i, line := range lines {
		var ex TrainingExample
		if err := json.Unmarshal([]byte(line), &ex); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if len(ex.Messages) == 0 {
			t.Fatalf("line %d has no messages: %s", i, line)
		}
	}

	content, err := os.ReadFile(filepath.Join(dir, "content.txt"))
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if string(content) != "first document\n\n---\n\nsecond document" {
		t.Fatalf("unexpected corpus: %q", content)
	}
}

func TestWriteOutputsPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var examples []TrainingExample
	for _, q := range []string{"one", "two", "three"} {
		examples = append(examples, TrainingExample{Messages: []Message{{Role: "user", Content: q}}})
	}
	if err := writeOutputs(dir, examples, nil); err != nil {
		t.Fatalf("writeOutputs: %v", err)
	}
	jsonl, err := os.ReadFile(filepath.Join(dir, "training_data.jsonl"))
	if err != nil {
		t.Fatalf("read jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(jsonl), "\n"), "\n")
	for i, want := range []string{"one", "two", "three"} {
		var ex TrainingExample
		if err := json.Unmarshal([]byte(lines[i]), &ex); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if ex.Messages[0].Content != want {
			t.Fatalf("expected line %d to be %q, got %q", i, want, ex.Messages[0].Content)
		}
	}
}

func TestWriteOutputsEmptyRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := writeOutputs(dir, nil, nil); err != nil {
		t.Fatalf("writeOutputs: %v", err)
	}
	jsonl, err := os.ReadFile(filepath.Join(dir, "training_data.jsonl"))
	if err != nil {
		t.Fatalf("read jsonl: %v", err)
	}
	if len(jsonl) != 0 {
		t.Fatalf("expected empty jsonl, got %q", jsonl)
	}
	content, err := os.ReadFile(filepath.Join(dir, "content.txt"))
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if len(content) != 0 {
		t.Fatalf("expected empty content, got %q", content)
	}
}

func TestWriteOutputsFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	mustWrite(t, file, "not a directory")
	if err := writeOutputs(filepath.Join(file, "out"), nil, nil); err == nil {
		t.Fatal("expected an error when the output dir cannot be created")
	}
}
