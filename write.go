package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	trainingFileName = "training_data.jsonl"
	contentFileName  = "content.txt"
	corpusSeparator  = "\n\n---\n\n"
)

// writeOutputs serializes the run's artifacts: one JSON object per line
// for the training examples, and the raw corpus joined by the document
// separator. Either failure is fatal to the run.
func writeOutputs(outputDir string, examples []TrainingExample, corpus []string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i := range examples {
		if err := enc.Encode(&examples[i]); err != nil {
			return fmt.Errorf("encode training example: %w", err)
		}
	}
	if err := os.WriteFile(filepath.Join(outputDir, trainingFileName), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", trainingFileName, err)
	}

	joined := strings.Join(corpus, corpusSeparator)
	if err := os.WriteFile(filepath.Join(outputDir, contentFileName), []byte(joined), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", contentFileName, err)
	}
	return nil
}
