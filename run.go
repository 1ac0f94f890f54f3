package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// app wires the pipeline stages together with a resolved config and an
// injected logger.
type app struct {
	cfg    Config
	logger *slog.Logger
	newID  idGenerator
}

// fileResult is the outcome of processing one markdown file. A failed
// file carries its reason and contributes nothing downstream.
type fileResult struct {
	path     string
	examples []TrainingExample
	raw      string
	err      error
}

// execute runs the whole pipeline once: clone, walk, process each file,
// write outputs. The scratch clone directory is removed on every exit
// path.
func (a *app) execute(ctx context.Context) error {
	f := fetcher{logger: a.logger}
	defer f.cleanup(a.cfg.CloneDir)

	if err := f.clone(ctx, a.cfg.RepoURL, a.cfg.Branch, a.cfg.CloneDir); err != nil {
		a.logger.Error("failed to clone repository", "error", err)
		return err
	}

	examples, corpus, err := a.processDirectory(a.cfg.CloneDir)
	if err != nil {
		a.logger.Error("failed to process repository", "error", err)
		return err
	}

	if err := writeOutputs(a.cfg.OutputDir, examples, corpus); err != nil {
		a.logger.Error("failed to write outputs", "error", err)
		return err
	}
	a.logger.Info("outputs written", "dir", a.cfg.OutputDir, "examples", len(examples), "documents", len(corpus))
	return nil
}

// processDirectory walks root and aggregates per-file results. Failed
// files are logged and skipped; they never abort the batch.
func (a *app) processDirectory(root string) ([]TrainingExample, []string, error) {
	files, err := markdownFiles(root, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("list markdown files: %w", err)
	}

	synth := synthesizer{newID: a.newID}
	var examples []TrainingExample
	var corpus []string
	for _, path := range files {
		res := processFile(path, synth)
		if res.err != nil {
			a.logger.Error("failed to process file", "path", res.path, "error", res.err)
			continue
		}
		a.logger.Info("processed file", "path", res.path, "examples", len(res.examples))
		examples = append(examples, res.examples...)
		corpus = append(corpus, res.raw)
	}
	return examples, corpus, nil
}

// processFile reads one markdown file and synthesizes its training
// examples: at most one plain Q&A pair, plus one tool-call example per
// shortcode in the body.
func processFile(path string, synth synthesizer) fileResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	meta, body := parseDocument(source)
	var examples []TrainingExample
	if plain := synth.plainExample(meta); plain != nil {
		examples = append(examples, *plain)
	}
	for _, sc := range extractShortcodes(body) {
		examples = append(examples, synth.toolExample(sc))
	}
	return fileResult{path: path, examples: examples, raw: string(source)}
}
