package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--help"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "mistral-agent-hinode [flags]")
	assertContains(t, out, "--repo")
	assertContains(t, out, "--branch")
	assertContains(t, out, "--output-dir")
	assertContains(t, out, "--clone-dir")
	assertContains(t, out, "--log-file")
	assertContains(t, out, "Generate shell completion scripts")
}

func TestVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--version"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, buf.String(), Version)
}

func TestRejectsPositionalArgs(t *testing.T) {
	if err := run([]string{"unexpected"}, io.Discard); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"completion", "bash"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected completion output")
	}
	assertContains(t, buf.String(), "__start_mistral-agent-hinode")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	if err := run([]string{"completion", "tcsh"}, io.Discard); err == nil {
		t.Fatal("expected unknown shell to be rejected")
	}
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	if err := run([]string{"gen-docs", tmp}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected CLI docs to be written")
	}
	var foundRoot bool
	for _, f := range files {
		if f.Name() == "mistral-agent-hinode.md" {
			foundRoot = true
			break
		}
	}
	if !foundRoot {
		t.Fatalf("expected mistral-agent-hinode.md in docs output, got %v", files)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("REPO_URL", "https://example.com/env.git")
	cmd := newRootCmd(io.Discard)
	if err := cmd.ParseFlags([]string{"--repo", "https://example.com/flag.git"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	got, err := cmd.Flags().GetString("repo")
	if err != nil {
		t.Fatalf("get flag: %v", err)
	}
	if got != "https://example.com/flag.git" {
		t.Fatalf("expected flag to win over environment, got %q", got)
	}
}

func TestEnvironmentProvidesFlagDefault(t *testing.T) {
	t.Setenv("REPO_URL", "https://example.com/env.git")
	cmd := newRootCmd(io.Discard)
	got, err := cmd.Flags().GetString("repo")
	if err != nil {
		t.Fatalf("get flag: %v", err)
	}
	if got != "https://example.com/env.git" {
		t.Fatalf("expected environment default, got %q", got)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}
