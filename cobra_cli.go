package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
mistral-agent-hinode converts the Hinode documentation repository into
supervised fine-tuning data. It clones the docs repo, walks its markdown
files, extracts {{< name key=value >}} shortcode invocations, and writes:

  • training_data.jsonl — plain Q&A pairs from front matter plus synthetic
    use_hinode_shortcode tool-call conversations, one JSON object per line
  • content.txt — the raw markdown corpus joined by a --- separator

Configuration comes from flags, the environment, or a .env file
(REPO_URL, REPO_BRANCH, OUTPUT_DIR, CLONE_DIR, LOG_FILE, LOG_LEVEL),
with flags taking precedence. A bare invocation processes
https://github.com/gethinode/docs.git at main into ./output.
`

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	cfg := loadConfig()
	cmd := &cobra.Command{
		Use:           "mistral-agent-hinode [flags]",
		Short:         "Build fine-tuning data from the Hinode docs",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&cfg.RepoURL, "repo", cfg.RepoURL, "git URL of the documentation repository")
	flags.StringVar(&cfg.Branch, "branch", cfg.Branch, "branch to check out")
	flags.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for generated files")
	flags.StringVar(&cfg.CloneDir, "clone-dir", cfg.CloneDir, "scratch directory for the working copy")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "run log destination, mirrors console output")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		logger, closeLog := newLogger(os.Stderr, cfg.LogFile, cfg.LogLevel)
		defer closeLog()
		a := &app{cfg: cfg, logger: logger, newID: randomID}
		return a.execute(ctx)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for mistral-agent-hinode.

The output should be evaluated by your shell. For example:

  # bash
  mistral-agent-hinode completion bash > /usr/local/etc/bash_completion.d/mistral-agent-hinode

  # zsh
  mistral-agent-hinode completion zsh > "${fpath[1]}/_mistral-agent-hinode"

  # fish
  mistral-agent-hinode completion fish | source

  # PowerShell
  mistral-agent-hinode completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  mistral-agent-hinode gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(args[0], 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, args[0])
	}
	return cmd
}
