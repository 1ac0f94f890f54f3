// # mistral-agent-hinode
//
// `mistral-agent-hinode` turns the Hinode documentation repository into
// supervised fine-tuning data. It clones the docs repo, walks every
// markdown file, splits front matter from body content, lifts Hugo-style
// shortcode invocations (`{{< name key=value ... >}}`) out of the body,
// and writes two artifacts:
//
//   - `training_data.jsonl`: one training example per line. Documents
//     with a title and description yield a plain Q&A pair; every
//     shortcode yields a synthetic tool-call conversation exercising a
//     `use_hinode_shortcode` function, schema attached.
//   - `content.txt`: the raw markdown corpus, documents joined by a
//     `---` separator line.
//
// ## Usage
//
//	mistral-agent-hinode [flags]
//
// A bare invocation clones https://github.com/gethinode/docs.git at
// `main` and writes into `./output`. Every knob can come from the
// environment (a `.env` file is honored) or from flags:
//
//   - `--repo` / `REPO_URL`: git URL of the documentation repository.
//   - `--branch` / `REPO_BRANCH`: branch to check out.
//   - `--output-dir` / `OUTPUT_DIR`: destination for generated files.
//   - `--clone-dir` / `CLONE_DIR`: scratch directory for the working
//     copy; removed again when the run ends, success or not.
//   - `--log-file` / `LOG_FILE`: run log mirroring console output.
//   - `--log-level` / `LOG_LEVEL`: debug, info, warn, or error.
//
// Flags win over environment values.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	mistral-agent-hinode completion bash        # bash
//	mistral-agent-hinode completion zsh         # zsh
//	mistral-agent-hinode completion fish | source
//	mistral-agent-hinode completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `gen-docs` writes a Markdown reference file per CLI command, handy for
// publishing the CLI reference with the rest of a project's docs:
//
//	mistral-agent-hinode gen-docs ./docs/cli
//
// ## Failure Model
//
// Clone and output-write failures abort the run with a non-zero exit.
// A markdown file that cannot be processed is logged and skipped; it
// contributes nothing to either artifact. The scratch clone directory
// is removed on every exit path; removal problems are warnings only.
package main
