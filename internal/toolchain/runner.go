package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"
)

// DefaultCompileTimeout bounds one external compile invocation.
const DefaultCompileTimeout = 60 * time.Second

// Runner invokes an external Arduino compiler binary (arduino-cli by
// default) and turns its output into diagnostics.
type Runner struct {
	// Binary is the compiler executable; empty means "arduino-cli".
	Binary string
	// Timeout bounds each compile; zero means DefaultCompileTimeout.
	Timeout time.Duration
}

// CompileResult is the outcome of one compile job.
type CompileResult struct {
	// JobID uniquely identifies this invocation in logs and reports.
	JobID       string       `json:"job_id"`
	OK          bool         `json:"ok"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	// RawOutput is the compiler's combined stderr, kept for messages the
	// diagnostic regex doesn't cover.
	RawOutput string        `json:"raw_output,omitempty"`
	Took      time.Duration `json:"took"`
}

// Compile builds sketchPath for the given fully-qualified board name.
// A failed compile is not an error: the result carries the diagnostics and
// OK=false. Errors are reserved for not being able to run the compiler at
// all (missing binary, timeout).
func (r *Runner) Compile(ctx context.Context, sketchPath, fqbn string) (*CompileResult, error) {
	binary := r.Binary
	if binary == "" {
		binary = "arduino-cli"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultCompileTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, binary, "compile", "--fqbn", fqbn, sketchPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	jobID := uuid.New().String()
	start := time.Now()
	runErr := cmd.Run()
	took := time.Since(start)

	if execCtx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("compile job %s timed out after %s", jobID, timeout)
	}

	diags := ParseDiagnostics(stderr.String())

	if runErr != nil {
		// Non-zero exit with parseable diagnostics is a normal failed
		// compile; anything else means the toolchain itself broke.
		if _, isExit := runErr.(*exec.ExitError); !isExit {
			return nil, fmt.Errorf("running %s: %w", binary, runErr)
		}
	}

	return &CompileResult{
		JobID:       jobID,
		OK:          runErr == nil && !HasErrors(diags),
		Diagnostics: diags,
		RawOutput:   stderr.String(),
		Took:        took,
	}, nil
}
