// Package gitx wraps invocations of the git binary.
//
// All interaction with git goes through the Runner interface, which reports
// only an exit-status boolean plus captured stdout/stderr. Git gives us no
// structured error codes at this boundary, so callers decide what a failed
// invocation means.
package gitx

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Result is the outcome of a single git invocation.
type Result struct {
	// OK is true if git exited with status zero.
	OK bool

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error (git's diagnostic text).
	Stderr string
}

// Runner executes git with the given arguments.
type Runner interface {
	// Run executes git in dir and returns the captured result.
	// Spawn failures are reported the same way as non-zero exits.
	Run(dir string, args ...string) Result
}

// RealRunner implements Runner by spawning the git binary.
type RealRunner struct {
	logger *log.Logger
}

// NewRealRunner creates a new RealRunner.
func NewRealRunner(logger *log.Logger) *RealRunner {
	return &RealRunner{logger: logger}
}

// Run executes git in dir, blocking until it exits.
func (r *RealRunner) Run(dir string, args ...string) Result {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		OK:     err == nil,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if r.logger != nil {
		r.logger.Debug("git", "args", args, "dir", dir, "ok", res.OK)
	}

	return res
}

// FakeCall records a single invocation made against a FakeRunner.
type FakeCall struct {
	Dir  string
	Args []string
}

// FakeRunner implements Runner with scripted responses for testing.
type FakeRunner struct {
	// Calls records every invocation in order.
	Calls []FakeCall

	responses map[string]Result
	defaultOK bool
}

// NewFakeRunner creates a FakeRunner that succeeds with empty output for
// every invocation not explicitly scripted.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		responses: make(map[string]Result),
		defaultOK: true,
	}
}

// Respond scripts the result for an invocation matching args exactly.
func (f *FakeRunner) Respond(res Result, args ...string) {
	f.responses[callKey(args)] = res
}

// FailAll discards any scripted responses and makes every invocation fail
// with the given stderr.
func (f *FakeRunner) FailAll(stderr string) {
	f.defaultOK = false
	for k := range f.responses {
		delete(f.responses, k)
	}
	f.responses["*"] = Result{OK: false, Stderr: stderr}
}

// Run returns the scripted result for args, or the default.
func (f *FakeRunner) Run(dir string, args ...string) Result {
	f.Calls = append(f.Calls, FakeCall{Dir: dir, Args: args})

	if res, ok := f.responses[callKey(args)]; ok {
		return res
	}
	if res, ok := f.responses["*"]; ok {
		return res
	}
	return Result{OK: f.defaultOK}
}

func callKey(args []string) string {
	return strings.Join(args, "\x00")
}
