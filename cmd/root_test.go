/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// runBisect invokes Execute with the real process streams swapped for
// pipes, exactly as a shell invocation would see them.
func runBisect(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Args = append([]string{"bisect"}, args...)
	os.Stdout = wOut
	os.Stderr = wErr
	defer func() {
		os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	}()

	outCh := make(chan string, 1)
	errCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	exitCode = Execute()

	_ = wOut.Close()
	_ = wErr.Close()
	stdout = <-outCh
	stderr = <-errCh
	_ = rOut.Close()
	_ = rErr.Close()
	return stdout, stderr, exitCode
}

// The index goes to stdout and nothing else; stderr carries nothing on
// success so pipelines like `idx=$(bisect search ...)` stay clean.
func TestExecuteStreamRouting(t *testing.T) {
	stdout, stderr, code := runBisect(t,
		"search", "--target=5", "--", "-10", "-5", "0", "2", "5", "10", "15", "20", "25")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stdout != "4\n" {
		t.Fatalf("stdout = %q, want %q", stdout, "4\n")
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want empty", stderr)
	}
}

func TestExecuteNotFoundSilent(t *testing.T) {
	stdout, stderr, code := runBisect(t,
		"search", "--target=7", "--", "-10", "-5", "0", "2", "5", "10", "15", "20", "25")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty", stdout)
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want empty", stderr)
	}
}

func TestExecuteErrorOnStderr(t *testing.T) {
	stdout, stderr, code := runBisect(t, "search", "--type=bool", "--target=1", "--", "0", "1")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty", stdout)
	}
	if stderr == "" {
		t.Fatal("stderr is empty, want an error message")
	}
}
