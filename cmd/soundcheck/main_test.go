package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// execMainEnv makes the test binary behave as the soundcheck binary.
const execMainEnv = "SOUNDCHECK_EXEC_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(execMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func command(args ...string) *exec.Cmd {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), execMainEnv+"=1")
	return cmd
}

func TestProcess_PrintsLineAndExitsZero(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"--foo", "bar", "baz"},
		{"__complete", "x"},
	} {
		var stdout, stderr bytes.Buffer
		cmd := command(args...)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			t.Fatalf("args %q: run: %v (stderr %q)", args, err, stderr.String())
		}
		if stdout.String() != "sound imported\n" {
			t.Fatalf("args %q: stdout = %q", args, stdout.String())
		}
		if stderr.Len() != 0 {
			t.Fatalf("args %q: stderr = %q", args, stderr.String())
		}
	}
}

func TestProcess_WriteFailureExitsOne(t *testing.T) {
	full, err := os.OpenFile("/dev/full", os.O_WRONLY, 0)
	if err != nil {
		t.Skipf("/dev/full unavailable: %v", err)
	}
	defer full.Close()

	var stderr bytes.Buffer
	cmd := command()
	cmd.Stdout = full
	cmd.Stderr = &stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if code := exitErr.ExitCode(); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "write output") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
