// Package cmdtest runs in-process CLI commands against YAML-described
// cases: arguments, environment and stdin in, expected stdout, stderr and
// exit code out.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is a single CLI invocation.
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`  // key of the Register call
	Args        []string          `yaml:"args"` // argument array, sidesteps quoting issues
	Env         map[string]string `yaml:"env"`
	Stdin       string            `yaml:"stdin"`
	Expect      struct {
		Stdout   string `yaml:"stdout"`
		Stderr   string `yaml:"stderr"`
		ExitCode int    `yaml:"exitCode"`
	} `yaml:"expect"`
}

// Group holds all cases of one YAML file.
type Group struct {
	Name  string
	Tests []Case `yaml:"tests"`
}

// Suite is a set of case groups plus the commands they may invoke.
type Suite struct {
	groups   []*Group
	commands map[string]func() int
	mu       sync.Mutex
}

// Read loads every .yaml/.yml file under dir. A file is either a mapping
// with a "tests" sequence or a bare sequence of cases.
func Read(dir string) (*Suite, error) {
	suite := &Suite{
		commands: make(map[string]func() int),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var group Group
		if err := yaml.Unmarshal(content, &group); err != nil || len(group.Tests) == 0 {
			if err := yaml.Unmarshal(content, &group.Tests); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
		}
		if len(group.Tests) == 0 {
			return fmt.Errorf("%s: no tests", path)
		}
		group.Name = filepath.Base(path)
		suite.groups = append(suite.groups, &group)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return suite, nil
}

// Register maps a cmd name used in YAML files to an implementation
// returning an exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case as a subtest.
func (s *Suite) Run(t *testing.T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		g := group
		t.Run(g.Name, func(t *testing.T) {
			for i := range g.Tests {
				test := &g.Tests[i]
				name := test.Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runSingleTest(t, test)
				})
			}
		})
	}
}

func (s *Suite) runSingleTest(t *testing.T, test *Case) {
	runFunc, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("Command '%s' not registered", test.Cmd)
	}

	// save the process state the case is about to hijack
	oldArgs := os.Args
	oldStdin := os.Stdin
	oldStdout := os.Stdout
	oldStderr := os.Stderr
	type envSnapshot struct {
		value  string
		exists bool
	}
	oldEnv := make(map[string]envSnapshot)
	for k := range test.Env {
		val, exists := os.LookupEnv(k)
		oldEnv[k] = envSnapshot{value: val, exists: exists}
	}

	os.Args = append([]string{test.Cmd}, test.Args...)
	for k, v := range test.Env {
		os.Setenv(k, v)
	}

	rIn, wIn, _ := os.Pipe()
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdin = rIn
	os.Stdout = wOut
	os.Stderr = wErr

	go func() {
		_, _ = io.WriteString(wIn, test.Stdin)
		_ = wIn.Close()
	}()

	var exitCode int
	done := make(chan struct{}, 2)
	var gotStdout, gotStderr string

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		gotStdout = buf.String()
		done <- struct{}{}
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		gotStderr = buf.String()
		done <- struct{}{}
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				exitCode = -1
			}
		}()
		exitCode = runFunc()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	<-done
	<-done
	_ = rIn.Close()
	_ = rOut.Close()
	_ = rErr.Close()

	os.Stdin = oldStdin
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	os.Args = oldArgs
	for k, snap := range oldEnv {
		if snap.exists {
			os.Setenv(k, snap.value)
		} else {
			os.Unsetenv(k)
		}
	}

	if exitCode != test.Expect.ExitCode {
		t.Errorf("ExitCode mismatch:\nExpected: %d\nActual:   %d", test.Expect.ExitCode, exitCode)
	}
	if gotStdout != test.Expect.Stdout {
		t.Errorf("Stdout mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stdout, gotStdout)
	}
	if gotStderr != test.Expect.Stderr {
		t.Errorf("Stderr mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stderr, gotStderr)
	}
}
