package main

import (
	"bytes"
	"testing"
)

// isolate points the settings lookup at an empty home so the developer's
// own config never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	for _, key := range []string{"EVENTUI_THEME", "EVENTUI_WIDTH", "EVENTUI_STORIES", "EVENTUI_LOG_LEVEL", "EVENTUI_LOG_HUMAN"} {
		t.Setenv(key, "")
	}
	return home
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolate(t)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
