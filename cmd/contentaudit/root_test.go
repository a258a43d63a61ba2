package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command structure.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("command has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "contentaudit" {
			t.Errorf("expected Use to be 'contentaudit', got %q", cmd.Use)
		}
	})

	t.Run("command has all subcommands", func(t *testing.T) {
		t.Parallel()

		expected := map[string]bool{
			"audit":   false,
			"phases":  false,
			"version": false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := expected[sub.Name()]; ok {
				expected[sub.Name()] = true
			}
		}
		for name, found := range expected {
			if !found {
				t.Errorf("expected subcommand %q to be registered", name)
			}
		}
	})

	t.Run("command has persistent verbose flag", func(t *testing.T) {
		t.Parallel()

		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected persistent verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
	})

	t.Run("help mentions phases and scoring", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--help"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "audit") {
			t.Errorf("expected help to mention the audit command, got:\n%s", output)
		}
	})
}
