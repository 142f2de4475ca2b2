package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func newFlagCmd() (*cobra.Command, *string, *int) {
	var s string
	var n int
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&s, "name", "default", "")
	cmd.Flags().IntVar(&n, "count", 60, "")
	return cmd, &s, &n
}

func TestEnvStringFillsUnsetFlag(t *testing.T) {
	t.Setenv("RUNNER_TEST_NAME", "from-env")
	cmd, s, _ := newFlagCmd()

	envString(cmd, "name", "RUNNER_TEST_NAME", s)
	if *s != "from-env" {
		t.Errorf("expected env value, got %q", *s)
	}
}

func TestEnvStringKeepsExplicitFlag(t *testing.T) {
	t.Setenv("RUNNER_TEST_NAME", "from-env")
	cmd, s, _ := newFlagCmd()
	if err := cmd.Flags().Set("name", "from-flag"); err != nil {
		t.Fatal(err)
	}

	envString(cmd, "name", "RUNNER_TEST_NAME", s)
	if *s != "from-flag" {
		t.Errorf("explicit flag should win, got %q", *s)
	}
}

func TestEnvStringIgnoresEmpty(t *testing.T) {
	t.Setenv("RUNNER_TEST_NAME", "")
	cmd, s, _ := newFlagCmd()

	envString(cmd, "name", "RUNNER_TEST_NAME", s)
	if *s != "default" {
		t.Errorf("empty variable should keep default, got %q", *s)
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"number", "30", 30, false},
		{"empty", "", 60, false},
		{"garbage", "fast", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RUNNER_TEST_FPS", tt.value)
			cmd, _, n := newFlagCmd()

			err := envInt(cmd, "count", "RUNNER_TEST_FPS", n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("envInt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if *n != tt.want {
				t.Errorf("envInt() = %d, expected %d", *n, tt.want)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}
