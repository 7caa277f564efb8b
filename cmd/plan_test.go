package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fieldops/subnet-ctl/internal/errors"
)

// executeWith runs the root command with args against the given config
// file and captures its output. Flag state is reset between runs since
// the command tree is shared across tests.
func executeWith(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	planBinary = false
	planJSON = false
	planCmd.Flags().Lookup("binary").Changed = false
	planCmd.Flags().Lookup("json").Changed = false
	configPath = cfgPath
	t.Cleanup(func() { configPath = "" })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// execute runs with a throwaway config path, keeping tests independent
// of the user's real config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, filepath.Join(t.TempDir(), "config.toml"), args...)
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan", "192.168.1.0/24", "59", "15", "7", "2", "29")
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	for _, want := range []string{
		"HOSTS",
		"192.168.1.0/26",
		"192.168.1.64/27",
		"192.168.1.96/27",
		"192.168.1.128/28",
		"192.168.1.144/30",
		"192.168.1.148-192.168.1.255",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanCommandJSON(t *testing.T) {
	out, err := execute(t, "plan", "--json", "192.168.1.0/24", "59", "15", "7", "2", "29")
	if err != nil {
		t.Fatalf("plan --json failed: %v", err)
	}

	var got struct {
		Network string `json:"network"`
		Subnets []struct {
			HostsRequired int `json:"hosts_required"`
		} `json:"subnets"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if got.Network != "192.168.1.0/24" {
		t.Errorf("network = %s, want 192.168.1.0/24", got.Network)
	}
	if len(got.Subnets) != 5 {
		t.Errorf("got %d subnets, want 5", len(got.Subnets))
	}
}

func TestPlanCommandBinary(t *testing.T) {
	out, err := execute(t, "plan", "--binary", "192.168.1.0/24", "59")
	if err != nil {
		t.Fatalf("plan --binary failed: %v", err)
	}
	if !strings.Contains(out, "11000000.10101000.00000001.00000000/26") {
		t.Errorf("binary rendering missing:\n%s", out)
	}
}

func TestPlanCommandInvalidNetwork(t *testing.T) {
	_, err := execute(t, "plan", "not-a-network", "30")
	if err == nil {
		t.Fatal("plan with bad network succeeded, want error")
	}
	if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d", got, errors.ExitInvalidInput)
	}
}

func TestPlanCommandInvalidHosts(t *testing.T) {
	for _, hosts := range []string{"abc", "-5", "0"} {
		_, err := execute(t, "plan", "192.168.1.0/24", hosts)
		if err == nil {
			t.Fatalf("plan with hosts %q succeeded, want error", hosts)
		}
		if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
			t.Errorf("hosts %q: exit code = %d, want %d", hosts, got, errors.ExitInvalidInput)
		}
	}
}

func TestPlanCommandOutOfSpace(t *testing.T) {
	_, err := execute(t, "plan", "10.0.0.0/30", "5")
	if err == nil {
		t.Fatal("plan exceeding the network succeeded, want error")
	}
	if got := errors.GetExitCode(err); got != errors.ExitOutOfSpace {
		t.Errorf("exit code = %d, want %d", got, errors.ExitOutOfSpace)
	}
}

func TestPlanCommandOutOfSpacePartial(t *testing.T) {
	out, err := execute(t, "plan", "10.0.0.0/25", "60", "60", "60")
	if err == nil {
		t.Fatal("plan exceeding the network succeeded, want error")
	}
	if got := errors.GetExitCode(err); got != errors.ExitOutOfSpace {
		t.Errorf("exit code = %d, want %d", got, errors.ExitOutOfSpace)
	}
	// The two blocks that fit are still reported.
	for _, want := range []string{"10.0.0.0/26", "10.0.0.64/26"} {
		if !strings.Contains(out, want) {
			t.Errorf("partial output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanCommandConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("binary = true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, err := executeWith(t, path, "plan", "192.168.1.0/24", "59")
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if !strings.Contains(out, "11000000.10101000.00000001.00000000/26") {
		t.Errorf("configured binary default not applied:\n%s", out)
	}
}

func TestPlanCommandBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("table_rows = [broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := executeWith(t, path, "plan", "192.168.1.0/24", "59")
	if err == nil {
		t.Fatal("plan with malformed config succeeded, want error")
	}
	if got := errors.GetExitCode(err); got != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", got, errors.ExitConfigError)
	}
}
