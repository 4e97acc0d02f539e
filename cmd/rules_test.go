package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alguides/fmlint/internal/rules"
)

func TestRules_YAMLOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := RunCLI(NewRulesCmd(), nil, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"required:", "forbidden:", "areas:", "naming-conventions", "title_max: 100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRules_JSONOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := RunCLI(NewRulesCmd(), []string{"--format", "json"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}

	var rs rules.RuleSet
	if err := json.Unmarshal(stdout.Bytes(), &rs); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if len(rs.Difficulties) != 4 {
		t.Errorf("difficulties = %v, want 4 entries", rs.Difficulties)
	}
	if rs.DescriptionMax != 200 {
		t.Errorf("DescriptionMax = %d, want 200", rs.DescriptionMax)
	}
}

func TestVersionCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := RunCLI(NewVersionCmd(), nil, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "fmlint") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{"validate": false, "rules": false, "version": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
