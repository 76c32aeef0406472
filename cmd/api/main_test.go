package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), appName+" version "+Version) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSeedCommandPrintsEmbeddedSeed(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range []string{"Champeta", "Luna", "Rocky", "Mia", "Toby"} {
		if !strings.Contains(out.String(), "name: "+name) {
			t.Fatalf("seed output missing %s:\n%s", name, out.String())
		}
	}
}

func TestSeedCommandMissingFile(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed", "--file", "does-not-exist.yaml"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
