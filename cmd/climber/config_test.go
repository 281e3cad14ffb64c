package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-climber/internal/config"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}

	var cfg config.ClimbConfig
	if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if cfg != config.DefaultClimbConfig() {
		t.Errorf("Printed config differs from the defaults:\n%s", out.String())
	}
}

func TestConfigCommandUnknownGame(t *testing.T) {
	err := runConfig(configCmd, []string{"clmb"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "climb"`) {
		t.Errorf("Expected a suggestion for a typo, got %v", err)
	}
}
