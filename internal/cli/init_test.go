package cli

import (
	"bytes"
	"strings"
	"testing"

	"spendlog/internal/config"
)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"component":"app"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}

func TestLoadAndValidateConfig(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("TOP_N", "3")
	cfg, err := LoadAndValidateConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataBackend != "memory" || cfg.TopN != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv("DATA_BACKEND", "sheets")
	t.Setenv("TOP_N", "0")
	_, err = LoadAndValidateConfig()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"invalid data backend", "invalid top n"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error missing %q: %v", want, err)
		}
	}
}
