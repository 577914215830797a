package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"cssprop/config"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Factory == nil {
		t.Error("Property factory not set")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Minute)}
	if uptime := env.Uptime(); uptime < time.Minute {
		t.Errorf("Uptime() = %v, expected at least a minute", uptime)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{Log: zaptest.NewLogger(t)}
		for i := range 2 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			log.Print("routed through zap")
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_NilCodePage(t *testing.T) {
	if env := newLocalEnv(); env.CodePage != nil {
		t.Error("Expected CodePage to be nil by default")
	}
}

func TestLocalEnv_NewDeclaration(t *testing.T) {
	const text = "padding-top: 1px; margin: 1px 2px"

	tests := []struct {
		name      string
		style     *config.StyleConfig
		longhands bool
		want      string
	}{
		{"no configuration", nil, false, "padding-top: 1px; margin: 1px 2px;"},
		{"defaults", &config.StyleConfig{PreferShorthands: true, Separator: " "}, false, "padding-top: 1px; margin: 1px 2px;"},
		{"natural order", &config.StyleConfig{PreferShorthands: true, Order: config.OutputOrderNatural, Separator: "\n"}, false,
			"margin: 1px 2px;\npadding-top: 1px;"},
		{"longhands from config", &config.StyleConfig{}, false,
			"padding-top: 1px; margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px;"},
		{"longhands forced", &config.StyleConfig{PreferShorthands: true}, true,
			"padding-top: 1px; margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := EnvFromContext(ContextWithEnv(context.Background()))
			env.Log = zaptest.NewLogger(t)
			if tt.style != nil {
				env.Cfg = &config.Config{Version: 1, Style: *tt.style}
			}

			d := env.NewDeclaration(tt.longhands)
			if err := d.SetCSSText(text); err != nil {
				t.Fatalf("SetCSSText() error = %v", err)
			}
			if got := d.CSSText(); got != tt.want {
				t.Errorf("CSSText() = %q, want %q", got, tt.want)
			}
		})
	}
}
