package state

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithEnv_Defaults(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	if env.start.IsZero() {
		t.Error("start time is not set")
	}
	if env.Log == nil {
		t.Error("default logger is not set")
	}
	if env.Out != os.Stdout {
		t.Error("default output must be STDOUT")
	}
	if env.Cfg != nil || env.Rpt != nil || env.Overwrite {
		t.Errorf("unexpected defaults %+v", env)
	}

	// default logger is usable before configuration is loaded
	env.Log.Info("nothing happens")
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when env is not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestEnvFromContext_Shared(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	EnvFromContext(ctx).Overwrite = true

	child, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if !EnvFromContext(child).Overwrite {
		t.Error("derived context must share environment")
	}
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if up := env.Uptime(); up < time.Second {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_StdLogRedirection(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("from standard logger")
	env.RestoreStdLog()

	entries := logs.FilterMessage("from standard logger").All()
	if len(entries) != 1 {
		t.Fatalf("expected redirected message, got %v", logs.All())
	}
}

func TestLocalEnv_NilLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("nothing to redirect to without logger")
	}
	env.RestoreStdLog()
}
