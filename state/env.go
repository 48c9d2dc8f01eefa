// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"stylegen/config"
	"stylegen/defaults"
	"stylegen/modstyle"
	"stylegen/statements"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	// built by Prepare from configuration
	Defaults *defaults.Cache
	Compiler *statements.Compiler
	Styler   *modstyle.Styler

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

// Prepare builds defaults cache, compiler and styler from loaded
// configuration. Cfg and Log must be set.
func (e *LocalEnv) Prepare() error {
	if e.Cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	var opts []defaults.Option
	if dir := e.Cfg.Dividers.Dir; dir != "" {
		opts = append(opts, defaults.WithDividersDir(filepath.Clean(dir)))
	}
	e.Defaults = defaults.New(log, opts...)
	e.Compiler = statements.New(e.Cfg.Compiler.Settings(), e.Cfg.Variables.Resolver(log), log)

	var sopts []modstyle.Option
	if tmpl := e.Cfg.Compiler.SelectorTemplate; tmpl != "" {
		sopts = append(sopts, modstyle.WithSelectorTemplate(tmpl))
	}
	e.Styler = modstyle.NewStyler(e.Compiler, e.Defaults, log, sopts...)
	return nil
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
