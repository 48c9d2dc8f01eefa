package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylegen/config"
	"stylegen/css"
	"stylegen/dividers"
	"stylegen/modstyle"
	"stylegen/state"
	"stylegen/statements"
	"stylegen/utils/debug"
)

func displayName(fname string) string {
	if len(fname) == 0 {
		return "STDOUT"
	}
	return fname
}

// writeOutput writes data to file or to STDOUT when fname is empty.
func writeOutput(fname string, overwrite bool, data []byte) (err error) {
	out := os.Stdout
	if len(fname) > 0 {
		if _, err := os.Stat(fname); err == nil && !overwrite {
			return fmt.Errorf("destination file '%s' already exists", fname)
		}
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer func() {
			err = multierr.Append(err, out.Close())
		}()
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("unable to write '%s': %w", displayName(fname), err)
	}
	return nil
}

func readPage(src string) (*modstyle.Page, error) {
	var r io.Reader = os.Stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("unable to open source: %w", err)
		}
		defer f.Close()
		r = f
	}
	ext := strings.ToLower(filepath.Ext(src))
	page, err := modstyle.Decode(r, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, fmt.Errorf("unable to read page '%s': %w", src, err)
	}
	return page, nil
}

// compilePage styles modules concurrently and joins results in module order.
func compilePage(ctx context.Context, styler *modstyle.Styler, page *modstyle.Page) (*statements.Result, error) {
	results := make([]*statements.Result, len(page.Modules))
	errs := make([]error, len(page.Modules))

	var wg sync.WaitGroup
	for i := range page.Modules {
		wg.Go(func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = styler.Module(&page.Modules[i])
		})
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return statements.Join(results...), nil
}

func runCompile(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no source has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)

	format, err := env.Cfg.Compiler.Format()
	if err != nil {
		return err
	}
	if f := cmd.String("format"); len(f) > 0 {
		if format, err = statements.ParseFormat(f); err != nil {
			return err
		}
	}
	asStyle := env.Cfg.Compiler.AsStyle || cmd.Bool("as-style")

	page, err := readPage(src)
	if err != nil {
		return err
	}
	res, err := compilePage(ctx, env.Styler, page)
	if err != nil {
		return fmt.Errorf("unable to compile '%s': %w", src, err)
	}
	text, err := res.Render(format, asStyle)
	if err != nil {
		return err
	}

	env.Log.Info("Compiled page", zap.String("source", src), zap.Int("modules", len(page.Modules)),
		zap.Int("statements", len(res.Statements)), zap.Stringer("format", format), zap.String("destination", displayName(dst)))
	return writeOutput(dst, cmd.Bool("overwrite"), []byte(text))
}

func runExplain(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no source has been specified")
	}
	page, err := readPage(cmd.Args().Get(0))
	if err != nil {
		return err
	}

	only := cmd.String("module")
	tw := debug.NewTreeWriter()
	found := false
	for i := range page.Modules {
		m := &page.Modules[i]
		if len(only) > 0 && m.OrderClass() != only {
			continue
		}
		found = true
		rows, err := env.Styler.Explain(m)
		if err != nil {
			return fmt.Errorf("unable to explain '%s': %w", m.OrderClass(), err)
		}
		modstyle.WriteExplanation(tw, m.OrderClass(), rows)

		if cmd.Bool("css") {
			res, err := env.Styler.Module(m)
			if err != nil {
				return err
			}
			tw.Line(1, "css")
			tw.Lines(2, res.Stylesheet().String())
		}
	}
	if !found {
		env.Log.Warn("Nothing to explain", zap.String("module", only))
		return nil
	}
	return writeOutput("", false, []byte(tw.String()))
}

func runDividersList(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)

	reg, err := env.Defaults.Dividers()
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, name := range reg.Names() {
		style, err := reg.Style(name)
		if err != nil {
			return err
		}
		_, flipTop := style.Source(dividers.Top)
		_, flipBottom := style.Source(dividers.Bottom)
		fmt.Fprintf(&sb, "%-16s repeatable=%-5t top=%s bottom=%s\n", name, style.Repeatable, origin(flipTop), origin(flipBottom))
	}
	env.Log.Debug("Listing divider styles", zap.Int("count", reg.Len()))
	return writeOutput("", false, []byte(sb.String()))
}

func origin(flipped bool) string {
	if flipped {
		return "flipped"
	}
	return "own"
}

func runDividersPreview(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no divider style has been specified")
	}
	name := cmd.Args().Get(0)
	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = config.SafeFileName(name) + ".png"
	}

	reg, err := env.Defaults.Dividers()
	if err != nil {
		return err
	}
	style, err := reg.Style(name)
	if err != nil {
		return err
	}
	if err := style.SavePreview(dst, cmd.String("color"), int(cmd.Int("width"))); err != nil {
		return err
	}
	env.Log.Info("Divider preview saved", zap.String("style", name), zap.String("file", dst))
	return nil
}

func runLint(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no source has been specified")
	}
	src := cmd.Args().Get(0)
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}

	sheet := css.NewParser(env.Log).Parse(data, src)
	tw := debug.NewTreeWriter()
	tw.Line(0, "%s", src)
	for _, item := range sheet.Items {
		switch {
		case item.Rule != nil:
			tw.Line(1, "%s (%d)", item.Rule.Selector, len(item.Rule.Declarations))
		case item.MediaBlock != nil:
			tw.Line(1, "%s", item.MediaBlock.Query)
			for _, r := range item.MediaBlock.Rules {
				tw.Line(2, "%s (%d)", r.Selector, len(r.Declarations))
			}
		}
	}
	for _, w := range sheet.Warnings {
		env.Log.Warn("CSS problem", zap.String("source", src), zap.String("details", w))
	}
	env.Log.Info("Linted stylesheet", zap.String("source", src), zap.Int("rules", len(sheet.Rules())), zap.Int("warnings", len(sheet.Warnings)))
	return writeOutput("", false, []byte(tw.String()))
}
