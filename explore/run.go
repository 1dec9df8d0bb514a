package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twexp/config"
	"twexp/state"
	"twexp/tree"
)

// Run is "parse" command action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = env.Cfg.Parser.StylesheetPath
	}
	if len(src) == 0 {
		return errors.New("no input stylesheet has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Output.Format
	if f := cmd.String("format"); len(f) > 0 {
		if format, err = config.ParseOutputFmt(f); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Output.Format))
			format = env.Cfg.Output.Format
		}
	}
	mode := env.Cfg.Parser.Extractor
	if m := cmd.String("extractor"); len(m) > 0 {
		if mode, err = config.ParseExtractorMode(m); err != nil {
			log.Warn("Unknown extractor requested, using configured one", zap.Error(err), zap.Stringer("extractor", env.Cfg.Parser.Extractor))
			mode = env.Cfg.Parser.Extractor
		}
	}
	env.Overwrite = cmd.Bool("overwrite")

	var leaf *tree.Leaf
	if path := cmd.String("leaf"); len(path) > 0 {
		l, err := resolveLeaf(path)
		if err != nil {
			return err
		}
		leaf = &l
	}

	dst, err := resolveDestination(src, cmd.Args().Get(1), format, env)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", displayName(dst)),
		zap.Stringer("format", format), zap.Stringer("extractor", mode))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	doc, err := NewParser(mode, log).ParseFile(ctx, src)
	if err != nil {
		return err
	}
	log.Info("Stylesheet parsed", doc.Fields()...)

	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy("source/"+filepath.Base(src), src); err != nil {
			log.Warn("Unable to store source in debug report", zap.Error(err))
		}
		env.Rpt.StoreData("debug/categories.txt", []byte(doc.Categories.String()))
	}

	var result any = doc
	if leaf != nil {
		result = doc.Categories.Entries(*leaf)
	}
	return writeResult(dst, result, format, env, log)
}

// resolveLeaf reports available children when path names a group.
func resolveLeaf(path string) (tree.Leaf, error) {
	l, err := tree.LeafByPath(path)
	if err == nil {
		return l, nil
	}
	if children, cerr := tree.Children(path); cerr == nil {
		return 0, fmt.Errorf("%q is not a leaf category, select one of: %s", path, strings.Join(children, ", "))
	}
	return 0, err
}

func displayName(dst string) string {
	if len(dst) == 0 {
		return "STDOUT"
	}
	return dst
}

func writeResult(dst string, v any, format config.OutputFmt, env *state.LocalEnv, log *zap.Logger) (err error) {
	var out io.Writer = env.Out
	if len(dst) > 0 {
		f, err := CreateOutput(dst, env, log)
		if err != nil {
			return err
		}
		defer func() { err = CloseOutput(f, err, log) }()
		out = f
	}

	if err := encode(out, v, format, env.Cfg.Output.Indent); err != nil {
		return fmt.Errorf("unable to write result to %s: %w", displayName(dst), err)
	}

	if env.Rpt != nil && len(dst) > 0 {
		env.Rpt.Store("result/"+filepath.Base(dst), dst)
	}
	return nil
}
