package preview

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twexp/catalog"
	"twexp/config"
	"twexp/explore"
	"twexp/state"
	"twexp/tree"
)

// Run is "preview" command action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("preview")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	env.Overwrite = cmd.Bool("overwrite")

	var (
		items    []Item
		category = cmd.String("category")
		class    = cmd.String("class")
	)
	if src := cmd.String("parsed"); len(src) > 0 {
		if items, err = parsedItems(ctx, src, env, log); err != nil {
			return err
		}
		if items, err = selectParsed(items, category, class); err != nil {
			return err
		}
	} else {
		if items, err = catalogItems(category, class); err != nil {
			return err
		}
	}

	dst, err := destination(cmd.Args().Get(0), env.Cfg)
	if err != nil {
		return err
	}

	log.Info("Rendering preview", zap.Int("classes", len(items)), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	opts := Options{
		Title:      env.Cfg.Preview.Title,
		DarkMode:   env.Cfg.Preview.DarkMode,
		SampleText: env.Cfg.Preview.SampleText,
	}

	var out io.Writer = env.Out
	if len(dst) > 0 {
		f, err := explore.CreateOutput(dst, env, log)
		if err != nil {
			return err
		}
		defer func() { err = explore.CloseOutput(f, err, log) }()
		out = f
	}
	if err := Render(out, items, opts); err != nil {
		return err
	}

	if env.Rpt != nil && len(dst) > 0 {
		env.Rpt.Store("preview/"+filepath.Base(dst), dst)
	}
	return nil
}

func catalogItems(category, class string) ([]Item, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	if len(category) > 0 {
		if c, err = c.Filter(category); err != nil {
			return nil, err
		}
	}
	if len(class) > 0 {
		it, ok := c.Find(class)
		if !ok {
			return nil, fmt.Errorf("unknown catalog class %q", class)
		}
		return FromCatalog([]catalog.Item{it}), nil
	}
	return FromCatalog(c.Flatten()), nil
}

// selectParsed keeps items of top level category and with class name when
// requested. Category is checked against the tree schema.
func selectParsed(items []Item, category, class string) ([]Item, error) {
	if len(category) > 0 {
		categories, _ := tree.Children("")
		if !slices.ContainsFunc(categories, func(c string) bool { return strings.EqualFold(c, category) }) {
			return nil, fmt.Errorf("unknown category %q, select one of: %s", category, strings.Join(categories, ", "))
		}
	}
	if len(category) == 0 && len(class) == 0 {
		return items, nil
	}

	var res []Item
	for _, it := range items {
		if len(category) > 0 && !strings.EqualFold(it.Category, category) {
			continue
		}
		if len(class) > 0 && it.Name != class {
			continue
		}
		res = append(res, it)
	}
	if len(class) > 0 && len(res) == 0 {
		return nil, fmt.Errorf("class %q not found in parsed stylesheet", class)
	}
	return res, nil
}

func parsedItems(ctx context.Context, src string, env *state.LocalEnv, log *zap.Logger) ([]Item, error) {
	src, err := filepath.Abs(src)
	if err != nil {
		return nil, err
	}
	doc, err := explore.NewParser(env.Cfg.Parser.Extractor, log).ParseFile(ctx, src)
	if err != nil {
		return nil, err
	}
	log.Info("Stylesheet parsed", doc.Fields()...)
	return FromTree(doc.Categories), nil
}

// destination returns output file path, empty for STDOUT. Directory gets
// file named after page title.
func destination(dst string, cfg *config.Config) (string, error) {
	if dst == "" {
		return "", nil
	}
	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		name := slug.Make(cfg.Preview.Title)
		if name == "" {
			name = "preview"
		}
		return filepath.Join(dst, fmt.Sprintf("%s.html", config.CleanFileName(name))), nil
	}
	return dst, nil
}
