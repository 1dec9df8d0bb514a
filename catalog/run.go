package catalog

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"twexp/state"
)

// Run is "catalog" command action.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("catalog")

	c, err := Load()
	if err != nil {
		return err
	}
	if name := cmd.String("category"); len(name) > 0 {
		if c, err = c.Filter(name); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	log.Debug("Listing catalog", zap.Int("categories", len(c.Categories)), zap.Int("classes", len(c.Flatten())))

	if cmd.Bool("yaml") {
		return writeYAML(env.Out, c)
	}
	_, err = io.WriteString(env.Out, c.String())
	return err
}

func writeYAML(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Categories); err != nil {
		return fmt.Errorf("unable to encode catalog: %w", err)
	}
	return enc.Close()
}
