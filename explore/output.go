package explore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"twexp/config"
	"twexp/state"
)

// Values is a struct that holds variables we make available for output
// name template expansion.
type Values struct {
	SourceFile string
	Format     string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func sourceStem(src string) string {
	return strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
}

// buildOutputName returns file name for the document written into directory.
// Template result is slugified, default name is used when template is empty
// or cannot be expanded.
func buildOutputName(src string, format config.OutputFmt, env *state.LocalEnv) string {
	name := sourceStem(src)

	if tmpl := env.Cfg.Output.NameTemplate; tmpl != "" {
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmpl, Values{
			SourceFile: name,
			Format:     format.String(),
		})
		if err != nil {
			env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		} else if s := slug.Make(expanded); s != "" {
			name = s
		}
	}
	return config.CleanFileName(name) + format.Ext()
}

// resolveDestination turns DESTINATION argument into output file path. Empty
// result means STDOUT.
func resolveDestination(src, dst string, format config.OutputFmt, env *state.LocalEnv) (string, error) {
	if dst == "" {
		return "", nil
	}
	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		return filepath.Join(dst, buildOutputName(src, format, env)), nil
	}
	return dst, nil
}

// CreateOutput opens output file honoring overwrite setting, creating
// missing directories.
func CreateOutput(name string, env *state.LocalEnv, log *zap.Logger) (*os.File, error) {
	if _, err := os.Stat(name); err == nil {
		if !env.Overwrite {
			return nil, fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.Create(name)
}

// CloseOutput closes file opened by CreateOutput. When err is not nil the
// incomplete file is removed.
func CloseOutput(f *os.File, err error, log *zap.Logger) error {
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(f.Name()); rerr != nil {
			log.Warn("Unable to remove incomplete output", zap.String("file", f.Name()), zap.Error(rerr))
		}
	}
	return err
}
