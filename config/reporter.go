package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	zip "github.com/hidez8891/zip"
	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"
	"lukechampine.com/blake3"

	"twexp/misc"
)

const manifestName = "MANIFEST.yaml"

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. When destination cannot be created report
// goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry), created: time.Now()}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

// entry either references file on disk, read when report is closed, or
// keeps data captured earlier.
type entry struct {
	source string
	data   []byte
	stamp  time.Time
}

type manifestEntry struct {
	Name     string    `yaml:"name"`
	Source   string    `yaml:"source,omitempty"`
	Size     int       `yaml:"size"`
	Digest   string    `yaml:"blake3"`
	Modified time.Time `yaml:"modified"`
}

type manifest struct {
	Program string          `yaml:"program"`
	Version string          `yaml:"version"`
	Created time.Time       `yaml:"created"`
	Entries []manifestEntry `yaml:"entries"`
	Skipped []string        `yaml:"skipped,omitempty"`
}

// Report collects logs, effective configuration, processed stylesheets and
// results into single zip archive with a manifest.
// NOTE: not safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
	created time.Time
}

// Close writes the archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns absolute name of the archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// uniqueName appends counter to name already taken.
func (r *Report) uniqueName(name string) string {
	if _, exists := r.entries[name]; !exists {
		return name
	}
	for i := 2; ; i++ {
		n := name + "." + strconv.Itoa(i)
		if _, exists := r.entries[n]; !exists {
			return n
		}
	}
}

// Store registers file to be put into archive under name. File is read when
// report is closed. Storing the same file twice is a no-op, different file
// under taken name gets numbered name.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	if old, exists := r.entries[name]; exists && old.source == path {
		return
	}
	r.entries[r.uniqueName(name)] = entry{source: path}
}

// StoreData keeps data to be put into archive under name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.entries[r.uniqueName(name)] = entry{data: data, stamp: time.Now()}
}

// StoreCopy reads file now, so later changes do not affect the report.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r.StoreData(name, data)
	return nil
}

func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		if cerr := arc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	m := manifest{
		Program: misc.GetAppName(),
		Version: misc.GetVersion(),
		Created: r.created.UTC(),
	}
	for _, name := range names {
		e := r.entries[name]
		if e.data == nil && e.source != "" {
			// logs may be absent when file logging is off
			info, serr := os.Stat(e.source)
			if serr != nil || !info.Mode().IsRegular() {
				m.Skipped = append(m.Skipped, name)
				continue
			}
			if e.data, err = os.ReadFile(e.source); err != nil {
				return err
			}
			e.stamp = info.ModTime()
		}
		if err := saveFile(arc, name, e.stamp, e.data); err != nil {
			return err
		}
		sum := blake3.Sum256(e.data)
		m.Entries = append(m.Entries, manifestEntry{
			Name:     name,
			Source:   e.source,
			Size:     len(e.data),
			Digest:   hex.EncodeToString(sum[:]),
			Modified: e.stamp.UTC(),
		})
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("unable to prepare report manifest: %w", err)
	}
	return saveFile(arc, manifestName, time.Now(), data)
}

func saveFile(dst *zip.Writer, name string, t time.Time, data []byte) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
