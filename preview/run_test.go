package preview

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"twexp/config"
	"twexp/explore"
	"twexp/state"
)

func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Cfg = cfg
	out := new(bytes.Buffer)
	env.Out = out
	return ctx, env, out
}

func runPreview(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:   "preview",
		Action: Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "parsed", Aliases: []string{"p"}},
			&cli.StringFlag{Name: "category"},
			&cli.StringFlag{Name: "class"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}},
		},
	}
	return cmd.Run(ctx, append([]string{"preview"}, args...))
}

func TestRun_CatalogStdout(t *testing.T) {
	ctx, env, out := setupTestEnv(t)

	if err := runPreview(ctx, "--category", "typography"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("h1").Text(); got != env.Cfg.Preview.Title {
		t.Errorf("h1 = %q", got)
	}
	if doc.Find("section").Length() != 1 || doc.Find("article").Length() == 0 {
		t.Error("expected single typography section")
	}
	if doc.Find(".panel[data-mode=dark]").Length() != doc.Find("article").Length() {
		t.Error("dark mode is enabled by default configuration")
	}
}

func TestRun_Parsed(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "tailwind.css")
	if err := os.WriteFile(src, []byte(".grid-cols-2{grid-template-columns:repeat(2,minmax(0,1fr))}\n.p-4{padding:1rem}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runPreview(ctx, "--parsed", src, dir); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "tailwind-css-explorer.html"))
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find("#grid-cols-2 [data-preview=grid]").Length() != 2 {
		t.Error("grid preview expected in both panels")
	}
	if got := doc.Find("#p-4 pre code").Text(); !strings.Contains(got, `class="p-4`) {
		t.Errorf("generated example expected in code block, got %q", got)
	}

	if err := runPreview(ctx, "--parsed", src, dir); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected already exists error, got %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)

	if err := runPreview(ctx, "--category", "nope"); err == nil {
		t.Error("expected unknown category error")
	}
	err := runPreview(ctx, "--parsed", filepath.Join(t.TempDir(), "missing.css"))
	if err == nil || !strings.HasPrefix(err.Error(), "failed to parse tailwind categories: ") {
		t.Errorf("unexpected error %v", err)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if err := Run(cctx, &cli.Command{}); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func writeParsedSource(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "tailwind.css")
	data := ".grid-cols-2{grid-template-columns:repeat(2,minmax(0,1fr))}\n.p-4{padding:1rem}\n.shadow-lg{box-shadow:0 10px 15px #0000001a}\n"
	if err := os.WriteFile(src, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return src
}

func articleNames(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(out)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	doc.Find("article").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.AttrOr("data-class", ""))
	})
	return names
}

func TestRun_CatalogClass(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := runPreview(ctx, "--class", "bg-blue-500"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if names := articleNames(t, out); len(names) != 1 || names[0] != "bg-blue-500" {
		t.Errorf("articles = %v", names)
	}

	if err := runPreview(ctx, "--category", "typography", "--class", "bg-blue-500"); err == nil || !strings.Contains(err.Error(), "unknown catalog class") {
		t.Errorf("class outside of selected category must not be found, got %v", err)
	}
}

func TestRun_ParsedSelection(t *testing.T) {
	ctx, _, out := setupTestEnv(t)
	src := writeParsedSource(t)

	if err := runPreview(ctx, "--parsed", src, "--category", "Effects"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if names := articleNames(t, out); strings.Join(names, ",") != "shadow-lg" {
		t.Errorf("category filter ignored, articles = %v", names)
	}

	out.Reset()
	if err := runPreview(ctx, "--parsed", src, "--class", "p-4"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if names := articleNames(t, out); strings.Join(names, ",") != "p-4" {
		t.Errorf("class filter ignored, articles = %v", names)
	}

	err := runPreview(ctx, "--parsed", src, "--category", "colors")
	if err == nil || !strings.Contains(err.Error(), "select one of: layout, typography") {
		t.Errorf("unexpected error %v", err)
	}
	err = runPreview(ctx, "--parsed", src, "--class", "m-4")
	if err == nil || !strings.Contains(err.Error(), "not found in parsed stylesheet") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRun_RemovesIncompleteOutput(t *testing.T) {
	ctx, env, _ := setupTestEnv(t)
	dst := filepath.Join(t.TempDir(), "page.html")

	f, err := explore.CreateOutput(dst, env, env.Log)
	if err != nil {
		t.Fatal(err)
	}
	if err := explore.CloseOutput(f, errors.New("render failed"), env.Log); err == nil {
		t.Error("original error must be returned")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("incomplete output left on disk: %v", err)
	}

	// successful run keeps the file
	if err := runPreview(ctx, "--class", "p-4", dst); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("output missing: %v", err)
	}
}
