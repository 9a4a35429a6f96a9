package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"minibasic/internal/driver"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestTokenizeDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.bas":        "20 PRINT B\n",
		"a.bas":        "10 LET A = 1\n",
		"sub/c.bas":    "30 GOTO 10\n",
		"notes/readme": "not a program",
	})

	fileSet, results, err := driver.TokenizeDir(context.Background(), dir, 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	if fileSet == nil {
		t.Fatal("nil file set")
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// sorted path order, non-.bas files excluded
	wantOrder := []string{"a.bas", "b.bas", filepath.Join("sub", "c.bas")}
	for i, res := range results {
		if got, want := res.Path, filepath.Join(dir, wantOrder[i]); got != want {
			t.Errorf("result %d: path %q, want %q", i, got, want)
		}
		if res.Bag.HasErrors() {
			t.Errorf("result %d: unexpected diagnostics: %v", i, res.Bag.Items())
		}
		if len(res.Lines) != 1 {
			t.Errorf("result %d: %d records, want 1", i, len(res.Lines))
		}
	}
}

func TestTokenizeDirCollectsDiagnosticsPerFile(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"good.bas": "10 PRINT A\n",
		"bad.bas":  "oops\n",
	})

	_, results, err := driver.TokenizeDir(context.Background(), dir, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].Bag.HasErrors() {
		t.Error("bad.bas must carry a diagnostic")
	}
	if results[1].Bag.HasErrors() {
		t.Errorf("good.bas must be clean: %v", results[1].Bag.Items())
	}
}

func TestTokenizeDirCanceled(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.bas": "10 PRINT A\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := driver.TokenizeDir(ctx, dir, 100, 1); err == nil {
		t.Fatal("expected a cancellation error")
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	_, results, err := driver.TokenizeDir(context.Background(), t.TempDir(), 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results from an empty directory", len(results))
	}
}
