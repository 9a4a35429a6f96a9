package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"minibasic/internal/diag"
	"minibasic/internal/source"
	"minibasic/internal/token"
)

// TokenizeDirResult holds the outcome for one file of a directory walk.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Lines  []token.LineRecord
	Bag    *diag.Bag
}

// listBasFiles returns the sorted list of all *.bas files under dir.
func listBasFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".bas") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every *.bas file under dir, files in parallel.
// Lines are independent by construction, so no coordination is needed beyond
// the per-file result slot. Results come back in sorted path order.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listBasFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	// Loading mutates the FileSet, so it happens up front on one goroutine.
	fileSet := source.NewFileSet()
	results := make([]TokenizeDirResult, len(files))
	for i, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		results[i] = TokenizeDirResult{Path: path, FileID: fileID}
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slot := &results[i]
			file := fileSet.Get(slot.FileID)
			bag := diag.NewBag(maxDiagnostics)
			slot.Bag = bag
			slot.Lines = tokenizeInto(file, diag.BagReporter{Bag: bag})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return fileSet, results, nil
}
