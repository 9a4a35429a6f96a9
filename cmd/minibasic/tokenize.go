package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minibasic/internal/diag"
	"minibasic/internal/diagfmt"
	"minibasic/internal/driver"
	"minibasic/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.bas|dir]",
	Short: "Tokenize a BASIC source file",
	Long: `Tokenize breaks down line-numbered BASIC source into its constituent tokens.
With a directory argument every *.bas file underneath is tokenized.
Without an argument the main file from basic.toml is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("line", "", "tokenize a single line of text instead of a file")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = all CPUs)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse tokenized output for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if line, _ := cmd.Flags().GetString("line"); line != "" {
		result := driver.TokenizeSource("<input>", []byte(line), maxDiagnostics)
		return emitResult(cmd, format, result)
	}

	path, err := resolveTokenizeTarget(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		return runTokenizeDir(cmd, format, path, maxDiagnostics, jobs)
	}

	var result *driver.TokenizeResult
	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, cacheErr := driver.OpenDiskCache("minibasic")
		if cacheErr != nil {
			return fmt.Errorf("failed to open cache: %w", cacheErr)
		}
		result, _, err = driver.TokenizeFileCached(path, maxDiagnostics, cache)
	} else {
		result, err = driver.TokenizeFile(path, maxDiagnostics)
	}
	if err != nil {
		if result != nil {
			printDiagnostics(cmd, result.File, result.Bag)
		}
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return emitResult(cmd, format, result)
}

// resolveTokenizeTarget picks the explicit argument, or falls back to the
// basic.toml manifest discovered from the working directory.
func resolveTokenizeTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest("")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New(noBasicTomlMessage)
	}
	return manifest.mainFile()
}

func emitResult(cmd *cobra.Command, format string, result *driver.TokenizeResult) error {
	printDiagnostics(cmd, result.File, result.Bag)

	switch format {
	case "json":
		return diagfmt.FormatLinesJSON(os.Stdout, result.Lines, diagfmt.JSONOpts{IncludeSpans: true})
	default:
		return diagfmt.FormatLinesPretty(os.Stdout, result.Lines)
	}
}

func runTokenizeDir(cmd *cobra.Command, format string, dir string, maxDiagnostics, jobs int) error {
	fileSet, results, err := driver.TokenizeDir(context.Background(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	for _, res := range results {
		file := fileSet.Get(res.FileID)
		printDiagnostics(cmd, file, res.Bag)

		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		if format == "json" {
			if err := diagfmt.FormatLinesJSON(os.Stdout, res.Lines, diagfmt.JSONOpts{IncludeSpans: true}); err != nil {
				return err
			}
			continue
		}
		if err := diagfmt.FormatLinesPretty(os.Stdout, res.Lines); err != nil {
			return err
		}
	}
	return nil
}

// printDiagnostics writes the bag to stderr in pretty form, honoring the
// --color and --quiet persistent flags. Info entries are dropped when quiet.
func printDiagnostics(cmd *cobra.Command, file *source.File, bag *diag.Bag) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !bag.HasErrors() && !bag.HasWarnings() {
		return
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))

	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, file, diagfmt.PrettyOpts{
		Color:       useColor,
		ShowContext: true,
		ShowNotes:   true,
	})
}
