// Package controller renders command results for the terminal.
package controller

import (
	m "github.com/mouse-blink/stamp/internal/model"
)

// UI defines how command results are presented.
// Implementations can use different output methods (plain text, styled).
type UI interface {
	// DisplayFiles prints one path per line.
	DisplayFiles(files []m.Path) error
	// DisplayHeaderResult prints the classification line of one file.
	DisplayHeaderResult(result m.FileResult) error
	// DisplayHeaderSummary prints per-state counts and failures.
	DisplayHeaderSummary(results []m.FileResult, failures []m.FileFailure) error
	// DisplayVersionResult prints the edit made to one file.
	DisplayVersionResult(result m.VersionResult) error
	// DisplayManifest reports the written manifest.
	DisplayManifest(path m.Path, files []m.Path) error
	// DisplayCounts prints line counts. File rows are shown only if verbose.
	DisplayCounts(rows []m.CountRow, verbose bool) error
	// DisplayDiff prints a unified diff between two versions of a file.
	DisplayDiff(path m.Path, before, after []string) error
	// DisplayFailures lists files that could not be processed.
	DisplayFailures(failures []m.FileFailure) error
}
