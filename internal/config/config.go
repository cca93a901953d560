// Package config loads ignore-pattern sources and application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/micahburnside/dirtree/internal/types"
	"github.com/micahburnside/dirtree/internal/utils"
)

const (
	// commentMarker starts a comment line inside a pattern source.
	commentMarker = "#"
	// negationMarker starts a negation line. Negation is unsupported and the
	// line is dropped rather than interpreted as re-inclusion.
	negationMarker = "!"
	// trailingSeparator is stripped once from the end of each surviving pattern.
	trailingSeparator = "/"

	// errorLoadPatternSourceFormat is used when a present pattern source cannot be read.
	errorLoadPatternSourceFormat = "loading %s from %s: %w"
	// warningClosePatternSourceFormat is used when a pattern source fails to close.
	warningClosePatternSourceFormat = "Warning: failed to close %s: %v\n"
)

// PatternSourceNames lists the canonical pattern-source filenames in priority
// order. The first entry is the strict source: its presence alone sets
// PatternSet.StrictSourcePresent and disables the implicit dot-file exclusion.
var PatternSourceNames = []string{
	utils.TreeIgnoreFileName,
	utils.GitIgnoreFileName,
	utils.IgnoreFileName,
}

// LoadPatternSet reads every canonical pattern source present in the base
// directory and returns the combined, normalized pattern set. Patterns keep
// source-priority order first, then line order within each source. A missing
// source is silently skipped; a present-but-unreadable source is an error.
func LoadPatternSet(baseDirectoryPath string) (types.PatternSet, error) {
	return LoadPatternSetFromSources(baseDirectoryPath, PatternSourceNames)
}

// LoadPatternSetFromSources behaves like LoadPatternSet for a caller-supplied
// ordered list of source filenames. The first name in the list is treated as
// the strict source.
func LoadPatternSetFromSources(baseDirectoryPath string, sourceNames []string) (types.PatternSet, error) {
	var patternSet types.PatternSet

	for sourceIndex, sourceName := range sourceNames {
		sourcePath := filepath.Join(baseDirectoryPath, sourceName)
		sourcePatterns, sourcePresent, loadError := loadPatternSource(sourcePath)
		if loadError != nil {
			return types.PatternSet{}, fmt.Errorf(errorLoadPatternSourceFormat, sourceName, baseDirectoryPath, loadError)
		}
		if sourcePresent && sourceIndex == 0 {
			patternSet.StrictSourcePresent = true
		}
		patternSet.Patterns = append(patternSet.Patterns, sourcePatterns...)
	}

	return patternSet, nil
}

// loadPatternSource reads a single pattern source line by line. The second
// return value reports whether the file existed at all.
//
// #nosec G304
func loadPatternSource(sourcePath string) ([]string, bool, error) {
	fileHandle, openFileError := os.Open(sourcePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, false, nil
		}
		return nil, true, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, warningClosePatternSourceFormat, sourcePath, closeError)
		}
	}()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		normalizedPattern, usable := NormalizePatternLine(scanner.Text())
		if !usable {
			continue
		}
		patterns = append(patterns, normalizedPattern)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, true, scanError
	}
	return patterns, true, nil
}

// NormalizePatternLine trims a raw pattern-source line and reports whether it
// carries a usable rule. Blank lines, comments, and negation lines are dropped;
// one trailing path separator is stripped from surviving rules.
func NormalizePatternLine(rawLine string) (string, bool) {
	trimmedLine := strings.TrimSpace(rawLine)
	if trimmedLine == "" {
		return "", false
	}
	if strings.HasPrefix(trimmedLine, commentMarker) {
		return "", false
	}
	if strings.HasPrefix(trimmedLine, negationMarker) {
		return "", false
	}
	return strings.TrimSuffix(trimmedLine, trailingSeparator), true
}
