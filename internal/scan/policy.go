// Package scan decides which filesystem entries to keep and builds directory trees.
package scan

import (
	"path/filepath"
	"strings"

	"github.com/micahburnside/dirtree/internal/types"
	"github.com/micahburnside/dirtree/internal/utils"
)

// Decision is the outcome of evaluating one filesystem entry against the policy.
type Decision int

const (
	// Include keeps the entry in the tree.
	Include Decision = iota
	// ExcludedAsBuildArtifact drops a directory whose name looks like generated output.
	ExcludedAsBuildArtifact
	// ExcludedByPattern drops an entry matched by a loaded ignore pattern.
	ExcludedByPattern
	// ExcludedAsDotFile drops a dot-named entry when no strict pattern source exists.
	ExcludedAsDotFile
	// ExcludedByExtension drops a file whose extension is outside the allow-list.
	ExcludedByExtension
)

// decisionNames maps decisions to the labels used in warnings.
var decisionNames = map[Decision]string{
	Include:                 "include",
	ExcludedAsBuildArtifact: "build-artifact directory",
	ExcludedByPattern:       "ignore-pattern match",
	ExcludedAsDotFile:       "dot-file",
	ExcludedByExtension:     "extension not allowed",
}

// String returns the human-readable label for the decision.
func (decision Decision) String() string {
	if name, known := decisionNames[decision]; known {
		return name
	}
	return "unknown"
}

// Included reports whether the decision keeps the entry.
func (decision Decision) Included() bool {
	return decision == Include
}

// buildArtifactNameLengthLimit bounds the directory-name length considered by
// the build-artifact heuristic.
const buildArtifactNameLengthLimit = 6

// Policy evaluates one filesystem entry at a time against the loaded pattern
// set and the optional extension allow-list. An empty allow-list admits every
// extension. The policy carries no mutable state and is safe to share across
// every step of a walk.
type Policy struct {
	Patterns   types.PatternSet
	Extensions []string
}

// Decide applies the exclusion rules to a single entry in fixed precedence
// order: build-artifact heuristic, pattern match, dot-file rule, extension
// allow-list. The first matching rule wins. The heuristic and the dot-file
// rule apply even when no pattern source exists; the extension check is the
// narrowest rule and runs last.
func (policy Policy) Decide(entryName string, fullPath string, isDirectory bool) Decision {
	if isDirectory && isBuildArtifactName(entryName) {
		return ExcludedAsBuildArtifact
	}
	if matchesAnyPattern(entryName, fullPath, policy.Patterns.Patterns) {
		return ExcludedByPattern
	}
	if !policy.Patterns.StrictSourcePresent && strings.HasPrefix(entryName, ".") {
		return ExcludedAsDotFile
	}
	if !isDirectory && len(policy.Extensions) > 0 {
		fileExtension := filepath.Ext(entryName)
		if !utils.ContainsString(policy.Extensions, fileExtension) {
			return ExcludedByExtension
		}
	}
	return Include
}

// isBuildArtifactName reports whether a directory name looks like a generated
// output directory: at most six characters, all lowercase ASCII letters.
// Catches names such as "bin", "obj", "log", and "dist" in projects carrying
// no ignore configuration.
func isBuildArtifactName(entryName string) bool {
	if entryName == "" || len(entryName) > buildArtifactNameLengthLimit {
		return false
	}
	for _, character := range entryName {
		if character < 'a' || character > 'z' {
			return false
		}
	}
	return true
}

// matchesAnyPattern reports whether the entry's bare name matches any pattern
// as a shell-style wildcard, or its slash-normalized full path contains any
// pattern as a literal substring.
func matchesAnyPattern(entryName string, fullPath string, patterns []string) bool {
	normalizedPath := filepath.ToSlash(fullPath)
	for _, patternValue := range patterns {
		isMatched, matchError := filepath.Match(patternValue, entryName)
		if matchError == nil && isMatched {
			return true
		}
		if strings.Contains(normalizedPath, patternValue) {
			return true
		}
	}
	return false
}
