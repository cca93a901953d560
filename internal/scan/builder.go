package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/micahburnside/dirtree/internal/types"
)

const (
	// warningSkipSubdirFormat is used when a subdirectory cannot be processed.
	warningSkipSubdirFormat = "Warning: Skipping subdirectory %s due to error: %v\n"

	// errorAccessRootFormat is used when the root path cannot be accessed.
	errorAccessRootFormat = "accessing root %s: %w"
	// errorRootExcludedFormat is used when the root itself is excluded by policy.
	errorRootExcludedFormat = "root %s excluded by policy: %s"
	// errorReadRootFormat is used when the root directory cannot be enumerated.
	errorReadRootFormat = "reading root directory %s: %w"
)

// Builder walks a directory and assembles the filtered tree. The walk is a
// single synchronous depth-first pass; children are attached to their parent
// in directory enumeration order, so re-running over an unchanged directory
// reproduces identical output. Warnings for pruned subtrees go to WarningSink.
type Builder struct {
	Policy Policy

	// WarningSink receives per-entry skip warnings. Defaults to os.Stderr.
	WarningSink io.Writer
}

// NewBuilder constructs a Builder around the provided policy.
func NewBuilder(policy Policy) *Builder {
	return &Builder{Policy: policy, WarningSink: os.Stderr}
}

// Build scans the directory rooted at rootDirectoryPath and returns the
// filtered tree. An inaccessible root, a root excluded by policy, or an
// unenumerable root directory is fatal; a directory left empty by filtering
// is a valid folder node with zero children. Failures below the root prune
// the affected subtree and the walk continues.
func (builder *Builder) Build(rootDirectoryPath string) (*types.TreeNode, error) {
	rootInfo, rootStatError := os.Stat(rootDirectoryPath)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorAccessRootFormat, rootDirectoryPath, rootStatError)
	}

	rootName := filepath.Base(filepath.Clean(rootDirectoryPath))
	rootDecision := builder.Policy.Decide(rootName, rootDirectoryPath, rootInfo.IsDir())
	if !rootDecision.Included() {
		return nil, fmt.Errorf(errorRootExcludedFormat, rootDirectoryPath, rootDecision)
	}

	if !rootInfo.IsDir() {
		return types.NewFileNode(rootName), nil
	}

	childNodes, buildError := builder.buildChildNodes(rootDirectoryPath)
	if buildError != nil {
		return nil, fmt.Errorf(errorReadRootFormat, rootDirectoryPath, buildError)
	}
	return types.NewFolderNode(rootName, childNodes), nil
}

// buildChildNodes enumerates one directory and recursively builds nodes for
// every child the policy keeps. A subdirectory that cannot be enumerated is
// pruned with a warning; its siblings are unaffected.
func (builder *Builder) buildChildNodes(currentDirectoryPath string) ([]*types.TreeNode, error) {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}

	nodes := []*types.TreeNode{}
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		childDecision := builder.Policy.Decide(directoryEntry.Name(), childPath, directoryEntry.IsDir())
		if !childDecision.Included() {
			continue
		}

		if directoryEntry.IsDir() {
			grandchildNodes, buildError := builder.buildChildNodes(childPath)
			if buildError != nil {
				fmt.Fprintf(builder.warningSink(), warningSkipSubdirFormat, childPath, buildError)
				continue
			}
			nodes = append(nodes, types.NewFolderNode(directoryEntry.Name(), grandchildNodes))
			continue
		}
		nodes = append(nodes, types.NewFileNode(directoryEntry.Name()))
	}

	return nodes, nil
}

func (builder *Builder) warningSink() io.Writer {
	if builder.WarningSink != nil {
		return builder.WarningSink
	}
	return os.Stderr
}
