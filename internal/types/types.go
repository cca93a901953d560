// Package types defines every cross‑package data structure used by the dirtree CLI.
package types

import "encoding/xml"

const (
	// NodeTypeFile marks a leaf node backed by a regular file.
	NodeTypeFile = "File"
	// NodeTypeFolder marks a node backed by a directory.
	NodeTypeFolder = "Folder"

	FormatJSON = "json"
	FormatXML  = "xml"
	FormatText = "text"
)

// TreeNode is one entry of a scanned directory tree. Folders carry a non-nil
// Children slice in directory enumeration order; files are leaves and never
// carry one. Type is fixed at construction and never changes.
type TreeNode struct {
	XMLName  xml.Name    `json:"-" xml:"node"`
	Name     string      `json:"name" xml:"name"`
	Type     string      `json:"type" xml:"type"`
	Children []*TreeNode `json:"children,omitempty" xml:"children>node,omitempty"`
}

// NewFileNode constructs a leaf node for a regular file.
func NewFileNode(entryName string) *TreeNode {
	return &TreeNode{Name: entryName, Type: NodeTypeFile}
}

// NewFolderNode constructs a directory node owning the provided children.
func NewFolderNode(entryName string, childNodes []*TreeNode) *TreeNode {
	if childNodes == nil {
		childNodes = []*TreeNode{}
	}
	return &TreeNode{Name: entryName, Type: NodeTypeFolder, Children: childNodes}
}

// IsFolder reports whether the node represents a directory.
func (node *TreeNode) IsFolder() bool {
	return node != nil && node.Type == NodeTypeFolder
}

// CountNodes returns the number of nodes in the subtree rooted at the node.
func (node *TreeNode) CountNodes() int {
	if node == nil {
		return 0
	}
	total := 1
	for _, childNode := range node.Children {
		total += childNode.CountNodes()
	}
	return total
}

// PatternSet holds the normalized ignore patterns loaded for one scan root.
// StrictSourcePresent records whether the most authoritative pattern source
// existed; its presence disables the implicit dot-file exclusion.
// A PatternSet is immutable once loaded.
type PatternSet struct {
	Patterns            []string
	StrictSourcePresent bool
}

// ValidatedPath is an absolute directory path that already passed existence
// and directory checks.
type ValidatedPath struct {
	AbsolutePath string
}
