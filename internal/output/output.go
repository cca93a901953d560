// Package output renders scanned trees into serialized and glyph forms.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/micahburnside/dirtree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	// errorUnknownNodeTypeFormat is used when a parsed node carries an unrecognized type.
	errorUnknownNodeTypeFormat = "unknown node type %q for node %q"
)

// RenderJSON serializes the tree as indented JSON. The tree is read only;
// the returned string is independent of it.
func RenderJSON(rootNode *types.TreeNode) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(rootNode, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// ParseJSON reconstructs a tree from its RenderJSON form. Node types are
// validated and folders are re-normalized to a non-nil children slice, so the
// result is isomorphic to the originally rendered tree.
func ParseJSON(serializedTree []byte) (*types.TreeNode, error) {
	var rootNode types.TreeNode
	if unmarshalError := json.Unmarshal(serializedTree, &rootNode); unmarshalError != nil {
		return nil, unmarshalError
	}
	if normalizeError := normalizeParsedNode(&rootNode); normalizeError != nil {
		return nil, normalizeError
	}
	return &rootNode, nil
}

// normalizeParsedNode validates node types across the subtree and restores the
// folder invariant of a non-nil children slice.
func normalizeParsedNode(node *types.TreeNode) error {
	switch node.Type {
	case types.NodeTypeFile:
		node.Children = nil
	case types.NodeTypeFolder:
		if node.Children == nil {
			node.Children = []*types.TreeNode{}
		}
	default:
		return fmt.Errorf(errorUnknownNodeTypeFormat, node.Type, node.Name)
	}
	for _, childNode := range node.Children {
		if normalizeError := normalizeParsedNode(childNode); normalizeError != nil {
			return normalizeError
		}
	}
	return nil
}

// RenderXML serializes the tree as an indented XML document.
func RenderXML(rootNode *types.TreeNode) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(rootNode, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}

// GlyphLines renders the tree as display lines, one per node, depth-first,
// pre-order. The root line carries no prefix and uses the last-branch glyph;
// every other line is prefixed by its ancestors' continuation padding followed
// by a tee glyph, or a corner glyph for the last sibling.
func GlyphLines(rootNode *types.TreeNode) []string {
	if rootNode == nil {
		return nil
	}
	lines := []string{treeLastConnector + rootNode.Name}
	appendChildGlyphLines(&lines, rootNode.Children, treeLastPadding)
	return lines
}

// appendChildGlyphLines emits lines for the children of one node. The prefix
// accumulates one padding segment per ancestor: blank under a last sibling,
// a vertical bar otherwise.
func appendChildGlyphLines(lines *[]string, childNodes []*types.TreeNode, prefix string) {
	for childIndex, childNode := range childNodes {
		isLastSibling := childIndex == len(childNodes)-1
		connector := treeBranchConnector
		childPrefix := prefix + treeBranchPadding
		if isLastSibling {
			connector = treeLastConnector
			childPrefix = prefix + treeLastPadding
		}
		*lines = append(*lines, prefix+connector+childNode.Name)
		appendChildGlyphLines(lines, childNode.Children, childPrefix)
	}
}

// RenderText joins the glyph lines with newlines, ending with a newline.
// Output is always UTF-8; console encoding concerns belong to the caller.
func RenderText(rootNode *types.TreeNode) string {
	glyphLines := GlyphLines(rootNode)
	if len(glyphLines) == 0 {
		return ""
	}
	return strings.Join(glyphLines, "\n") + "\n"
}

// RenderSerialized renders the tree in the requested serialization format.
func RenderSerialized(rootNode *types.TreeNode, outputFormat string) (string, error) {
	switch outputFormat {
	case types.FormatJSON:
		return RenderJSON(rootNode)
	case types.FormatXML:
		return RenderXML(rootNode)
	default:
		return "", fmt.Errorf("unsupported serialization format %q", outputFormat)
	}
}
