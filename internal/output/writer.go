package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/micahburnside/dirtree/internal/types"
)

const (
	// serializedArtifactFormat names the serialized artifact as <root>-tree.<ext>.
	serializedArtifactFormat = "%s-tree.%s"
	// glyphArtifactFormat names the glyph artifact as <root>.txt.
	glyphArtifactFormat = "%s.txt"

	artifactFileMode = 0o644

	// errorRenderArtifactFormat is used when rendering fails before any write.
	errorRenderArtifactFormat = "rendering %s artifact for %s: %w"
	// errorWriteArtifactFormat is used when an artifact cannot be written.
	errorWriteArtifactFormat = "writing artifact %s: %w"
)

// Writer stores the two conventional scan artifacts in a destination
// directory. Both artifacts are rendered before either file is written, so a
// rendering failure leaves the destination untouched.
type Writer struct {
	DestinationDirectory string
}

// ArtifactPaths lists the files produced by one WriteArtifacts call.
type ArtifactPaths struct {
	SerializedPath string
	GlyphPath      string
}

// WriteArtifacts renders the tree in the requested serialization format plus
// the glyph form and writes both under the destination directory, named after
// the scanned root.
func (writer Writer) WriteArtifacts(rootNode *types.TreeNode, rootName string, outputFormat string) (ArtifactPaths, error) {
	serializedContent, renderError := RenderSerialized(rootNode, outputFormat)
	if renderError != nil {
		return ArtifactPaths{}, fmt.Errorf(errorRenderArtifactFormat, outputFormat, rootName, renderError)
	}
	glyphContent := RenderText(rootNode)

	artifactPaths := ArtifactPaths{
		SerializedPath: filepath.Join(writer.DestinationDirectory, fmt.Sprintf(serializedArtifactFormat, rootName, outputFormat)),
		GlyphPath:      filepath.Join(writer.DestinationDirectory, fmt.Sprintf(glyphArtifactFormat, rootName)),
	}

	if writeError := os.WriteFile(artifactPaths.SerializedPath, []byte(serializedContent+"\n"), artifactFileMode); writeError != nil {
		return ArtifactPaths{}, fmt.Errorf(errorWriteArtifactFormat, artifactPaths.SerializedPath, writeError)
	}
	if writeError := os.WriteFile(artifactPaths.GlyphPath, []byte(glyphContent), artifactFileMode); writeError != nil {
		return ArtifactPaths{}, fmt.Errorf(errorWriteArtifactFormat, artifactPaths.GlyphPath, writeError)
	}
	return artifactPaths, nil
}
