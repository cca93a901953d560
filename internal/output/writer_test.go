package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/micahburnside/dirtree/internal/types"
)

// TestWriterProducesConventionalArtifacts verifies the artifact names and
// that their contents match the renderers.
func TestWriterProducesConventionalArtifacts(testingHandle *testing.T) {
	destinationDirectory := testingHandle.TempDir()
	rootNode := sampleTree()

	artifactPaths, writeError := Writer{DestinationDirectory: destinationDirectory}.WriteArtifacts(rootNode, "project", types.FormatJSON)
	if writeError != nil {
		testingHandle.Fatalf("WriteArtifacts failed: %v", writeError)
	}

	expectedSerializedPath := filepath.Join(destinationDirectory, "project-tree.json")
	if artifactPaths.SerializedPath != expectedSerializedPath {
		testingHandle.Fatalf("serialized path: got %q want %q", artifactPaths.SerializedPath, expectedSerializedPath)
	}
	expectedGlyphPath := filepath.Join(destinationDirectory, "project.txt")
	if artifactPaths.GlyphPath != expectedGlyphPath {
		testingHandle.Fatalf("glyph path: got %q want %q", artifactPaths.GlyphPath, expectedGlyphPath)
	}

	serializedContent, readError := os.ReadFile(artifactPaths.SerializedPath)
	if readError != nil {
		testingHandle.Fatalf("reading serialized artifact: %v", readError)
	}
	parsedTree, parseError := ParseJSON(serializedContent)
	if parseError != nil {
		testingHandle.Fatalf("parsing serialized artifact: %v", parseError)
	}
	if difference := cmp.Diff(rootNode, parsedTree); difference != "" {
		testingHandle.Fatalf("artifact round-trip mismatch (-want +got):\n%s", difference)
	}

	glyphContent, readError := os.ReadFile(artifactPaths.GlyphPath)
	if readError != nil {
		testingHandle.Fatalf("reading glyph artifact: %v", readError)
	}
	if string(glyphContent) != RenderText(rootNode) {
		testingHandle.Fatalf("glyph artifact differs from rendered text")
	}
}

// TestWriterXMLArtifactExtension verifies the serialized artifact follows the
// selected format extension.
func TestWriterXMLArtifactExtension(testingHandle *testing.T) {
	destinationDirectory := testingHandle.TempDir()

	artifactPaths, writeError := Writer{DestinationDirectory: destinationDirectory}.WriteArtifacts(sampleTree(), "project", types.FormatXML)
	if writeError != nil {
		testingHandle.Fatalf("WriteArtifacts failed: %v", writeError)
	}
	if !strings.HasSuffix(artifactPaths.SerializedPath, "project-tree.xml") {
		testingHandle.Fatalf("unexpected serialized artifact path %q", artifactPaths.SerializedPath)
	}
}

// TestWriterRenderFailureWritesNothing verifies no partial output on a
// rendering failure.
func TestWriterRenderFailureWritesNothing(testingHandle *testing.T) {
	destinationDirectory := testingHandle.TempDir()

	_, writeError := Writer{DestinationDirectory: destinationDirectory}.WriteArtifacts(sampleTree(), "project", "yaml")
	if writeError == nil {
		testingHandle.Fatalf("expected error for unsupported format")
	}

	directoryEntries, readError := os.ReadDir(destinationDirectory)
	if readError != nil {
		testingHandle.Fatalf("reading destination directory: %v", readError)
	}
	if len(directoryEntries) != 0 {
		testingHandle.Fatalf("expected no artifacts, found %d entries", len(directoryEntries))
	}
}

// TestWriterMissingDestinationFails verifies the error path for an unusable
// destination directory.
func TestWriterMissingDestinationFails(testingHandle *testing.T) {
	missingDestination := filepath.Join(testingHandle.TempDir(), "absent")

	_, writeError := Writer{DestinationDirectory: missingDestination}.WriteArtifacts(sampleTree(), "project", types.FormatJSON)
	if writeError == nil {
		testingHandle.Fatalf("expected error for missing destination directory")
	}
}
