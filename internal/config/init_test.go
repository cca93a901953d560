package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/micahburnside/dirtree/internal/utils"
)

// TestInitializeConfigurationLocal verifies local initialization writes the
// default template.
func TestInitializeConfigurationLocal(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()

	writtenPath, initializeError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializeError != nil {
		testingHandle.Fatalf("InitializeConfiguration failed: %v", initializeError)
	}

	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if writtenPath != expectedPath {
		testingHandle.Fatalf("written path: got %q want %q", writtenPath, expectedPath)
	}
	content, readError := os.ReadFile(writtenPath)
	if readError != nil {
		testingHandle.Fatalf("reading configuration: %v", readError)
	}
	if !strings.Contains(string(content), "scan:") {
		testingHandle.Fatalf("configuration template missing scan section: %q", string(content))
	}
}

// TestInitializeConfigurationRefusesOverwrite verifies the force flag contract.
func TestInitializeConfigurationRefusesOverwrite(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()
	existingPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if writeError := os.WriteFile(existingPath, []byte("scan: {}\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to seed existing configuration: %v", writeError)
	}

	_, initializeError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializeError == nil {
		testingHandle.Fatalf("expected error without force")
	}

	writtenPath, forcedError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		Force:            true,
		WorkingDirectory: workingDirectory,
	})
	if forcedError != nil {
		testingHandle.Fatalf("forced initialization failed: %v", forcedError)
	}
	if writtenPath != existingPath {
		testingHandle.Fatalf("forced path: got %q want %q", writtenPath, existingPath)
	}
}

// TestInitializeConfigurationGlobal verifies global initialization under the
// user configuration directory.
func TestInitializeConfigurationGlobal(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)

	writtenPath, initializeError := InitializeConfiguration(InitOptions{Target: InitTargetGlobal})
	if initializeError != nil {
		testingHandle.Fatalf("InitializeConfiguration failed: %v", initializeError)
	}
	expectedPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
	if writtenPath != expectedPath {
		testingHandle.Fatalf("written path: got %q want %q", writtenPath, expectedPath)
	}
}
