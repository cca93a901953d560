package utils_test

import (
	"testing"

	"github.com/micahburnside/dirtree/internal/utils"
)

// TestDeduplicateStrings verifies that DeduplicateStrings removes duplicates
// while keeping first-occurrence order.
func TestDeduplicateStrings(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		values   []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			values:   []string{".md", ".txt", ".md"},
			expected: []string{".md", ".txt"},
		},
		{
			testName: "keeps unique",
			values:   []string{".go", ".mod"},
			expected: []string{".go", ".mod"},
		},
		{
			testName: "empty input",
			values:   nil,
			expected: []string{},
		},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subtestInstance *testing.T) {
			result := utils.DeduplicateStrings(testCase.values)
			if len(result) != len(testCase.expected) {
				subtestInstance.Fatalf("length: got %d want %d", len(result), len(testCase.expected))
			}
			for valueIndex, expectedValue := range testCase.expected {
				if result[valueIndex] != expectedValue {
					subtestInstance.Fatalf("value %d: got %q want %q", valueIndex, result[valueIndex], expectedValue)
				}
			}
		})
	}
}

// TestContainsString verifies membership checks.
func TestContainsString(testingInstance *testing.T) {
	values := []string{".md", ".txt"}
	if !utils.ContainsString(values, ".md") {
		testingInstance.Fatalf("expected .md to be found")
	}
	if utils.ContainsString(values, ".py") {
		testingInstance.Fatalf("did not expect .py to be found")
	}
}

// TestGetApplicationVersion verifies a version string is always produced.
func TestGetApplicationVersion(testingInstance *testing.T) {
	if version := utils.GetApplicationVersion(); version == "" {
		testingInstance.Fatalf("expected non-empty version")
	}
}
