// Package utils contains general helper functions used across the dirtree tool.
package utils

// Pattern source constants used across the project.
const (
	// TreeIgnoreFileName is the tool's own ignore file and the strict pattern source.
	TreeIgnoreFileName = ".treeignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// IgnoreFileName is the name of the generic ignore file.
	IgnoreFileName = ".ignore"

	// ConfigFileName is the name of the application configuration file.
	ConfigFileName = ".dirtree.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".config/dirtree"
)

// DeduplicateStrings removes duplicate values from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicateStrings(values []string) []string {
	encounteredValues := make(map[string]struct{})
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := encounteredValues[value]; !exists {
			encounteredValues[value] = struct{}{}
			result = append(result, value)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}
