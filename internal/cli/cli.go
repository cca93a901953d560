// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/micahburnside/dirtree/internal/config"
	"github.com/micahburnside/dirtree/internal/output"
	"github.com/micahburnside/dirtree/internal/scan"
	"github.com/micahburnside/dirtree/internal/services/clipboard"
	"github.com/micahburnside/dirtree/internal/types"
	"github.com/micahburnside/dirtree/internal/utils"
)

const (
	extensionFlagName = "ext"
	formatFlagName    = "format"
	outputFlagName    = "output"
	printFlagName     = "print"
	copyFlagName      = "copy"
	configFlagName    = "config"
	versionFlagName   = "version"
	globalFlagName    = "global"
	forceFlagName     = "force"

	versionTemplate      = "dirtree version: %s\n"
	defaultPath          = "."
	rootUse              = "dirtree"
	rootShortDescription = "dirtree command line interface"
	rootLongDescription  = `dirtree scans a directory, filters entries through ignore-pattern rules,
and emits a serialized tree plus a box-drawing glyph tree.
Patterns are read from .treeignore, .gitignore, and .ignore at the scan root.`

	scanUse              = "scan [path]"
	scanAlias            = "s"
	scanShortDescription = "scan a directory and render its tree (" + scanAlias + ")"
	scanLongDescription  = `Scan a directory tree and render it.
Use --format to select text, json, or xml output, --ext to restrict files to
an extension allow-list, and --output to write the two conventional artifacts
(<root>-tree.<ext> and <root>.txt) into a destination directory.`
	scanUsageExample = `  # Print the glyph tree of the current directory
  dirtree scan

  # Keep only Markdown and text files, render as JSON
  dirtree scan --ext .md --ext .txt --format json .

  # Write artifacts next to the project
  dirtree scan --output ../snapshots ~/code/project`

	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write a default ` + utils.ConfigFileName + ` configuration file.
Use --global to place it in the user configuration directory.`

	extensionFlagDescription = "file extension to allow (repeatable, includes the leading dot)"
	formatFlagDescription    = "output format (text, json, or xml)"
	outputFlagDescription    = "directory receiving the serialized and glyph artifacts"
	printFlagDescription     = "print the rendered tree to stdout"
	copyFlagDescription      = "copy the rendered tree to the clipboard"
	configFlagDescription    = "path to a configuration file"
	versionFlagDescription   = "display application version"
	globalFlagDescription    = "write the configuration to the global location"
	forceFlagDescription     = "overwrite an existing configuration file"

	invalidFormatMessage        = "invalid format value '%s'"
	initializedConfigFormat     = "Initialized configuration at %s\n"
	wroteArtifactsFormat        = "Wrote %s and %s\n"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing scan root.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a scan root that is not a directory.
	errorNotDirectoryFormat = "path '%s' is not a directory"
	// errorLoadConfigurationFormat reports a configuration loading failure.
	errorLoadConfigurationFormat = "loading configuration: %w"
	// errorLoadPatternsFormat reports an ignore-pattern loading failure.
	errorLoadPatternsFormat = "loading ignore patterns for %s: %w"
	// errorCopyClipboardFormat reports a clipboard copy failure.
	errorCopyClipboardFormat = "copying output to clipboard: %w"
)

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatText, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// serializationFormat maps the display format to the serialized artifact
// format. The glyph text display still serializes artifacts as JSON.
func serializationFormat(displayFormat string) string {
	if displayFormat == types.FormatText {
		return types.FormatJSON
	}
	return displayFormat
}

// Execute runs the dirtree application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeCopyFlagArguments(os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createScanCommand(),
		createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// scanOptions stores configuration for the scan command flags.
type scanOptions struct {
	extensions        []string
	format            string
	outputDirectory   string
	printEnabled      bool
	copyEnabled       bool
	configurationPath string
}

// createScanCommand returns the scan subcommand.
func createScanCommand() *cobra.Command {
	var options scanOptions

	scanCommand := &cobra.Command{
		Use:     scanUse,
		Aliases: []string{scanAlias},
		Short:   scanShortDescription,
		Long:    scanLongDescription,
		Example: scanUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			targetPath := defaultPath
			if len(arguments) == 1 {
				targetPath = arguments[0]
			}
			return runScan(command, targetPath, options)
		},
	}

	scanCommand.Flags().StringArrayVar(&options.extensions, extensionFlagName, nil, extensionFlagDescription)
	scanCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatText, formatFlagDescription)
	scanCommand.Flags().StringVar(&options.outputDirectory, outputFlagName, "", outputFlagDescription)
	scanCommand.Flags().BoolVar(&options.printEnabled, printFlagName, true, printFlagDescription)
	scanCommand.Flags().StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	registerCopyFlag(scanCommand.Flags(), &options.copyEnabled)
	return scanCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var useGlobalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if useGlobalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Printf(initializedConfigFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&useGlobalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runScan validates the target path, applies configuration defaults, builds
// the filtered tree, and dispatches the renderings.
func runScan(command *cobra.Command, targetPath string, options scanOptions) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configurationPath,
	})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
	}
	options = applyScanConfiguration(command, options, applicationConfiguration.Scan)

	displayFormat := strings.ToLower(options.format)
	if !isSupportedFormat(displayFormat) {
		return fmt.Errorf(invalidFormatMessage, displayFormat)
	}

	validatedPath, validationError := resolveAndValidateDirectory(targetPath)
	if validationError != nil {
		return validationError
	}

	patternSet, patternLoadError := config.LoadPatternSet(validatedPath.AbsolutePath)
	if patternLoadError != nil {
		return fmt.Errorf(errorLoadPatternsFormat, validatedPath.AbsolutePath, patternLoadError)
	}

	treeBuilder := scan.NewBuilder(scan.Policy{
		Patterns:   patternSet,
		Extensions: utils.DeduplicateStrings(options.extensions),
	})
	rootNode, buildError := treeBuilder.Build(validatedPath.AbsolutePath)
	if buildError != nil {
		return buildError
	}

	renderedOutput, renderError := renderForDisplay(rootNode, displayFormat)
	if renderError != nil {
		return renderError
	}

	if options.outputDirectory != "" {
		artifactWriter := output.Writer{DestinationDirectory: options.outputDirectory}
		artifactPaths, writeError := artifactWriter.WriteArtifacts(rootNode, rootNode.Name, serializationFormat(displayFormat))
		if writeError != nil {
			return writeError
		}
		fmt.Printf(wroteArtifactsFormat, artifactPaths.SerializedPath, artifactPaths.GlyphPath)
	}

	if options.printEnabled {
		fmt.Print(renderedOutput)
	}

	if options.copyEnabled {
		if copyError := clipboard.NewService().Copy(renderedOutput); copyError != nil {
			return fmt.Errorf(errorCopyClipboardFormat, copyError)
		}
	}

	return nil
}

// applyScanConfiguration fills flag values the user did not set from the
// loaded configuration defaults.
func applyScanConfiguration(command *cobra.Command, options scanOptions, defaults config.ScanConfiguration) scanOptions {
	flagSet := command.Flags()
	if !flagSet.Changed(formatFlagName) && defaults.Format != "" {
		options.format = defaults.Format
	}
	if !flagSet.Changed(extensionFlagName) && len(defaults.Extensions) > 0 {
		options.extensions = append([]string{}, defaults.Extensions...)
	}
	if !flagSet.Changed(outputFlagName) && defaults.OutputDir != "" {
		options.outputDirectory = defaults.OutputDir
	}
	if !flagSet.Changed(printFlagName) && defaults.Print != nil {
		options.printEnabled = *defaults.Print
	}
	if !flagSet.Changed(copyFlagName) && defaults.Clipboard != nil {
		options.copyEnabled = *defaults.Clipboard
	}
	return options
}

// renderForDisplay renders the tree in the requested display format.
func renderForDisplay(rootNode *types.TreeNode, displayFormat string) (string, error) {
	if displayFormat == types.FormatText {
		return output.RenderText(rootNode), nil
	}
	serialized, renderError := output.RenderSerialized(rootNode, displayFormat)
	if renderError != nil {
		return "", renderError
	}
	return serialized + "\n", nil
}

// resolveAndValidateDirectory converts the target path to an absolute path and
// verifies that it exists and is a directory. The core is only handed paths
// that already passed this check.
func resolveAndValidateDirectory(targetPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(targetPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, targetPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	fileInformation, statError := os.Stat(cleanPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, cleanPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, cleanPath, statError)
	}
	if !fileInformation.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, cleanPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath}, nil
}
