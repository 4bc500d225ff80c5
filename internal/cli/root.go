package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds the flags of the validate_model command.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Stdin   bool

	// RunIDs allows overriding the run identifier source (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

const usageText = `Model-First Reasoning: Model Validator

Validates problem models for completeness and consistency.
Accepts XML or JSON format.

Usage:
    validate_model model.xml
    validate_model model.json
    validate_model --stdin < model.xml
`

// NewRootCommand creates the validate_model command with default options.
func NewRootCommand() *cobra.Command {
	return NewValidateCommand(&RootOptions{})
}

// NewValidateCommand creates the validate_model command bound to opts.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate_model <path> | --stdin",
		Short: "Validate a problem model for completeness and consistency",
		Long:  usageText,
		Example: `  validate_model model.xml
  validate_model --format json model.json
  validate_model --stdin < model.xml`,
		Args:          cobra.ArbitraryArgs, // only the first argument is read
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // main decides what reaches stderr
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args, cmd)
		},
	}

	// Flags after the path are positional, so "model.xml --stdin" reads the
	// file and "--stdin model.xml" reads standard input.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read the model from standard input")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
