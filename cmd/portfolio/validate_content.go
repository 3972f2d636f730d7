package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/musantuli/portfolio/internal/content"
	"github.com/musantuli/portfolio/internal/schemas"
	"github.com/spf13/cobra"
)

var validateContentCmd = &cobra.Command{
	Use:   "validate-content",
	Short: "Validate a content override file",
	Long:  "Validates a JSON or YAML content file against the embedded content schema before it is used with --config content_file.",
	RunE:  runValidateContent,
}

var validateContentInput string

func init() {
	validateContentCmd.Flags().StringVarP(&validateContentInput, "in", "i", "", "Path to content JSON or YAML file (required)")

	if err := validateContentCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateContentCmd)
}

func runValidateContent(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateContentInput); os.IsNotExist(err) {
		return fmt.Errorf("content file not found: %s", validateContentInput)
	}

	profile, err := content.Load(validateContentInput)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			out := cmd.ErrOrStderr()
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("validation failed: %d error(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s (%d certificates, %d skill groups)\n",
		profile.Name, len(profile.Certificates), len(profile.Skills))
	return nil
}
