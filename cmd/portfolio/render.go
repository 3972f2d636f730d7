package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yosssi/gohtml"

	"github.com/musantuli/portfolio/internal/projects"
	"github.com/musantuli/portfolio/internal/theme"
	"github.com/musantuli/portfolio/internal/view"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the portfolio page to a static HTML file",
	Long:  "Renders the same page the server returns for GET /, formatted for reading, and writes it to a file.",
	RunE:  runRender,
}

var (
	renderOutput   string
	renderTheme    string
	renderCategory string
	renderOffline  bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file (required)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", string(theme.Dark), "Theme to render: dark or light")
	renderCmd.Flags().StringVarP(&renderCategory, "category", "c", "", "Certificate category to preselect")
	renderCmd.Flags().BoolVar(&renderOffline, "offline", false, "Skip the GitHub listing and render the curated projects")

	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	if !theme.Valid(renderTheme) {
		return fmt.Errorf("invalid theme %q: must be dark or light", renderTheme)
	}

	cfg, profile, err := loadSettings()
	if err != nil {
		return err
	}

	var result projects.Result
	if renderOffline {
		result = projects.Resolve(nil, context.Canceled)
		result.Featured = append([]string(nil), profile.GitHub.FeaturedRepos...)
		result.FetchedAt = time.Now()
	} else {
		result = newFetcher(cfg, profile).FetchProjects(cmd.Context(), profile.GitHub.Username)
	}

	page := view.BuildPage(view.PageInput{
		Profile:  profile,
		Projects: result,
		Theme:    theme.Theme(renderTheme),
		Category: renderCategory,
		Now:      time.Now(),
	})

	var buf bytes.Buffer
	if err := view.Render(&buf, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(renderOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(renderOutput, gohtml.FormatBytes(buf.Bytes()), 0644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d projects and %d certificates to %s\n", len(page.Projects), len(page.Certificates), renderOutput)
	if page.Fallback {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Note: %s\n", page.Advisory)
	}
	return nil
}
