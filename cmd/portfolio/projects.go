package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/musantuli/portfolio/internal/observability"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Fetch and print the project listing",
	Long:  "Runs the project fetcher once, exactly as a page render would, and prints the resolved list with any fallback advisory.",
	RunE:  runProjects,
}

var (
	projectsUser    string
	projectsAPIBase string
	projectsJSON    bool
)

func init() {
	projectsCmd.Flags().StringVarP(&projectsUser, "user", "u", "", "GitHub user (default from content)")
	projectsCmd.Flags().StringVar(&projectsAPIBase, "api-base", "", "GitHub API base URL (default from config)")
	projectsCmd.Flags().BoolVar(&projectsJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, _ []string) error {
	cfg, profile, err := loadSettings()
	if err != nil {
		return err
	}
	if projectsAPIBase != "" {
		cfg.GitHubAPIBase = projectsAPIBase
	}
	owner := profile.GitHub.Username
	if projectsUser != "" {
		owner = projectsUser
	}

	result := newFetcher(cfg, profile).FetchProjects(cmd.Context(), owner)
	out := cmd.OutOrStdout()

	if projectsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode projects: %w", err)
		}
		return nil
	}

	if result.Fallback {
		_, _ = fmt.Fprintf(out, "Note: %s\n\n", result.Advisory)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tLANGUAGE\tSTARS\tFORKS\tURL")
	for _, repo := range result.Projects {
		name := repo.Name
		if result.IsFeatured(repo.Name) {
			name += " *"
		}
		lang := repo.LanguageOr("-")
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", name, lang, repo.StargazersCount, repo.ForksCount, repo.HTMLURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if verbose || cfg.Verbose {
		_, _ = fmt.Fprintln(out)
		observability.NewPrinter(out).PrintProjects(&result)
	}
	return nil
}
