// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/musantuli/portfolio/internal/content"
	"github.com/musantuli/portfolio/internal/projects"
	"github.com/musantuli/portfolio/internal/types"
	"github.com/musantuli/portfolio/internal/view"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the content record.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("GitHub:   %s\n", profile.GitHub.Username))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		for _, g := range profile.Skills {
			// The overflow count goes before the list so box truncation keeps it.
			sb.WriteString(fmt.Sprintf("  • %s [%s]", g.Name, content.SkillIcon(g.Name)))
			if len(g.Skills) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf(" (+%d)", len(g.Skills)-maxItemsToShow))
			}
			count := min(len(g.Skills), maxItemsToShow)
			sb.WriteString(": " + strings.Join(g.Skills[:count], ", ") + "\n")
		}
	}

	p.printBox("CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs the resolved project list, marking featured entries
// and the fallback advisory.
func (p *Printer) PrintProjects(result *projects.Result) {
	if result == nil || len(result.Projects) == 0 {
		return
	}

	var sb strings.Builder
	source := "GitHub"
	if result.Fallback {
		source = "curated (" + result.Advisory + ")"
	}
	sb.WriteString(fmt.Sprintf("Source: %s\n", source))
	sb.WriteString(fmt.Sprintf("Total projects: %d\n\n", len(result.Projects)))

	count := min(len(result.Projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		repo := result.Projects[i]
		marker := " "
		if result.IsFeatured(repo.Name) {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, repo.Name))
		if lang := repo.LanguageOr(""); lang != "" {
			sb.WriteString(fmt.Sprintf("    Language: %s (%s)\n", lang, content.LanguageColor(lang)))
		}
		if topics := view.TopTopics(repo.Topics, 3); len(topics) > 0 {
			sb.WriteString(fmt.Sprintf("    Topics: %s\n", strings.Join(topics, ", ")))
		}
		if repo.UpdatedAt != "" {
			sb.WriteString(fmt.Sprintf("    Updated: %s\n", view.FormatDate(repo.UpdatedAt, false)))
		}
	}

	if len(result.Projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(result.Projects)-maxItemsToShow))
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertificates outputs certificate counts per category.
func (p *Printer) PrintCertificates(certs []types.Certificate) {
	if len(certs) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, c := range certs {
		counts[c.Category]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total certificates: %d\n\n", len(certs)))
	for _, tab := range content.CertificateCategories()[1:] {
		if n := counts[tab.Value]; n > 0 {
			sb.WriteString(fmt.Sprintf("  • %-12s %d  (%s)\n", tab.Label, n, content.CategoryColor(tab.Value)))
		}
	}

	p.printBox("CERTIFICATES", strings.TrimSuffix(sb.String(), "\n"))
}
