package main

import (
	"fmt"
	"strings"

	"github.com/musantuli/portfolio/internal/content"
	"github.com/musantuli/portfolio/internal/filter"
	"github.com/musantuli/portfolio/internal/observability"
	"github.com/musantuli/portfolio/internal/types"
	"github.com/musantuli/portfolio/internal/view"
	"github.com/spf13/cobra"
)

var certificatesCmd = &cobra.Command{
	Use:   "certificates",
	Short: "List certificates, optionally filtered by category",
	RunE:  runCertificates,
}

var certificatesCategory string

func init() {
	certificatesCmd.Flags().StringVarP(&certificatesCategory, "category", "c", filter.All, "Category: all, Cloud, Programming, Management or DevOps")
	rootCmd.AddCommand(certificatesCmd)
}

func runCertificates(cmd *cobra.Command, _ []string) error {
	if !content.IsCategory(certificatesCategory) {
		valid := make([]string, 0, 5)
		for _, tab := range content.CertificateCategories() {
			valid = append(valid, tab.Value)
		}
		return fmt.Errorf("unknown category %q (valid: %s)", certificatesCategory, strings.Join(valid, ", "))
	}

	cfg, profile, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose || cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintProfile(profile)
		printer.PrintCertificates(profile.Certificates)
	}
	certs := filter.ByCategory(profile.Certificates, certificatesCategory, types.CertificateCategory)
	if len(certs) == 0 {
		_, _ = fmt.Fprintf(out, "No certificates in category %s\n", certificatesCategory)
		return nil
	}

	for _, c := range certs {
		_, _ = fmt.Fprintf(out, "[%d] %s\n", c.ID, c.Title)
		_, _ = fmt.Fprintf(out, "    %s, %s (%s)\n", c.Issuer, view.FormatDate(c.Date, true), c.Category)
		if c.CredentialID != "" {
			_, _ = fmt.Fprintf(out, "    Credential: %s\n", c.CredentialID)
		}
		if c.VerificationURL != "" {
			_, _ = fmt.Fprintf(out, "    Verify: %s\n", c.VerificationURL)
		}
	}
	return nil
}
