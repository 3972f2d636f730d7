package main

import (
	"fmt"
	"log"

	"github.com/musantuli/portfolio/internal/contact"
	"github.com/musantuli/portfolio/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long:  `Start an HTTP server that renders the portfolio page and exposes its JSON API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, profile, err := loadSettings()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	if !contact.Configured(profile.EmailJS) {
		log.Printf("[contact] EmailJS tokens are not configured; contact submissions will fail")
	}

	srv, err := server.New(server.Config{
		Addr:     cfg.ListenAddr(),
		Profile:  profile,
		Projects: newFetcher(cfg, profile),
		Contact:  contact.NewService(contact.NewEmailJSRelay(profile.EmailJS, nil), profile.Name),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
