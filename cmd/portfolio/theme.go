package main

import (
	"fmt"

	"github.com/musantuli/portfolio/internal/db"
	"github.com/musantuli/portfolio/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the stored theme preference",
	Long:  "Reads and writes the dark/light preference in the local SQLite preferences file.",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeGet,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Store a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Dark), string(theme.Light)},
	RunE:      runThemeSet,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

var themeDBPath string

func init() {
	themeCmd.PersistentFlags().StringVar(&themeDBPath, "db", "", "Path to preferences database (default from config or PREFS_DB)")
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}

// openPreferences opens the preferences database from --db, or from the
// configuration when the flag is unset.
func openPreferences() (*db.DB, error) {
	path := themeDBPath
	if path == "" {
		cfg, _, err := loadSettings()
		if err != nil {
			return nil, err
		}
		path = cfg.PrefsDB
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return database, nil
}

// openThemeStore opens the preferences database and wraps it in a theme store.
func openThemeStore() (*theme.Store, func(), error) {
	database, err := openPreferences()
	if err != nil {
		return nil, nil, err
	}
	return theme.NewStore(database), func() { _ = database.Close() }, nil
}

func runThemeGet(cmd *cobra.Command, _ []string) error {
	database, err := openPreferences()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, theme.NewStore(database).Load(cmd.Context()))

	if verbose {
		prefs, err := database.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range prefs {
			_, _ = fmt.Fprintf(out, "  %s=%s (updated %s)\n", p.Key, p.Value, p.UpdatedAt)
		}
	}
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	if !theme.Valid(args[0]) {
		return fmt.Errorf("invalid theme %q: must be dark or light", args[0])
	}

	store, closeFn, err := openThemeStore()
	if err != nil {
		return err
	}
	defer closeFn()

	t := theme.Theme(args[0])
	store.Save(cmd.Context(), t)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	store, closeFn, err := openThemeStore()
	if err != nil {
		return err
	}
	defer closeFn()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), store.Toggle(cmd.Context()))
	return nil
}
