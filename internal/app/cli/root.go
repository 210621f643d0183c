// Package cli implements the command-line interface for gocubing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubetools/gocubing/internal/app/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocubing",
	Short: "NxN cube solver",
	Long: `gocubing - scramble, render, and solve Rubik's cubes of any size.

Generate scrambles, compute layered solutions with a per-stage breakdown,
walk through a solution interactively, serve the solver over HTTP, and
keep a history of past solves.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocubing/gocubing.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the history database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
