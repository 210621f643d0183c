package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/cubetools/gocubing/internal/app/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Start the JSON HTTP API.

Endpoints: POST /init starts a vision session for a given cube size,
POST /frame feeds observed face grids into it, POST /finish returns the
voted cube state, and POST /solve returns the staged solution for a
state string.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8421", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(verbose, log.Printf)
	fmt.Printf("Listening on %s\n", serveAddr)
	return srv.ListenAndServe(serveAddr)
}
