package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notefetch/internal/connectors/google/keep"
	"github.com/custodia-labs/notefetch/internal/core/ports/driven"
	"github.com/custodia-labs/notefetch/internal/logger"
)

// noteLoader is the loader behind the load command.
// Nil means the real Keep loader; tests substitute a fake.
var noteLoader driven.NoteLoader

// loadJSON is a flag for the load command.
var loadJSON bool

var loadCmd = &cobra.Command{
	Use:   "load [note-id...]",
	Short: "Load Keep notes by ID",
	Long: `Fetch one or more Google Keep notes and print the normalised records.

Notes are fetched strictly in the order given, one request per ID. The
command fails on the first error without printing partial results.

Examples:
  notefetch load 1eKU7kGn8eJCErZ52OC7vCzH
  notefetch load --json noteA noteB noteC`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "Print records as JSON")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	loader := noteLoader
	if loader == nil {
		loader = keep.New()
	}

	logger.Debug("loading %d notes via %s", len(args), loader.Type())

	docs, err := loader.Load(context.Background(), args)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	if loadJSON {
		out, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	for i := range docs {
		cmd.Printf("%s\n", docs[i].URI)
		cmd.Printf("%s\n\n", docs[i].Text)
	}
	cmd.Printf("Loaded %d notes\n", len(docs))
	return nil
}
