package main

import (
	"fmt"

	"github.com/fwojciec/postport"
	"github.com/fwojciec/postport/ingest"
)

// maxURLWidth bounds image URLs in progress output.
const maxURLWidth = 80

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if deps.Importer == nil {
		return fmt.Errorf("importer not configured")
	}

	deps.Importer.OwnerID = c.Owner
	deps.Importer.AltFallback = ingest.AltFallback(c.AltFallback)
	deps.Importer.Align = c.Align
	deps.Importer.ViewMode = c.ViewMode
	deps.Importer.FetchTimeout = c.FetchTimeout

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d export files\n", event.Total)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%d assets)\n", event.Completed, event.Total, event.Title, event.Assets)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, postport.ErrorMessage(event.Error))
		case ingest.ProgressImageSkipped:
			fmt.Fprintf(deps.Stderr, "    image %s: %s\n", ingest.TruncateURL(event.URL, maxURLWidth), postport.ErrorMessage(event.Error))
		case ingest.ProgressFinished:
			// Summary printed after import completes
		}
	}

	result, err := deps.Importer.ImportDir(deps.Ctx, c.Dir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d records with %d assets, %s (%d files, %d skipped)\n",
		result.Records, result.Assets, ingest.FormatBytes(result.Bytes), result.Files, result.Skipped)

	return nil
}
