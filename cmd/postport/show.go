package main

import (
	"fmt"

	"github.com/fwojciec/postport"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Contents.FindContentRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:       %s\n", rec.ID)
	fmt.Fprintf(deps.Stdout, "Title:    %s\n", rec.Title)
	if rec.Summary != "" {
		fmt.Fprintf(deps.Stdout, "Summary:  %s\n", rec.Summary)
	}
	fmt.Fprintf(deps.Stdout, "Created:  %s\n", rec.Created.Format(postport.CreatedLayout))
	fmt.Fprintf(deps.Stdout, "Source:   %s\n", rec.SourcePath)
	fmt.Fprintf(deps.Stdout, "Owner:    %d\n", rec.OwnerID)
	fmt.Fprintf(deps.Stdout, "Hash:     %s\n", rec.BodyHash)

	for i, a := range rec.Assets {
		role := "inline"
		if i == 0 {
			role = "lead"
		}
		fmt.Fprintf(deps.Stdout, "Asset:    %s  %-6s  %s\n", a.ID, role, a.Path)
	}

	if c.Body {
		fmt.Fprintf(deps.Stdout, "\n%s\n", rec.Body)
	}

	return nil
}
