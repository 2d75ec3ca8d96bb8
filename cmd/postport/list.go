package main

import (
	"fmt"

	"github.com/fwojciec/postport"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := postport.ContentFilter{Limit: c.Limit}
	if c.Owner > 0 {
		filter.OwnerID = &c.Owner
	}

	records, err := deps.Contents.FindContentRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postport.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'postport import' to add some.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.Created.Format(postport.CreatedLayout), r.Title)
	}

	return nil
}
