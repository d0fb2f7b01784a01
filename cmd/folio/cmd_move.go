package main

import (
	"fmt"
	"folio/internal/catalog"
)

type MoveCmd struct {
	Query     string `arg:"" help:"Entry id, or part of a title, client or technology"`
	Direction string `arg:"" enum:"up,down" help:"up or down"`
}

func (cmd *MoveCmd) Run(g *Globals) error {
	d, err := catalog.ParseDirection(cmd.Direction)
	if err != nil {
		return err
	}

	entry, err := findEntry(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	// Reorder also refuses moves past either end; only storage failures
	// leave a movable entry in place.
	if !g.Cat.Reorder(entry.ID, d) {
		return fmt.Errorf("cannot move entry %q %s", entry.Title, d)
	}

	fmt.Fprintf(g.Out, "Moved %s: %s\n", d, entry.Title)
	return nil
}
