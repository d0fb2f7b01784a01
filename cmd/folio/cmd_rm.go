package main

import "fmt"

type RmCmd struct {
	Query string `arg:"" help:"Entry id, or part of a title, client or technology"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	entry, err := findEntry(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if !g.Cat.Delete(entry.ID) {
		return fmt.Errorf("failed to remove entry %q", entry.Title)
	}

	fmt.Fprintf(g.Out, "Removed: %s\n", entry.Title)
	return nil
}
