package main

import (
	"errors"
	"fmt"
	"folio/internal/ui"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt"`
}

func (cmd *ResetCmd) Run(g *Globals) error {
	if !cmd.Yes {
		ok, err := ui.Confirm("Discard all stored entries and restore the defaults?", g.FormIO)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(g.Out, "Reset cancelled.")
			return nil
		}
	}

	if !g.Cat.Reset() {
		return errors.New("failed to reset catalog")
	}

	g.Log.Info("catalog reset to defaults")

	restored := fmt.Sprintf("%d default entries restored", len(g.Cat.List()))
	fmt.Fprint(g.Out, ui.RenderSuccess("Reset", "catalog", "", []string{restored}))
	return nil
}
