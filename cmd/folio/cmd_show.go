package main

import (
	"fmt"
	"folio/internal/catalog"
	"io"
	"strings"
)

type ShowCmd struct {
	Query string `arg:"" help:"Entry id, or part of a title, client or technology"`
	ID    bool   `name:"id" help:"Output only the id (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	entry, err := findEntry(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if cmd.ID {
		fmt.Fprintln(g.Out, entry.ID)
		return nil
	}

	writeEntry(g.Out, entry)
	return nil
}

func writeEntry(w io.Writer, e catalog.Entry) {
	line := func(label, value string) {
		fmt.Fprintf(w, "%-14s%s\n", label+":", value)
	}

	line("ID", e.ID)
	line("Title", e.Title)
	line("Description", e.Description)
	line("Technologies", strings.Join(e.Technologies, ", "))
	line("Category", string(e.Category))
	line("Status", string(e.Status))
	if e.Client != "" {
		line("Client", e.Client)
	}
	if e.Duration != "" {
		line("Duration", e.Duration)
	}
	line("Image", e.ImageURL)
	line("Preview", e.PreviewURL())
	line("URL", e.ProjectURL)
	line("Order", fmt.Sprint(e.Order))
	if e.IsDisabled {
		disabled := "yes"
		if e.DisabledMessage != "" {
			disabled += " (" + e.DisabledMessage + ")"
		}
		line("Disabled", disabled)
	}
}
