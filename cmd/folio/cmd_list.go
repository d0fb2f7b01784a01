package main

import (
	"encoding/json"
	"fmt"
	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/util"
)

type ListCmd struct {
	Category string `short:"c" help:"Only entries of this category (web, system, ai-tool)"`
	Names    bool   `short:"n" help:"Output only titles (one per line)"`
	JSON     bool   `name:"json" help:"Output the entries as a JSON array"`
	Start    *int   `help:"First position of the carousel window (shows 3 entries unless --window is set)"`
	Window   int    `short:"w" help:"Show this many entries from --start, wrapping past the end"`
}

const carouselSize = 3

func (cmd *ListCmd) Run(g *Globals) error {
	entries, err := cmd.selectEntries(g.Cat.List())
	if err != nil {
		return err
	}

	switch {
	case cmd.JSON:
		if entries == nil {
			entries = []catalog.Entry{}
		}
		data := assert.Success(json.MarshalIndent(entries, "", "  "))
		fmt.Fprintln(g.Out, string(data))
	case cmd.Names:
		for _, e := range entries {
			fmt.Fprintln(g.Out, e.Title)
		}
	default:
		fmt.Fprint(g.Out, g.Render.RenderEntryList(render.NewEntryListView(entries)))
	}
	return nil
}

func (cmd *ListCmd) selectEntries(entries []catalog.Entry) ([]catalog.Entry, error) {
	if cmd.Category != "" {
		c, err := catalog.ParseCategory(cmd.Category)
		if err != nil {
			return nil, err
		}
		entries = catalog.FilterByCategory(entries, c)
	}
	size, start := cmd.Window, 0
	if cmd.Start != nil {
		start = *cmd.Start
		if size <= 0 {
			size = carouselSize
		}
	}
	if size > 0 {
		entries = catalog.Window(entries, start, size)
	}
	return entries, nil
}
