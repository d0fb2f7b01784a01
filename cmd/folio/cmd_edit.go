package main

import (
	"errors"
	"fmt"
	"folio/internal/catalog"
	"folio/internal/ui"
)

var errNothingToUpdate = errors.New("nothing to update: pass at least one field flag")

type EditCmd struct {
	Query string `arg:"" help:"Entry id, or part of a title, client or technology"`

	Title           *string `help:"New title"`
	Description     *string `help:"New description"`
	Tech            *string `name:"tech" help:"Comma separated technologies (replaces the list)"`
	Category        *string `help:"Category (web, system, ai-tool)"`
	Status          *string `help:"Status (completed, in-progress, demo)"`
	Client          *string `help:"Client name (empty to clear)"`
	Duration        *string `help:"Duration (empty to clear)"`
	Image           *string `help:"Image URL"`
	URL             *string `name:"url" help:"Project URL"`
	Preview         *string `help:"Preview image URL (empty to reuse the image)"`
	Order           *int    `help:"Explicit order value"`
	Disable         bool    `xor:"disabled" help:"Mark the entry disabled"`
	Enable          bool    `xor:"disabled" help:"Clear the disabled flag"`
	DisabledMessage *string `name:"disabled-message" help:"Message shown on a disabled entry"`
}

func (cmd *EditCmd) fields() (catalog.Fields, error) {
	f := catalog.Fields{
		Title:           cmd.Title,
		Description:     cmd.Description,
		Client:          cmd.Client,
		Duration:        cmd.Duration,
		ImageURL:        cmd.Image,
		ProjectURL:      cmd.URL,
		ImagePreviewURL: cmd.Preview,
		Order:           cmd.Order,
		DisabledMessage: cmd.DisabledMessage,
	}
	if cmd.Tech != nil {
		f.Technologies = catalog.Ptr(ui.ParseTechnologies(*cmd.Tech))
	}
	if cmd.Category != nil {
		c, err := catalog.ParseCategory(*cmd.Category)
		if err != nil {
			return catalog.Fields{}, err
		}
		f.Category = &c
	}
	if cmd.Status != nil {
		s, err := catalog.ParseStatus(*cmd.Status)
		if err != nil {
			return catalog.Fields{}, err
		}
		f.Status = &s
	}
	switch {
	case cmd.Disable:
		f.IsDisabled = catalog.Ptr(true)
	case cmd.Enable:
		f.IsDisabled = catalog.Ptr(false)
	}

	if f.IsEmpty() {
		return catalog.Fields{}, errNothingToUpdate
	}
	return f, nil
}

func (cmd *EditCmd) Run(g *Globals) error {
	f, err := cmd.fields()
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

	if !g.Cat.Update(entry.ID, f) {
		return fmt.Errorf("failed to update entry %q", entry.Title)
	}

	fmt.Fprintf(g.Out, "Updated: %s\n", entry.Title)
	return nil
}
