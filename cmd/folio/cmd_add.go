package main

import (
	"errors"
	"fmt"
	"folio/internal/catalog"
	"folio/internal/ui"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

type AddCmd struct {
	Title       string `short:"t" help:"Project title"`
	Description string `help:"Project description"`
	Tech        string `name:"tech" help:"Comma separated technologies"`
	Category    string `default:"web" enum:"web,system,ai-tool" help:"Category (web, system, ai-tool)"`
	Status      string `default:"completed" enum:"completed,in-progress,demo" help:"Status (completed, in-progress, demo)"`
	Client      string `help:"Client name"`
	Duration    string `help:"Duration, e.g. \"3 months\""`
	Image       string `help:"Image URL"`
	URL         string `name:"url" help:"Project URL"`
	Preview     string `help:"Preview image URL (defaults to the image)"`
	Interactive bool   `short:"i" help:"Fill in the entry with a form"`
}

func (cmd *AddCmd) form() *ui.EntryForm {
	f := ui.NewEntryForm()
	f.Title = cmd.Title
	f.Description = cmd.Description
	f.Technologies = cmd.Tech
	f.Category = catalog.Category(cmd.Category)
	f.Status = catalog.Status(cmd.Status)
	f.Client = cmd.Client
	f.Duration = cmd.Duration
	f.ImageURL = cmd.Image
	f.ProjectURL = cmd.URL
	f.PreviewURL = cmd.Preview
	return f
}

func validateAddForm(f *ui.EntryForm) error {
	checks := []struct {
		label, value string
	}{
		{"Title", f.Title},
		{"Description", f.Description},
		{"Image URL", f.ImageURL},
		{"Project URL", f.ProjectURL},
	}
	var errs []error
	for _, c := range checks {
		if err := ui.Required(c.label)(c.value); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := catalog.ParseCategory(string(f.Category)); err != nil {
		errs = append(errs, err)
	}
	if _, err := catalog.ParseStatus(string(f.Status)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (cmd *AddCmd) Run(g *Globals) error {
	f := cmd.form()

	if cmd.Interactive {
		if err := f.Form(g.FormIO).Run(); err != nil {
			return handleFormError(err)
		}
		fmt.Fprint(g.Out, ui.RenderWizard("Add project", f.Summary(), -1))
	}

	if err := validateAddForm(f); err != nil {
		return err
	}

	entry := f.Entry()
	created, ok := g.Cat.Create(entry)
	if !ok {
		return fmt.Errorf("failed to add entry %q", entry.Title)
	}

	g.Log.Info("entry added", zap.String("id", created.ID), zap.Int("order", created.Order))

	checks := []string{
		fmt.Sprintf("order %d", created.Order),
		fmt.Sprintf("%s, %s", created.Category, created.Status),
	}
	fmt.Fprint(g.Out, ui.RenderSuccess("Added", created.Title, created.ID, checks))
	return nil
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
