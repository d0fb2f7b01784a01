package ui

import (
	"errors"
	"folio/internal/catalog"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// EntryForm holds the raw text of the admin form. Values are bound to the
// huh fields built by Form and converted with Entry once the form completes.
type EntryForm struct {
	Title        string
	Description  string
	Technologies string
	Category     catalog.Category
	Status       catalog.Status
	Client       string
	Duration     string
	ImageURL     string
	ProjectURL   string
	PreviewURL   string
}

func NewEntryForm() *EntryForm {
	return &EntryForm{
		Category: catalog.CategoryWeb,
		Status:   catalog.StatusCompleted,
	}
}

// FormIO redirects the form away from the terminal, mainly for tests.
type FormIO struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool
}

func (f *EntryForm) Form(fio *FormIO) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(Required("Title")),
			huh.NewText().
				Title("Description").
				Value(&f.Description).
				Validate(Required("Description")),
			huh.NewInput().
				Title("Technologies").
				Description("Comma separated, e.g. Go, React").
				Value(&f.Technologies),
		),
		huh.NewGroup(
			huh.NewSelect[catalog.Category]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&f.Category),
			huh.NewSelect[catalog.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&f.Status),
			huh.NewInput().
				Title("Client").
				Value(&f.Client),
			huh.NewInput().
				Title("Duration").
				Placeholder("3 months").
				Value(&f.Duration),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Image URL").
				Value(&f.ImageURL).
				Validate(Required("Image URL")),
			huh.NewInput().
				Title("Project URL").
				Value(&f.ProjectURL).
				Validate(Required("Project URL")),
			huh.NewInput().
				Title("Preview image URL").
				Description("Leave empty to reuse the image URL").
				Value(&f.PreviewURL),
		),
	).WithTheme(WizardTheme())

	return fio.apply(form)
}

func (fio *FormIO) apply(form *huh.Form) *huh.Form {
	if fio == nil {
		return form
	}
	if fio.In != nil {
		form = form.WithInput(fio.In)
	}
	if fio.Out != nil {
		form = form.WithOutput(fio.Out)
	}
	return form.WithAccessible(fio.Accessible)
}

func categoryOptions() []huh.Option[catalog.Category] {
	opts := make([]huh.Option[catalog.Category], len(catalog.Categories))
	for i, c := range catalog.Categories {
		opts[i] = huh.NewOption(string(c), c)
	}
	return opts
}

func statusOptions() []huh.Option[catalog.Status] {
	opts := make([]huh.Option[catalog.Status], len(catalog.Statuses))
	for i, s := range catalog.Statuses {
		opts[i] = huh.NewOption(string(s), s)
	}
	return opts
}

// Entry converts the form into a catalog entry. Empty optional text stays
// absent and the preview falls back to the main image.
func (f *EntryForm) Entry() catalog.Entry {
	image := strings.TrimSpace(f.ImageURL)
	preview := strings.TrimSpace(f.PreviewURL)
	if preview == "" {
		preview = image
	}

	return catalog.Entry{
		Title:           strings.TrimSpace(f.Title),
		Description:     strings.TrimSpace(f.Description),
		Technologies:    ParseTechnologies(f.Technologies),
		Category:        f.Category,
		Status:          f.Status,
		Client:          strings.TrimSpace(f.Client),
		Duration:        strings.TrimSpace(f.Duration),
		ImageURL:        image,
		ProjectURL:      strings.TrimSpace(f.ProjectURL),
		ImagePreviewURL: preview,
	}
}

// Summary lists the filled-in fields for RenderWizard.
func (f *EntryForm) Summary() []Field {
	e := f.Entry()
	return []Field{
		{Label: "Title", Value: e.Title},
		{Label: "Technologies", Value: strings.Join(e.Technologies, ", ")},
		{Label: "Category", Value: string(e.Category)},
		{Label: "Status", Value: string(e.Status)},
		{Label: "Client", Value: e.Client, Optional: true},
		{Label: "Duration", Value: e.Duration, Optional: true},
		{Label: "Project URL", Value: e.ProjectURL},
	}
}

// ParseTechnologies splits a comma separated list, trimming each item and
// dropping empties.
func ParseTechnologies(s string) []string {
	techs := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

func Required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " cannot be empty")
		}
		return nil
	}
}

func Confirm(title string, fio *FormIO) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(WizardTheme())

	if err := fio.apply(form).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
