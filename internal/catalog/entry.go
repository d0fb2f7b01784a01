package catalog

import (
	"fmt"
	"slices"
)

type Category string

const (
	CategoryWeb    Category = "web"
	CategorySystem Category = "system"
	CategoryAITool Category = "ai-tool"
)

var Categories = []Category{CategoryWeb, CategorySystem, CategoryAITool}

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusDemo       Status = "demo"
)

var Statuses = []Status{StatusCompleted, StatusInProgress, StatusDemo}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !slices.Contains(Categories, c) {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !slices.Contains(Statuses, st) {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

type Entry struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	Technologies    []string `json:"technologies" yaml:"technologies"`
	Category        Category `json:"category" yaml:"category"`
	Status          Status   `json:"status" yaml:"status"`
	Client          string   `json:"client,omitempty" yaml:"client,omitempty"`
	Duration        string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	ImageURL        string   `json:"imageUrl" yaml:"imageUrl"`
	ProjectURL      string   `json:"projectUrl" yaml:"projectUrl"`
	ImagePreviewURL string   `json:"imagePreviewUrl,omitempty" yaml:"imagePreviewUrl,omitempty"`
	Order           int      `json:"order" yaml:"order"`
	IsDisabled      bool     `json:"isDisabled,omitempty" yaml:"isDisabled,omitempty"`
	DisabledMessage string   `json:"disabledMessage,omitempty" yaml:"disabledMessage,omitempty"`
}

func (e Entry) PreviewURL() string {
	if e.ImagePreviewURL == "" {
		return e.ImageURL
	}
	return e.ImagePreviewURL
}

func (e Entry) WithTechnologies(techs ...string) Entry {
	newE := e
	newE.Technologies = slices.Clone(techs)
	return newE
}

func (e Entry) WithCategory(c Category) Entry {
	newE := e
	newE.Category = c
	return newE
}

func (e Entry) WithStatus(s Status) Entry {
	newE := e
	newE.Status = s
	return newE
}

func (e Entry) clone() Entry {
	e.Technologies = slices.Clone(e.Technologies)
	return e
}

// Fields is a partial entry for Update. Nil pointers are left untouched.
type Fields struct {
	Title           *string
	Description     *string
	Technologies    *[]string
	Category        *Category
	Status          *Status
	Client          *string
	Duration        *string
	ImageURL        *string
	ProjectURL      *string
	ImagePreviewURL *string
	Order           *int
	IsDisabled      *bool
	DisabledMessage *string
}

func (f Fields) IsEmpty() bool {
	return f == Fields{}
}

func (f Fields) apply(e Entry) Entry {
	setIf(&e.Title, f.Title)
	setIf(&e.Description, f.Description)
	if f.Technologies != nil {
		e.Technologies = slices.Clone(*f.Technologies)
	}
	setIf(&e.Category, f.Category)
	setIf(&e.Status, f.Status)
	setIf(&e.Client, f.Client)
	setIf(&e.Duration, f.Duration)
	setIf(&e.ImageURL, f.ImageURL)
	setIf(&e.ProjectURL, f.ProjectURL)
	setIf(&e.ImagePreviewURL, f.ImagePreviewURL)
	setIf(&e.Order, f.Order)
	setIf(&e.IsDisabled, f.IsDisabled)
	setIf(&e.DisabledMessage, f.DisabledMessage)
	return e
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func Ptr[T any](v T) *T {
	return &v
}
