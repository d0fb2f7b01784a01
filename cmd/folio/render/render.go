package render

import (
	"folio/internal/catalog"
	"strings"
)

type Renderer interface {
	RenderEntryList(view EntryListView) string
}

type EntryListView struct {
	Items []EntryListItem
}

type EntryListItem struct {
	ID              string
	Title           string
	Category        string
	Status          string
	Technologies    string
	Order           int
	Disabled        bool
	DisabledMessage string
}

func NewEntryListView(entries []catalog.Entry) EntryListView {
	items := make([]EntryListItem, len(entries))
	for i, e := range entries {
		items[i] = EntryListItem{
			ID:              e.ID,
			Title:           e.Title,
			Category:        string(e.Category),
			Status:          string(e.Status),
			Technologies:    strings.Join(e.Technologies, ", "),
			Order:           e.Order,
			Disabled:        e.IsDisabled,
			DisabledMessage: e.DisabledMessage,
		}
	}
	return EntryListView{Items: items}
}

func (v EntryListView) IsEmpty() bool {
	return len(v.Items) == 0
}
