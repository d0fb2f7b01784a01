package proptest

import (
	"encoding/json"
	"fmt"
	"folio/internal/catalog"

	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

var (
	titleGen    = rapid.StringMatching(`[A-Z][a-zA-Z0-9 ]{0,20}`)
	descGen     = rapid.StringMatching(`[a-zA-Z ,.]{0,60}`)
	techGen     = rapid.StringMatching(`[A-Z][a-zA-Z0-9.+#]{0,8}`)
	shortGen    = rapid.StringMatching(`[a-zA-Z ]{1,12}`)
	urlPathGen  = rapid.StringMatching(`[a-z]{3,10}`)
	queryGen    = rapid.StringMatching(`[a-zA-Z.]{1,6}`)
	absentIDGen = rapid.StringMatching(`absent-[a-z]{4}`)
)

func optional(t *rapid.T, gen *rapid.Generator[string], label string) string {
	if rapid.Bool().Draw(t, label+"Set") {
		return gen.Draw(t, label)
	}
	return ""
}

// entryGen draws an entry without id or order, the shape callers pass to
// Create.
func entryGen() *rapid.Generator[catalog.Entry] {
	return rapid.Custom(func(t *rapid.T) catalog.Entry {
		slug := urlPathGen.Draw(t, "slug")
		e := catalog.Entry{
			Title:        titleGen.Draw(t, "title"),
			Description:  descGen.Draw(t, "description"),
			Technologies: rapid.SliceOfN(techGen, 0, 4).Draw(t, "technologies"),
			Category:     rapid.SampledFrom(catalog.Categories).Draw(t, "category"),
			Status:       rapid.SampledFrom(catalog.Statuses).Draw(t, "status"),
			Client:       optional(t, shortGen, "client"),
			Duration:     optional(t, shortGen, "duration"),
			ImageURL:     "/images/" + slug + ".png",
			ProjectURL:   "https://" + slug + ".example",
		}
		if rapid.Bool().Draw(t, "hasPreview") {
			e.ImagePreviewURL = "/images/" + slug + ".gif"
		}
		if rapid.Bool().Draw(t, "disabled") {
			e.IsDisabled = true
			e.DisabledMessage = optional(t, shortGen, "disabledMessage")
		}
		return e
	})
}

// seedGen draws a non-empty seed dataset with stable ids.
func seedGen() *rapid.Generator[[]catalog.Entry] {
	return rapid.Custom(func(t *rapid.T) []catalog.Entry {
		entries := rapid.SliceOfN(entryGen(), 1, 6).Draw(t, "seed")
		for i := range entries {
			entries[i].ID = fmt.Sprintf("seed-%d", i)
		}
		return entries
	})
}

// seedDoc renders entries as a YAML seed without order keys.
func seedDoc(t *rapid.T, entries []catalog.Entry) []byte {
	docs := make([]map[string]any, len(entries))
	for i, e := range entries {
		m := entryMap(t, e)
		delete(m, "order")
		docs[i] = m
	}
	out, err := yaml.Marshal(docs)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	return out
}

// entryMap turns an entry into its JSON object form so tests can drop
// or rewrite individual keys.
func entryMap(t *rapid.T, e catalog.Entry) map[string]any {
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	return m
}

func fieldsGen() *rapid.Generator[catalog.Fields] {
	return rapid.Custom(func(t *rapid.T) catalog.Fields {
		var f catalog.Fields
		if rapid.Bool().Draw(t, "setTitle") {
			f.Title = catalog.Ptr(titleGen.Draw(t, "title"))
		}
		if rapid.Bool().Draw(t, "setTechnologies") {
			f.Technologies = catalog.Ptr(rapid.SliceOfN(techGen, 0, 3).Draw(t, "technologies"))
		}
		if rapid.Bool().Draw(t, "setCategory") {
			f.Category = catalog.Ptr(rapid.SampledFrom(catalog.Categories).Draw(t, "category"))
		}
		if rapid.Bool().Draw(t, "setStatus") {
			f.Status = catalog.Ptr(rapid.SampledFrom(catalog.Statuses).Draw(t, "status"))
		}
		if rapid.Bool().Draw(t, "setClient") {
			f.Client = catalog.Ptr(optional(t, shortGen, "client"))
		}
		if rapid.Bool().Draw(t, "setOrder") {
			f.Order = catalog.Ptr(rapid.IntRange(-3, 12).Draw(t, "order"))
		}
		if rapid.Bool().Draw(t, "setDisabled") {
			f.IsDisabled = catalog.Ptr(rapid.Bool().Draw(t, "isDisabled"))
		}
		return f
	})
}

func directionGen() *rapid.Generator[catalog.Direction] {
	return rapid.SampledFrom([]catalog.Direction{catalog.Up, catalog.Down})
}

// storedDocGen draws a JSON snapshot whose entries carry arbitrary,
// possibly tied or missing, orders.
func storedDocGen() *rapid.Generator[[]byte] {
	return rapid.Custom(func(t *rapid.T) []byte {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		docs := make([]map[string]any, n)
		for i := range n {
			e := entryGen().Draw(t, "entry")
			e.ID = fmt.Sprintf("stored-%d", i)
			m := entryMap(t, e)
			if rapid.Bool().Draw(t, "hasOrder") {
				m["order"] = rapid.IntRange(-2, 4).Draw(t, "order")
			} else {
				delete(m, "order")
			}
			docs[i] = m
		}
		data, err := json.Marshal(docs)
		if err != nil {
			t.Fatalf("marshal snapshot: %v", err)
		}
		return data
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("[\n["),
		rapid.Just("null"),
		rapid.Just("{}"),
		rapid.Just(`{"id": "1"}`),
		rapid.Just(`"portfolio"`),
		rapid.Just("42"),
		rapid.Just("[1, 2, 3]"),
		rapid.Just(`[null, {"id": "1", "order": 0}]`),
		rapid.Just(`[{"id": "1"}, null]`),
		rapid.Just(`[{"id": 12345}]`),
		rapid.Just(`[{"id": "1", "order": "first"}]`),
		rapid.Just(`[{"id": "1", "technologies": "Go"}]`),
		rapid.Just(`[{"id": "1"}`),
		rapid.StringMatching(`[^a-zA-Z0-9\s\[\]{}"]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return "{" + string(bytes)
		}),
	)
}
