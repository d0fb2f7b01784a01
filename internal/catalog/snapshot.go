package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type unmarshalFunc func(data []byte, v any) error

// orderHint records whether a stored entry carried an explicit order.
type orderHint struct {
	Order *int `json:"order" yaml:"order"`
}

func decodeSnapshot(doc []byte) ([]Entry, error) {
	return decodeEntries(json.Unmarshal, doc)
}

func decodeSeed(doc []byte) ([]Entry, error) {
	return decodeEntries(yaml.Unmarshal, doc)
}

// decodeEntries parses a sequence of entries and assigns each entry
// without an explicit order its position in the sequence. Every element
// must be a mapping; a null or scalar element makes the document malformed.
func decodeEntries(unmarshal unmarshalFunc, doc []byte) ([]Entry, error) {
	var hints []*orderHint
	if err := unmarshal(doc, &hints); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if hints == nil {
		return nil, fmt.Errorf("%w: not an entry sequence", ErrMalformedSnapshot)
	}
	for i, h := range hints {
		if h == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrMalformedSnapshot, i)
		}
	}

	var entries []Entry
	if err := unmarshal(doc, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	for i := range entries {
		if hints[i].Order == nil {
			entries[i].Order = i
		}
	}
	return entries, nil
}

func encodeSnapshot(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}
