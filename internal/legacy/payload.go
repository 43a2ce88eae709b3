package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Recognized top-level collection keys in a legacy export.
const (
	KeyAssistidos = "assistidos"
	KeyMembros    = "membros"
	KeyEventos    = "eventos"
)

// Entry is one legacy record together with its opaque legacy ID.
type Entry struct {
	ID     string
	Record Record
}

// Collection holds the records of one legacy collection in the order they
// appear in the export. Migration processes records sequentially, so the
// iteration order has to be stable rather than Go map order.
type Collection struct {
	entries []Entry
}

// Len returns the number of records in the collection.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns the records in export order.
func (c *Collection) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

// Add appends a record. Used by tests and the analyzer to build payloads
// programmatically.
func (c *Collection) Add(id string, rec Record) {
	c.entries = append(c.entries, Entry{ID: id, Record: rec})
}

// UnmarshalJSON decodes a JSON object of id -> record while preserving key
// order. encoding/json would hand us an unordered map, so walk the token
// stream instead.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode collection: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("collection must be a JSON object, got %v", tok)
	}

	c.entries = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode record key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected record key token: %v", keyTok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode record %q: %w", key, err)
		}
		// A record that is not an object still gets an entry; its fields all
		// default at transform time.
		rec, _ := raw.(map[string]any)
		c.entries = append(c.entries, Entry{ID: key, Record: normalize(rec)})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode collection: %w", err)
	}
	return nil
}

// normalize converts json.Number values back to float64 so Record accessors
// see the same types regardless of how the payload was built.
func normalize(rec Record) Record {
	for k, v := range rec {
		rec[k] = normalizeValue(v)
	}
	return rec
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return f
	case map[string]any:
		for k, nested := range val {
			val[k] = normalizeValue(nested)
		}
		return val
	case []any:
		for i, nested := range val {
			val[i] = normalizeValue(nested)
		}
		return val
	}
	return v
}

// Payload is one uploaded legacy export. Collections absent from the export
// stay nil and produce no migration progress entry at all.
type Payload struct {
	Assistidos *Collection `json:"assistidos,omitempty"`
	Membros    *Collection `json:"membros,omitempty"`
	Eventos    *Collection `json:"eventos,omitempty"`
}

// ParsePayload decodes a legacy export. A payload that is not a JSON object
// is a fatal error; record-level garbage is tolerated and handled downstream
// by transform-time defaulting.
func ParsePayload(data []byte) (*Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("payload must be a JSON object")
	}

	var payload Payload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}
	return &payload, nil
}
