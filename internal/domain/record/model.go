package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Attributes holds the text columns of a record keyed by column name.
type Attributes map[string]string

// Clone returns a copy that does not share storage with a.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Record is a single row of the configured table.
// ID is supplied by the client and never changes after creation.
type Record struct {
	ID         int        `json:"id"`
	Attributes Attributes `json:"-"`
}

// MarshalJSON renders the record flat: id first, then attributes in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	keys := r.Attributes.Keys()

	var buf bytes.Buffer
	buf.WriteString(`{"id":`)
	fmt.Fprintf(&buf, "%d", r.ID)
	for _, k := range keys {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Attributes[k])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the flat form produced by MarshalJSON.
// It is lenient about which attributes are present; schema checks live in Schema.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rec := Record{Attributes: make(Attributes, len(raw))}
	for k, v := range raw {
		if k == IDColumn {
			if err := json.Unmarshal(v, &rec.ID); err != nil {
				return fmt.Errorf("field %q: %w", k, err)
			}
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
		rec.Attributes[k] = s
	}

	*r = rec
	return nil
}
