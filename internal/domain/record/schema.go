package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// IDColumn is the primary key column every schema carries.
const IDColumn = "id"

const (
	DefaultTable = "sensor_list"
)

// DefaultColumns is the two-column layout (id, name).
var DefaultColumns = []string{"name"}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Schema describes the one record shape a deployment serves:
// the table name and its text attribute columns in declaration order.
type Schema struct {
	Table   string
	Columns []string
}

// NewSchema validates table and column identifiers.
func NewSchema(table string, columns []string) (Schema, error) {
	if !identRe.MatchString(table) {
		return Schema{}, fmt.Errorf("invalid table name %q", table)
	}
	if len(columns) == 0 {
		return Schema{}, fmt.Errorf("table %q: at least one attribute column is required", table)
	}

	seen := make(map[string]struct{}, len(columns))
	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		c = strings.TrimSpace(c)
		if !identRe.MatchString(c) {
			return Schema{}, fmt.Errorf("invalid column name %q", c)
		}
		if strings.EqualFold(c, IDColumn) {
			return Schema{}, fmt.Errorf("column %q is reserved for the primary key", c)
		}
		if _, ok := seen[c]; ok {
			return Schema{}, fmt.Errorf("duplicate column %q", c)
		}
		seen[c] = struct{}{}
		cols = append(cols, c)
	}

	return Schema{Table: table, Columns: cols}, nil
}

// Has reports whether name is one of the attribute columns.
func (s Schema) Has(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks that rec carries a storable id and exactly the schema's attributes.
func (s Schema) Validate(rec Record) error {
	if err := checkIDRange(int64(rec.ID)); err != nil {
		return err
	}
	return s.ValidateAttributes(rec.Attributes)
}

// ValidateAttributes checks that attrs has a value for every column and nothing else.
func (s Schema) ValidateAttributes(attrs Attributes) error {
	for _, c := range s.Columns {
		if _, ok := attrs[c]; !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidInput, c)
		}
	}
	if len(attrs) != len(s.Columns) {
		var unknown []string
		for k := range attrs {
			if !s.Has(k) {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, unknown[0])
	}
	return nil
}

// DecodeCreate parses a create payload: {"id": <int>, "<column>": "<text>", ...}.
func (s Schema) DecodeCreate(body []byte) (Record, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return Record{}, err
	}

	raw, ok := fields[IDColumn]
	if !ok {
		return Record{}, fmt.Errorf("%w: missing field %q", ErrInvalidInput, IDColumn)
	}
	id, err := decodeID(raw)
	if err != nil {
		return Record{}, err
	}
	delete(fields, IDColumn)

	attrs, err := s.decodeAttributes(fields)
	if err != nil {
		return Record{}, err
	}

	return Record{ID: id, Attributes: attrs}, nil
}

// DecodeUpdate parses an update payload for the record at id.
// The body may repeat the id, but it must match.
func (s Schema) DecodeUpdate(id int, body []byte) (Attributes, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields[IDColumn]; ok {
		bodyID, err := decodeID(raw)
		if err != nil {
			return nil, err
		}
		if bodyID != id {
			return nil, fmt.Errorf("%w: id %d in body does not match id %d in path", ErrInvalidInput, bodyID, id)
		}
		delete(fields, IDColumn)
	}

	return s.decodeAttributes(fields)
}

func (s Schema) decodeAttributes(fields map[string]json.RawMessage) (Attributes, error) {
	attrs := make(Attributes, len(fields))
	for k, raw := range fields {
		if !s.Has(k) {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, k)
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: field %q must be a string", ErrInvalidInput, k)
		}
		attrs[k] = v
	}

	if err := s.ValidateAttributes(attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: request body is required", ErrInvalidInput)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidInput, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", ErrInvalidInput)
	}
	return fields, nil
}

func decodeID(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", ErrInvalidInput, IDColumn, err)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: field %q must be an integer", ErrInvalidInput, IDColumn)
	}
	id, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: field %q must be an integer", ErrInvalidInput, IDColumn)
	}
	if err := checkIDRange(id); err != nil {
		return 0, err
	}
	return int(id), nil
}

func checkIDRange(id int64) error {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return fmt.Errorf("%w: id %d is out of range", ErrInvalidInput, id)
	}
	return nil
}
