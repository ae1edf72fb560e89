package record

import "fmt"

// Field describes one named, typed position in a schema.
type Field struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// Schema is an ordered list of uniquely named fields with a record-level
// name. Field order is fixed at construction and is load-bearing: the
// write path aligns it positionally with a ColumnTypes table.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema constructs a schema from an ordered field list.
// Duplicate field names and non-positive field counts are rejected.
func NewSchema(name string, fields []Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, &SchemaError{Reason: fmt.Sprintf("schema %q has no fields", name)}
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, &SchemaError{Reason: fmt.Sprintf("schema %q: field %d has no name", name, i)}
		}
		if _, dup := index[f.Name]; dup {
			return nil, &SchemaError{Field: f.Name, Reason: "duplicate field name"}
		}
		index[f.Name] = i
	}
	return &Schema{name: name, fields: append([]Field(nil), fields...), index: index}, nil
}

// Name returns the record-level name of the schema.
func (s *Schema) Name() string { return s.name }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// FieldAt returns the field at position i.
func (s *Schema) FieldAt(i int) Field { return s.fields[i] }

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns a copy of the ordered field list.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}
