package record

import "fmt"

// Record is an immutable mapping from field name to value, conforming to
// exactly one schema. Records are built fresh per row and never mutated or
// reused across rows.
type Record struct {
	schema *Schema
	values map[string]Value
}

// Schema returns the schema this record conforms to.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the value for a field. Missing and Null are both reported as
// a Null value with ok=false / ok=true respectively distinguishing whether
// the field exists in the schema at all.
func (r *Record) Get(name string) (Value, bool) {
	if _, ok := r.schema.Field(name); !ok {
		return Null{}, false
	}
	v, ok := r.values[name]
	if !ok {
		return Null{}, true
	}
	return v, true
}

// Builder assembles a record against a schema, validating each value's
// kind and nullability as it is set.
type Builder struct {
	schema *Schema
	values map[string]Value
}

// NewBuilder returns a builder for the given schema.
func NewBuilder(schema *Schema) *Builder {
	return &Builder{schema: schema, values: make(map[string]Value, schema.Len())}
}

// Set assigns a value to a field. The value's kind must match the field's
// declared kind; Null is accepted only on nullable fields.
func (b *Builder) Set(name string, v Value) error {
	f, ok := b.schema.Field(name)
	if !ok {
		return &SchemaError{Field: name, Reason: "not in schema"}
	}
	if v == nil {
		v = Null{}
	}
	if v.Kind() == KindNull {
		if !f.Nullable {
			return &SchemaError{Field: name, Reason: "null value for non-nullable field"}
		}
		b.values[name] = Null{}
		return nil
	}
	if v.Kind() != f.Kind {
		return &SchemaError{Field: name, Reason: fmt.Sprintf("value kind %s does not match declared kind %s", v.Kind(), f.Kind)}
	}
	b.values[name] = v
	return nil
}

// Build finalizes the record. Unset nullable fields become Null; an unset
// non-nullable field is a SchemaError.
func (b *Builder) Build() (*Record, error) {
	for i := 0; i < b.schema.Len(); i++ {
		f := b.schema.FieldAt(i)
		if _, ok := b.values[f.Name]; ok {
			continue
		}
		if !f.Nullable {
			return nil, &SchemaError{Field: f.Name, Reason: "no value for non-nullable field"}
		}
		b.values[f.Name] = Null{}
	}
	rec := &Record{schema: b.schema, values: b.values}
	// The builder must not keep write access to the finished record.
	b.values = make(map[string]Value, b.schema.Len())
	return rec, nil
}
