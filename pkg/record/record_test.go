package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema("row", []Field{
		{Name: "id", Kind: KindInt32, Nullable: false},
		{Name: "name", Kind: KindString, Nullable: true},
	})
	require.NoError(t, err)
	return s
}

func TestNewSchema(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr string
	}{
		{
			name:   "valid",
			fields: []Field{{Name: "a", Kind: KindInt32}, {Name: "b", Kind: KindString}},
		},
		{
			name:    "empty",
			fields:  nil,
			wantErr: "no fields",
		},
		{
			name:    "duplicate names",
			fields:  []Field{{Name: "a", Kind: KindInt32}, {Name: "a", Kind: KindString}},
			wantErr: "duplicate field name",
		},
		{
			name:    "unnamed field",
			fields:  []Field{{Name: "", Kind: KindInt32}},
			wantErr: "has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema("row", tt.fields)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.fields), s.Len())
		})
	}
}

func TestSchemaFieldOrder(t *testing.T) {
	s := testSchema(t)
	assert.Equal(t, "id", s.FieldAt(0).Name)
	assert.Equal(t, "name", s.FieldAt(1).Name)

	f, ok := s.Field("name")
	require.True(t, ok)
	assert.Equal(t, KindString, f.Kind)

	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestBuilderSetValidation(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		name    string
		field   string
		v       Value
		wantErr string
	}{
		{"matching kind", "id", Int32(1), ""},
		{"null on nullable", "name", Null{}, ""},
		{"nil treated as null", "name", nil, ""},
		{"null on non-nullable", "id", Null{}, "null value for non-nullable field"},
		{"kind mismatch", "id", String("x"), "does not match declared kind"},
		{"unknown field", "nope", Int32(1), "not in schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(s)
			err := b.Set(tt.field, tt.v)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	s := testSchema(t)

	b := NewBuilder(s)
	require.NoError(t, b.Set("id", Int32(7)))
	rec, err := b.Build()
	require.NoError(t, err)

	v, ok := rec.Get("id")
	require.True(t, ok)
	assert.Equal(t, Int32(7), v)

	// unset nullable field becomes Null
	v, ok = rec.Get("name")
	require.True(t, ok)
	assert.Equal(t, KindNull, v.Kind())

	// field outside the schema
	_, ok = rec.Get("missing")
	assert.False(t, ok)
}

func TestBuilderBuildMissingRequired(t *testing.T) {
	b := NewBuilder(testSchema(t))
	_, err := b.Build()
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "id", se.Field)
}

func TestBuilderDoesNotAliasBuiltRecord(t *testing.T) {
	s := testSchema(t)
	b := NewBuilder(s)
	require.NoError(t, b.Set("id", Int32(1)))
	rec, err := b.Build()
	require.NoError(t, err)

	// Mutating the builder after Build must not leak into the record.
	require.NoError(t, b.Set("id", Int32(99)))
	v, _ := rec.Get("id")
	assert.Equal(t, Int32(1), v)
}
