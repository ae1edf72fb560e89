package adapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dbrow/pkg/record"
	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

func peopleSchema(t *testing.T) *record.Schema {
	t.Helper()
	schema, err := record.NewSchema("people", []record.Field{
		{Name: "id", Kind: record.KindInt32},
		{Name: "name", Kind: record.KindString, Nullable: true},
	})
	require.NoError(t, err)
	return schema
}

func metadataRows(typeNames ...string) *sqlmock.Rows {
	names := []string{"id", "name"}
	cols := make([]*sqlmock.Column, len(typeNames))
	for i, tn := range typeNames {
		cols[i] = sqlmock.NewColumn(names[i]).OfType(tn, nil).Nullable(true)
	}
	return sqlmock.NewRowsWithColumnDefinition(cols...)
}

func TestCaptureColumnTypes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT \\* FROM people WHERE 1=0").
		WillReturnRows(metadataRows("SMALLINT", "VARCHAR"))

	b := &BaseSQLAdapter{Conn: db}
	types, err := b.CaptureColumnTypes(context.Background(), "people", peopleSchema(t))
	require.NoError(t, err)

	require.Equal(t, 2, types.Len())
	assert.Equal(t, record.ColumnType{Name: "id", Type: sqltype.SmallInt}, types.At(0))
	assert.Equal(t, record.ColumnType{Name: "name", Type: sqltype.Varchar}, types.At(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptureColumnTypesUnsupported(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT \\* FROM people WHERE 1=0").
		WillReturnRows(metadataRows("INTEGER", "GEOGRAPHY"))

	b := &BaseSQLAdapter{Conn: db}
	_, err = b.CaptureColumnTypes(context.Background(), "people", peopleSchema(t))

	var ue *record.UnsupportedTypeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "name", ue.Column)
}

func TestCaptureColumnTypesMisaligned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Table columns in a different order than the schema fields.
	cols := []*sqlmock.Column{
		sqlmock.NewColumn("name").OfType("VARCHAR", nil).Nullable(true),
		sqlmock.NewColumn("id").OfType("INTEGER", nil).Nullable(true),
	}
	mock.ExpectQuery("SELECT \\* FROM people WHERE 1=0").
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(cols...))

	b := &BaseSQLAdapter{Conn: db}
	_, err = b.CaptureColumnTypes(context.Background(), "people", peopleSchema(t))
	require.Error(t, err)
}

func TestCaptureColumnTypesNotConnected(t *testing.T) {
	b := &BaseSQLAdapter{}
	_, err := b.CaptureColumnTypes(context.Background(), "people", peopleSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}

func TestInferTableSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cols := []*sqlmock.Column{
		sqlmock.NewColumn("id").OfType("INTEGER", nil).Nullable(false),
		sqlmock.NewColumn("name").OfType("VARCHAR", nil).Nullable(true),
	}
	mock.ExpectQuery("SELECT \\* FROM people WHERE 1=0").
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(cols...))

	b := &BaseSQLAdapter{Conn: db}
	cdc, err := b.InferTableSchema(context.Background(), "people")
	require.NoError(t, err)

	schema := cdc.Schema()
	assert.Equal(t, "people", schema.Name())
	assert.Equal(t, []record.Field{
		{Name: "id", Kind: record.KindInt32, Nullable: false},
		{Name: "name", Kind: record.KindString, Nullable: true},
	}, schema.Fields())
	assert.NoError(t, mock.ExpectationsWereMet())
}
