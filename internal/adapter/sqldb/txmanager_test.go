package sqldb_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb"
	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb/testhelper"
	"github.com/heartmarshall/wikt2sql/internal/domain"
)

// wordExists checks whether a words row with the given text exists.
func wordExists(t *testing.T, db *sql.DB, word string) bool {
	t.Helper()
	var exists bool
	err := db.QueryRowContext(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM words WHERE word = ?)`, word,
	).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	tm := sqldb.NewTxManager(db)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := sqldb.QuerierFromCtx(ctx, db).ExecContext(ctx, `INSERT INTO words (word) VALUES (?)`, "commit")
		return err
	})
	require.NoError(t, err)

	assert.True(t, wordExists(t, db, "commit"))
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	tm := sqldb.NewTxManager(db)
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, execErr := sqldb.QuerierFromCtx(ctx, db).ExecContext(ctx, `INSERT INTO words (word) VALUES (?)`, "rollback")
		require.NoError(t, execErr)
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.False(t, wordExists(t, db, "rollback"))
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	tm := sqldb.NewTxManager(db)

	assert.PanicsWithValue(t, "boom", func() {
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			_, err := sqldb.QuerierFromCtx(ctx, db).ExecContext(ctx, `INSERT INTO words (word) VALUES (?)`, "panic")
			require.NoError(t, err)
			panic("boom")
		})
	})

	assert.False(t, wordExists(t, db, "panic"))
}

func TestQuerierFromCtx_WithoutTx(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	q := sqldb.QuerierFromCtx(context.Background(), db)

	_, isDB := q.(*sql.DB)
	assert.True(t, isDB, "expected *sql.DB outside a transaction")
}

func TestInsertOrIgnore(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	ctx := context.Background()
	ib := sqldb.SQLite.Builder().Insert("words").Columns("word").Values("cat")

	created, err := sqldb.InsertOrIgnore(ctx, db, ib)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = sqldb.InsertOrIgnore(ctx, db, ib)
	require.NoError(t, err)
	assert.False(t, created, "conflict must be absorbed")
}

func TestMapError_RealConstraints(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO words (word) VALUES ('cat')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO words (word) VALUES ('cat')`)
	assert.ErrorIs(t, sqldb.MapError(err, "word", "cat"), domain.ErrAlreadyExists)

	_, err = db.ExecContext(ctx, `INSERT INTO definitions (word_id, pos, gloss) VALUES (999, 'noun', 'x')`)
	assert.ErrorIs(t, sqldb.MapError(err, "definition of word", "999"), domain.ErrNotFound)
}

func TestBootstrapper(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	ctx := context.Background()

	// Applying the bundled schema a second time is a no-op.
	ddl := `CREATE TABLE IF NOT EXISTS words (id INTEGER PRIMARY KEY, word TEXT NOT NULL UNIQUE);`
	require.NoError(t, sqldb.NewBootstrapper(db, ddl).Apply(ctx))

	err := sqldb.NewBootstrapper(db, "  \n").Apply(ctx)
	assert.ErrorIs(t, err, domain.ErrSchema)

	err = sqldb.NewBootstrapper(db, "CREATE TABLEE broken (").Apply(ctx)
	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Error(t, schemaErr.Err)
}

func TestCountRows(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	ctx := context.Background()

	counts, err := sqldb.CountRows(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, sqldb.RowCounts{}, counts)

	_, err = db.ExecContext(ctx, `INSERT INTO words (word) VALUES ('cat'), ('kitten')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO definitions VALUES (1, 'noun', 'a feline')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO related_words VALUES (1, 2)`)
	require.NoError(t, err)

	counts, err = sqldb.CountRows(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, sqldb.RowCounts{Words: 2, Definitions: 1, Related: 1}, counts)
}
