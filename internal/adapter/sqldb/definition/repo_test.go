package definition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb"
	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb/definition"
	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb/testhelper"
	"github.com/heartmarshall/wikt2sql/internal/adapter/sqldb/word"
	"github.com/heartmarshall/wikt2sql/internal/domain"
)

func TestRepo_Insert(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	ctx := context.Background()

	id, _, err := word.New(db, sqldb.SQLite).Resolve(ctx, "cat")
	require.NoError(t, err)

	repo := definition.New(db, sqldb.SQLite)

	created, err := repo.Insert(ctx, id, "noun", "a small feline")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Insert(ctx, id, "noun", "a small feline")
	require.NoError(t, err)
	assert.False(t, created, "duplicate triple must be suppressed")

	created, err = repo.Insert(ctx, id, "verb", "a small feline")
	require.NoError(t, err)
	assert.True(t, created, "different pos is a different triple")

	created, err = repo.Insert(ctx, id, "", "empty pos is stored as-is")
	require.NoError(t, err)
	assert.True(t, created)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM definitions WHERE word_id = ?`, id).Scan(&n))
	assert.Equal(t, 3, n)
}

func TestRepo_Insert_UnknownWord(t *testing.T) {
	t.Parallel()

	repo := definition.New(testhelper.SetupSQLite(t), sqldb.SQLite)

	_, err := repo.Insert(context.Background(), 42, "noun", "orphan")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
