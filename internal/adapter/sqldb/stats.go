package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// RowCounts holds the number of rows in each table of the schema.
type RowCounts struct {
	Words       int64 `db:"words"`
	Definitions int64 `db:"definitions"`
	Related     int64 `db:"related_words"`
	Synonyms    int64 `db:"synonymous_words"`
}

const countRowsSQL = `SELECT
	(SELECT COUNT(*) FROM words)            AS words,
	(SELECT COUNT(*) FROM definitions)      AS definitions,
	(SELECT COUNT(*) FROM related_words)    AS related_words,
	(SELECT COUNT(*) FROM synonymous_words) AS synonymous_words`

// CountRows reports table sizes. Uses the transaction from ctx if present.
func CountRows(ctx context.Context, db *sql.DB) (RowCounts, error) {
	var counts RowCounts
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, db), &counts, countRowsSQL); err != nil {
		return RowCounts{}, fmt.Errorf("count rows: %w", err)
	}
	return counts, nil
}
