package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, username, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password, created_at;`

	findUserByEmail = `SELECT id, username, email, password, created_at
    FROM users
    WHERE email = $1;`
)

// buildFindUsersByIDsQuery builds the batched id lookup. The id list length
// varies per call, so the query is assembled with squirrel instead of being
// a fixed prepared string.
func buildFindUsersByIDsQuery(ids []string) (string, []any, error) {
	return sq.Select("id", "username", "email", "password", "created_at").
		From("users").
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
