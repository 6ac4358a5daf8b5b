package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// New wires the sqlite implementations of every repository.
func New(db *sql.DB) repository.Store {
	return repository.Store{
		Problems:  &problemRepository{db: db},
		Solutions: &solutionRepository{db: db},
		Sessions:  &sessionRepository{db: db},
		Progress:  &progressRepository{db: db},
		Attempts:  &attemptRepository{db: db},
	}
}

// Helper functions shared across repository implementations

func now() time.Time {
	return time.Now().UTC()
}

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.FromContext(ctx).WithPrefix("repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug("transaction rolled back due to error: %v", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	log.Debug("transaction committed")
	return nil
}

// jsonColumn marshals v for storage in a TEXT column. Nil and empty
// slices store as NULL.
func jsonColumn(v any) (sql.NullString, error) {
	switch t := v.(type) {
	case nil:
		return sql.NullString{}, nil
	case []string:
		if len(t) == 0 {
			return sql.NullString{}, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// scanJSON unmarshals a nullable TEXT column into dest, leaving dest
// untouched for NULL.
func scanJSON(col sql.NullString, dest any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dest)
}
