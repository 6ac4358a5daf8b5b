package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
)

type problemRepository struct {
	db *sql.DB
}

const problemColumns = `id, problem_text, category, difficulty, image_url, latex_representation, is_favorite, tags, created_at`

func insertProblemTx(ctx context.Context, tx *sql.Tx, insert models.InsertProblem) (*models.Problem, error) {
	tags, err := jsonColumn(insert.Tags)
	if err != nil {
		return nil, err
	}

	problem := models.Problem{
		ID:                  uuid.NewString(),
		ProblemText:         insert.ProblemText,
		Category:            insert.Category,
		Difficulty:          insert.Difficulty,
		ImageURL:            insert.ImageURL,
		LatexRepresentation: insert.LatexRepresentation,
		IsFavorite:          insert.IsFavorite,
		Tags:                insert.Tags,
		CreatedAt:           now(),
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO problems (id, problem_text, category, difficulty, image_url, latex_representation, is_favorite, tags, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, problem.ID, problem.ProblemText, problem.Category, problem.Difficulty,
		nullable(problem.ImageURL), nullable(problem.LatexRepresentation), problem.IsFavorite, tags, problem.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *problemRepository) Insert(ctx context.Context, insert models.InsertProblem) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("inserting problem: category=%s, difficulty=%d", insert.Category, insert.Difficulty)

	var problem *models.Problem
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		var err error
		problem, err = insertProblemTx(ctx, t, insert)
		return err
	})
	if err != nil {
		log.Error("failed to insert problem: %v", err)
		return nil, err
	}
	log.Debug("problem inserted: id=%s", problem.ID)
	return problem, nil
}

func (r *problemRepository) Get(ctx context.Context, id string) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("getting problem: id=%s", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+problemColumns+`
FROM problems
WHERE id = ?
`, id)

	problem, err := scanProblem(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		log.Debug("problem not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get problem: %v", err)
		return nil, err
	}
	return problem, nil
}

func (r *problemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("listing problems: category=%s, favorites_only=%t, limit=%d",
		filter.Category, filter.FavoritesOnly, filter.Limit)

	query := sqlBuilder.Select(
		"id", "problem_text", "category", "difficulty", "image_url",
		"latex_representation", "is_favorite", "tags", "created_at",
	).From("problems")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.FavoritesOnly {
		query = query.Where(squirrel.Eq{"is_favorite": true})
	}
	query = query.OrderBy("created_at DESC, rowid DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, err
	}
	defer rows.Close()

	var problems []models.Problem
	for rows.Next() {
		problem, err := scanProblem(rows)
		if err != nil {
			log.Error("failed to scan problem row: %v", err)
			return nil, err
		}
		problems = append(problems, *problem)
	}
	log.Debug("found %d problems", len(problems))
	return problems, rows.Err()
}

func (r *problemRepository) Recent(ctx context.Context, limit int) ([]models.Problem, error) {
	return r.List(ctx, models.ProblemFilter{Limit: limit})
}

func (r *problemRepository) Favorites(ctx context.Context) ([]models.Problem, error) {
	return r.List(ctx, models.ProblemFilter{FavoritesOnly: true})
}

func (r *problemRepository) SetFavorite(ctx context.Context, id string, isFavorite bool) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("setting favorite: id=%s, is_favorite=%t", id, isFavorite)

	res, err := r.db.ExecContext(ctx, `UPDATE problems SET is_favorite = ? WHERE id = ?`, isFavorite, id)
	if err != nil {
		log.Error("failed to update favorite: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("problem not found for favorite update: id=%s", id)
		return errors.NewNotFoundError("problem", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (*models.Problem, error) {
	var p models.Problem
	var imageURL, latex, tags sql.NullString
	if err := row.Scan(&p.ID, &p.ProblemText, &p.Category, &p.Difficulty,
		&imageURL, &latex, &p.IsFavorite, &tags, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ImageURL = imageURL.String
	p.LatexRepresentation = latex.String
	if err := scanJSON(tags, &p.Tags); err != nil {
		return nil, err
	}
	return &p, nil
}
