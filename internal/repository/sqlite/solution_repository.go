package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
)

type solutionRepository struct {
	db *sql.DB
}

func insertSolutionTx(ctx context.Context, t *sql.Tx, insert models.InsertSolution) (*models.Solution, error) {
	body, err := jsonColumn(insert.Solution)
	if err != nil {
		return nil, err
	}
	var viz sql.NullString
	if insert.Visualization != nil {
		viz, err = jsonColumn(insert.Visualization)
		if err != nil {
			return nil, err
		}
	}

	solution := models.Solution{
		ID:            uuid.NewString(),
		ProblemID:     insert.ProblemID,
		Solution:      insert.Solution,
		FinalAnswer:   insert.FinalAnswer,
		Confidence:    insert.Confidence,
		TimeToSolve:   insert.TimeToSolve,
		Method:        insert.Method,
		Visualization: insert.Visualization,
		CreatedAt:     now(),
	}

	_, err = t.ExecContext(ctx, `
INSERT INTO solutions (id, problem_id, solution, final_answer, confidence, time_to_solve, method, visualization, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, solution.ID, solution.ProblemID, body.String, solution.FinalAnswer, solution.Confidence,
		solution.TimeToSolve, nullable(solution.Method), viz, solution.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

func (r *solutionRepository) Insert(ctx context.Context, insert models.InsertSolution) (*models.Solution, error) {
	log := logger.FromContext(ctx).WithPrefix("solution_repo")
	log.Debug("inserting solution: problem_id=%s, confidence=%d", insert.ProblemID, insert.Confidence)

	var solution *models.Solution
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		var err error
		solution, err = insertSolutionTx(ctx, t, insert)
		return err
	})
	if err != nil {
		log.Error("failed to insert solution: %v", err)
		return nil, err
	}
	log.Debug("solution inserted: id=%s", solution.ID)
	return solution, nil
}

// InsertWithProblem writes the problem and its solution in one
// transaction so a failed solution write never leaves an orphaned
// problem behind.
func (r *solutionRepository) InsertWithProblem(ctx context.Context, insertProblem models.InsertProblem, insertSolution models.InsertSolution) (*models.Problem, *models.Solution, error) {
	log := logger.FromContext(ctx).WithPrefix("solution_repo")
	log.Debug("inserting problem with solution: category=%s", insertProblem.Category)

	var problem *models.Problem
	var solution *models.Solution
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		var err error
		problem, err = insertProblemTx(ctx, t, insertProblem)
		if err != nil {
			return err
		}
		insertSolution.ProblemID = problem.ID
		solution, err = insertSolutionTx(ctx, t, insertSolution)
		return err
	})
	if err != nil {
		log.Error("failed to insert problem with solution: %v", err)
		return nil, nil, err
	}
	log.Debug("problem and solution inserted: problem_id=%s, solution_id=%s", problem.ID, solution.ID)
	return problem, solution, nil
}

// ForProblem returns the latest solution for the problem by creation
// time, breaking same-timestamp ties by insertion order.
func (r *solutionRepository) ForProblem(ctx context.Context, problemID string) (*models.Solution, error) {
	log := logger.FromContext(ctx).WithPrefix("solution_repo")
	log.Debug("getting solution: problem_id=%s", problemID)

	var s models.Solution
	var body, method, viz sql.NullString
	var timeToSolve sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
SELECT id, problem_id, solution, final_answer, confidence, time_to_solve, method, visualization, created_at
FROM solutions
WHERE problem_id = ?
ORDER BY created_at DESC, rowid DESC
LIMIT 1
`, problemID).Scan(&s.ID, &s.ProblemID, &body, &s.FinalAnswer, &s.Confidence, &timeToSolve, &method, &viz, &s.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		log.Debug("no solution for problem: problem_id=%s", problemID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get solution: %v", err)
		return nil, err
	}

	if err := scanJSON(body, &s.Solution); err != nil {
		return nil, err
	}
	if viz.Valid {
		s.Visualization = &models.Visualization{}
		if err := scanJSON(viz, s.Visualization); err != nil {
			return nil, err
		}
	}
	s.TimeToSolve = timeToSolve.Int64
	s.Method = method.String
	return &s, nil
}
