package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepository persists questions and answer history in Postgres.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository wraps an open connection pool.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type questionRow struct {
	ID       int64          `db:"id"`
	Text     string         `db:"text"`
	Answers  pq.StringArray `db:"answers"`
	Correct  string         `db:"correct_answer"`
	Language string         `db:"language"`
}

func (r questionRow) toQuestion() *Question {
	return &Question{
		ID:       r.ID,
		Text:     r.Text,
		Answers:  []string(r.Answers),
		Correct:  r.Correct,
		Language: r.Language,
	}
}

// NextTicket selects a random question in the language that the user has not
// answered yet.
func (p *PostgresRepository) NextTicket(ctx context.Context, uid int64, language string) (*Ticket, error) {
	const query = `
		SELECT id, text, answers, correct_answer, language
		FROM questions
		WHERE language = $1
		  AND id NOT IN (SELECT question_id FROM user_history WHERE uid = $2)
		ORDER BY random()
		LIMIT 1`

	var row questionRow
	if err := p.db.GetContext(ctx, &row, query, language, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoQuestions
		}
		return nil, fmt.Errorf("quiz: next question: %w", err)
	}
	return NewTicket(row.toQuestion()), nil
}

// Commit validates and inserts a new question, filling in its assigned id.
func (p *PostgresRepository) Commit(ctx context.Context, q *Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	const query = `
		INSERT INTO questions (text, answers, correct_answer, language)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := p.db.QueryRowxContext(ctx, query,
		q.Text, pq.StringArray(q.Answers), q.Correct, q.Language,
	).Scan(&q.ID); err != nil {
		return fmt.Errorf("quiz: commit question: %w", err)
	}
	return nil
}

// RecordAnswer inserts the outcome; a repeat of the same pair is a no-op.
func (p *PostgresRepository) RecordAnswer(ctx context.Context, uid int64, questionID int64, correct bool) error {
	const query = `
		INSERT INTO user_history (uid, question_id, is_correct)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid, question_id) DO NOTHING`

	if _, err := p.db.ExecContext(ctx, query, uid, questionID, correct); err != nil {
		return fmt.Errorf("quiz: record answer: %w", err)
	}
	return nil
}

// ClearHistory removes every history row for the user.
func (p *PostgresRepository) ClearHistory(ctx context.Context, uid int64) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM user_history WHERE uid = $1`, uid); err != nil {
		return fmt.Errorf("quiz: clear history: %w", err)
	}
	return nil
}

// Stats aggregates the user's answer counts for one language.
func (p *PostgresRepository) Stats(ctx context.Context, uid int64, language string) (Stats, error) {
	const query = `
		SELECT
			COUNT(*)                               AS answered,
			COUNT(*) FILTER (WHERE h.is_correct)   AS correct,
			COUNT(*) FILTER (WHERE NOT h.is_correct) AS wrong
		FROM user_history h
		JOIN questions q ON q.id = h.question_id
		WHERE h.uid = $1 AND q.language = $2`

	var row struct {
		Answered int `db:"answered"`
		Correct  int `db:"correct"`
		Wrong    int `db:"wrong"`
	}
	if err := p.db.GetContext(ctx, &row, query, uid, language); err != nil {
		return Stats{}, fmt.Errorf("quiz: stats: %w", err)
	}
	return Stats{Answered: row.Answered, Correct: row.Correct, Wrong: row.Wrong}, nil
}

// Count reports the total number of stored questions.
func (p *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("quiz: count questions: %w", err)
	}
	return n, nil
}
