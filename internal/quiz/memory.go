package quiz

import (
	"context"
	"math/rand"
	"sync"
)

type historyKey struct {
	uid        int64
	questionID int64
}

// MemoryRepository is an in-process Repository used by tests and by runs
// without a database.
type MemoryRepository struct {
	mu        sync.Mutex
	nextID    int64
	questions []*Question
	history   map[historyKey]bool
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{history: make(map[historyKey]bool)}
}

// NextTicket picks a random question in the language that the user has not
// answered yet.
func (m *MemoryRepository) NextTicket(ctx context.Context, uid int64, language string) (*Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var candidates []*Question
	for _, q := range m.questions {
		if q.Language != language {
			continue
		}
		if _, seen := m.history[historyKey{uid, q.ID}]; seen {
			continue
		}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return nil, ErrNoQuestions
	}
	q := candidates[rand.Intn(len(candidates))]
	cp := *q
	return NewTicket(&cp), nil
}

// Commit validates the question and stores it under a fresh id.
func (m *MemoryRepository) Commit(ctx context.Context, q *Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	q.ID = m.nextID
	cp := *q
	m.questions = append(m.questions, &cp)
	return nil
}

// RecordAnswer stores the outcome once; repeats are ignored.
func (m *MemoryRepository) RecordAnswer(ctx context.Context, uid int64, questionID int64, correct bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := historyKey{uid, questionID}
	if _, ok := m.history[key]; ok {
		return nil
	}
	m.history[key] = correct
	return nil
}

// ClearHistory forgets the user's answers in every language.
func (m *MemoryRepository) ClearHistory(ctx context.Context, uid int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.history {
		if key.uid == uid {
			delete(m.history, key)
		}
	}
	return nil
}

// Stats counts the user's answers for questions in the language.
func (m *MemoryRepository) Stats(ctx context.Context, uid int64, language string) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := make(map[int64]*Question, len(m.questions))
	for _, q := range m.questions {
		byID[q.ID] = q
	}

	var st Stats
	for key, correct := range m.history {
		if key.uid != uid {
			continue
		}
		q, ok := byID[key.questionID]
		if !ok || q.Language != language {
			continue
		}
		st.Answered++
		if correct {
			st.Correct++
		} else {
			st.Wrong++
		}
	}
	return st, nil
}

// Count reports the number of stored questions.
func (m *MemoryRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions), nil
}
