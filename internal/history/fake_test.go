package history

import (
	"context"
	"sync"
	"time"

	"github.com/George-Madeley/Tools/internal/models"
)

// fakeRepo serves canned branch listings and log output.
type fakeRepo struct {
	mu        sync.Mutex
	branches  []models.BranchRef
	listErr   error
	logs      map[string]string // keyed by ref name, "" for all refs
	errs      map[string]error
	delays    map[string]time.Duration
	queries   []models.QuerySpec
	listCalls int
}

func (f *fakeRepo) ListBranches(ctx context.Context) ([]models.BranchRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.BranchRef(nil), f.branches...), nil
}

func (f *fakeRepo) Query(ctx context.Context, spec models.QuerySpec) (models.RawLogBlock, error) {
	key := ""
	if spec.Ref != nil {
		key = spec.Ref.Name
	}

	f.mu.Lock()
	f.queries = append(f.queries, spec)
	delay := f.delays[key]
	err := f.errs[key]
	out := f.logs[key]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return models.RawLogBlock(out), nil
}

func (f *fakeRepo) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}
