package claims

import (
	"sync"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
	"github.com/camertanev/FraudDetect-Z/internal/common"
)

// MemoryRepository keeps the claim snapshot in memory behind an RWMutex.
// ReplaceAll swaps the backing slice and index wholesale, so a reader that
// already obtained a copy keeps a consistent view.
type MemoryRepository struct {
	mu     sync.RWMutex
	claims []models.Claim
	byID   map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]int)}
}

func (r *MemoryRepository) ReplaceAll(claims []models.Claim) {
	snapshot := make([]models.Claim, len(claims))
	copy(snapshot, claims)

	byID := make(map[string]int, len(snapshot))
	for i := range snapshot {
		byID[snapshot[i].ID] = i
	}

	r.mu.Lock()
	r.claims = snapshot
	r.byID = byID
	r.mu.Unlock()
}

func (r *MemoryRepository) List() []models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Claim, len(r.claims))
	copy(out, r.claims)
	return out
}

func (r *MemoryRepository) Get(id string) (*models.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := r.claims[i]
	return &c, nil
}

func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.claims)
}
