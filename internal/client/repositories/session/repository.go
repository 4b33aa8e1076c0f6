// Package session persists the single session marker under the "auth" key
// of the local store as {"email": string, "time": epoch-milliseconds}.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/client/models"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// Key is the store key holding the marker.
const Key = "auth"

type Repository interface {
	// Load returns the stored marker. ok is false when none is stored or
	// the stored value cannot be decoded.
	Load(ctx context.Context) (marker models.SessionMarker, ok bool, err error)
	Save(ctx context.Context, marker models.SessionMarker) error
	Delete(ctx context.Context) error
}

// wire is the stored representation.
type wire struct {
	Email string `json:"email"`
	Time  int64  `json:"time"`
}

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context) (models.SessionMarker, bool, error) {
	raw, err := r.store.Get(ctx, Key)
	if err != nil {
		return models.SessionMarker{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return models.SessionMarker{}, false, nil
	}
	m, err := decode(raw)
	if err != nil {
		return models.SessionMarker{}, false, nil
	}
	return m, true, nil
}

func (r *KVRepository) Save(ctx context.Context, marker models.SessionMarker) error {
	raw, err := json.Marshal(wire{Email: marker.Email, Time: marker.EstablishedAt.UnixMilli()})
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *KVRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// decode parses a stored marker. A value that is not a JSON object with a
// non-empty email is common.ErrMalformed.
func decode(raw []byte) (models.SessionMarker, error) {
	var w *wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.SessionMarker{}, fmt.Errorf("%w: %v", common.ErrMalformed, err)
	}
	if w == nil || w.Email == "" {
		return models.SessionMarker{}, common.ErrMalformed
	}
	return models.SessionMarker{Email: w.Email, EstablishedAt: time.UnixMilli(w.Time)}, nil
}
