// Package users persists the registered-user collection under the "users"
// key of the local store as a JSON array of {"email","password"} objects.
//
// A missing or undecodable value reads as an empty collection; decoding
// failures never reach the caller.
package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/client/models"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// Key is the store key holding the collection.
const Key = "users"

type Repository interface {
	// List returns the collection in insertion order.
	List(ctx context.Context) ([]models.UserRecord, error)
	// Modify hands the current collection to fn and stores what fn returns,
	// as one atomic read-modify-write. If fn fails nothing is written.
	Modify(ctx context.Context, fn func([]models.UserRecord) ([]models.UserRecord, error)) error
}

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]models.UserRecord, error) {
	raw, err := r.store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return decodeOrEmpty(raw), nil
}

func (r *KVRepository) Modify(ctx context.Context, fn func([]models.UserRecord) ([]models.UserRecord, error)) error {
	return r.store.Update(ctx, Key, func(current []byte) ([]byte, error) {
		next, err := fn(decodeOrEmpty(current))
		if err != nil {
			return nil, err
		}
		return encode(next)
	})
}

func decodeOrEmpty(raw []byte) []models.UserRecord {
	list, err := decode(raw)
	if err != nil {
		return []models.UserRecord{}
	}
	return list
}

// decode parses a stored collection. An absent value is an empty collection;
// anything that is not a JSON array of objects is common.ErrMalformed.
func decode(raw []byte) ([]models.UserRecord, error) {
	if raw == nil {
		return []models.UserRecord{}, nil
	}
	var list []models.UserRecord
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformed, err)
	}
	if list == nil {
		// JSON null
		return nil, common.ErrMalformed
	}
	return list, nil
}

func encode(list []models.UserRecord) ([]byte, error) {
	if list == nil {
		list = []models.UserRecord{}
	}
	return json.Marshal(list)
}
