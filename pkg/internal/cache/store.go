package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// S is the process-wide cache store shared by every service-level cache.
var S *ristretto_store.RistrettoStore

// R keeps the underlying ristretto handle around; ristretto applies sets
// asynchronously, and callers that need read-your-write call R.Wait().
var R *ristretto.Cache

func NewStore() error {
	var err error
	R, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristretto_store.NewRistretto(R)
	return nil
}
