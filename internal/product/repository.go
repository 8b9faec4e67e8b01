package product

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/kuberbiotech/kuber-web/internal/gateway"
)

// Repository lists the catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
}

// Lister is the part of the gateway the catalog needs.
type Lister interface {
	ListProducts(ctx context.Context, p gateway.ListProductsParams) ([]byte, error)
}

// GatewayRepository fetches the whole catalog in one page. The language is
// not sent since every product carries both localizations, and each call
// carries a fresh cache-busting nonce.
type GatewayRepository struct {
	client Lister
	limit  int
	nonce  func() string
}

func NewGatewayRepository(client Lister, limit int) *GatewayRepository {
	return &GatewayRepository{
		client: client,
		limit:  limit,
		nonce:  func() string { return strconv.FormatInt(time.Now().UnixMilli(), 10) },
	}
}

func (r *GatewayRepository) List(ctx context.Context) ([]Product, error) {
	body, err := r.client.ListProducts(ctx, gateway.ListProductsParams{
		Page:      1,
		Limit:     r.limit,
		CacheBust: r.nonce(),
	})
	if err != nil {
		return nil, err
	}
	return Decode(body), nil
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// offline previews.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	err     error
	lists   int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	out := make([]Product, len(seed))
	copy(out, seed)
	return &InMemoryRepository{storage: out}
}

// Fail makes subsequent List calls return err (nil restores success).
func (r *InMemoryRepository) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Lists reports how many times List was called.
func (r *InMemoryRepository) Lists() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lists
}

func (r *InMemoryRepository) List(context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}
