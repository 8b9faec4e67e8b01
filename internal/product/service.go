package product

import (
	"context"

	"github.com/gofiber/fiber/v2/log"

	"github.com/kuberbiotech/kuber-web/internal/content"
)

// State is the catalog lifecycle. It starts at StateLoading and ends in
// StateReady or StateFailed; there is no automatic retry.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// Catalog is the outcome of one load.
type Catalog struct {
	State    State
	Products []Product
	// ErrorKey names the content message shown when State is StateFailed.
	ErrorKey string
}

// Bucket returns the products of one category, preserving order.
func (c Catalog) Bucket(cat Category) []Product {
	out := make([]Product, 0, len(c.Products))
	for _, p := range c.Products {
		if p.In(cat) {
			out = append(out, p)
		}
	}
	return out
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load fetches the catalog once.
func (s *Service) Load(ctx context.Context) Catalog {
	products, err := s.repo.List(ctx)
	if err != nil {
		log.Errorw("load catalog", "resource", "products", "error", err)
		return Catalog{State: StateFailed, ErrorKey: content.MsgProductsLoadFailed}
	}
	return Catalog{State: StateReady, Products: products}
}
