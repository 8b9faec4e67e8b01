package admin

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/kuberbiotech/kuber-web/internal/gateway"
)

// fakeBackend records every call in order.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	products  string
	contacts  string
	brochures string
	fail      map[string]bool
	token     gateway.Token

	created  []gateway.CreateProductRequest
	updated  []gateway.UpdateProductRequest
	uploaded []gateway.UploadBrochureRequest
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		products:  `{"data":{"products":[{"_id":"p1","name":{"en":"Humic","mr":"ह्युमिक"},"description":{"mr":"माती","en":"Soil"},"category":{"en":"Granule Products"},"images":["/p1.png"]}]}}`,
		contacts:  `{"data":[{"_id":"c1","name":"Test User","email":"test@example.com","message":"Hello"}]}`,
		brochures: `[{"_id":"b1","title":"Catalogue"}]`,
		fail:      map[string]bool{},
		token:     "tok",
	}
}

var errFake = errors.New("backend down")

func (f *fakeBackend) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	name := call
	for i, r := range call {
		if r == ':' {
			name = call[:i]
			break
		}
	}
	if f.fail[name] {
		return errFake
	}
	return nil
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name || len(c) > len(name) && c[:len(name)+1] == name+":" {
			n++
		}
	}
	return n
}

func (f *fakeBackend) ListProducts(_ context.Context, _ gateway.ListProductsParams) ([]byte, error) {
	if err := f.record("list-products"); err != nil {
		return nil, err
	}
	return []byte(f.products), nil
}

func (f *fakeBackend) CreateProduct(_ context.Context, req gateway.CreateProductRequest) error {
	f.mu.Lock()
	f.created = append(f.created, req)
	f.mu.Unlock()
	return f.record("create-product")
}

func (f *fakeBackend) UpdateProduct(_ context.Context, id string, req gateway.UpdateProductRequest) error {
	f.mu.Lock()
	f.updated = append(f.updated, req)
	f.mu.Unlock()
	return f.record("update-product:" + id)
}

func (f *fakeBackend) DeleteProduct(_ context.Context, id string) error {
	return f.record("delete-product:" + id)
}

func (f *fakeBackend) ListContacts(context.Context) ([]byte, error) {
	if err := f.record("list-contacts"); err != nil {
		return nil, err
	}
	return []byte(f.contacts), nil
}

func (f *fakeBackend) DeleteContact(_ context.Context, id string) error {
	return f.record("delete-contact:" + id)
}

func (f *fakeBackend) ListBrochures(context.Context) ([]byte, error) {
	if err := f.record("list-brochures"); err != nil {
		return nil, err
	}
	return []byte(f.brochures), nil
}

func (f *fakeBackend) UploadBrochure(_ context.Context, req gateway.UploadBrochureRequest) error {
	f.mu.Lock()
	f.uploaded = append(f.uploaded, req)
	f.mu.Unlock()
	return f.record("upload-brochure")
}

func (f *fakeBackend) DeleteBrochure(_ context.Context, id string) error {
	return f.record("delete-brochure:" + id)
}

func (f *fakeBackend) Login(_ context.Context, creds gateway.Credentials) (gateway.Token, error) {
	if err := f.record("login:" + creds.Email); err != nil {
		return "", err
	}
	return f.token, nil
}
