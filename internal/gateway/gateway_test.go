package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

type captured struct {
	method string
	path   string
	query  string
	auth   string
	ctype  string
	body   []byte
	form   map[string][]string
	files  map[string][]string
	types  map[string][]string
}

type backend struct {
	mu       sync.Mutex
	requests []captured
	status   int
	reply    string
	headers  map[string]string
}

func (b *backend) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
		}
		if strings.HasPrefix(c.ctype, "multipart/form-data") {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Errorf("parse multipart: %v", err)
			}
			c.form = r.MultipartForm.Value
			c.files = map[string][]string{}
			c.types = map[string][]string{}
			for field, hs := range r.MultipartForm.File {
				for _, h := range hs {
					c.files[field] = append(c.files[field], h.Filename)
					c.types[field] = append(c.types[field], h.Header.Get("Content-Type"))
				}
			}
		} else {
			c.body, _ = io.ReadAll(r.Body)
		}
		b.mu.Lock()
		b.requests = append(b.requests, c)
		status, reply := b.status, b.reply
		for k, v := range b.headers {
			w.Header().Set(k, v)
		}
		b.mu.Unlock()
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	b := &backend{}
	srv := httptest.NewServer(b.handler(t))
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *backend) last(t *testing.T) captured {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		t.Fatalf("no request reached the backend")
	}
	return b.requests[len(b.requests)-1]
}

func TestListProducts_QueryAndNoAuth(t *testing.T) {
	b, srv := newBackend(t)
	b.reply = `[]`
	c := New(srv.URL+"/api/", nil)

	body, err := c.ListProducts(context.Background(), ListProductsParams{Page: 1, Limit: 100, CacheBust: "42"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if string(body) != "[]" {
		t.Fatalf("unexpected body %q", body)
	}
	req := b.last(t)
	if req.method != http.MethodGet || req.path != "/api/products/get" {
		t.Fatalf("unexpected request %s %s", req.method, req.path)
	}
	if req.query != "page=1&limit=100&t=42" {
		t.Fatalf("unexpected query %q", req.query)
	}
	if req.auth != "" {
		t.Fatalf("expected no Authorization header, got %q", req.auth)
	}
}

func TestBearerReadAtCallTime(t *testing.T) {
	b, srv := newBackend(t)
	b.reply = `[]`
	store := kv.NewMemoryStore(nil)
	c := New(srv.URL, store)

	if _, err := c.ListContacts(context.Background()); err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if got := b.last(t).auth; got != "" {
		t.Fatalf("expected no header before login, got %q", got)
	}

	_ = store.Set(TokenKey, "abc")
	if _, err := c.ListContacts(context.Background()); err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if got := b.last(t).auth; got != "Bearer abc" {
		t.Fatalf("expected bearer header, got %q", got)
	}

	other := c.WithCredentials(kv.NewMemoryStore(map[string]string{TokenKey: "xyz"}))
	if _, err := other.ListBrochures(context.Background()); err != nil {
		t.Fatalf("list brochures: %v", err)
	}
	if got := b.last(t); got.auth != "Bearer xyz" || got.path != "/broucher/getall-broucher" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestUpdateProduct_SendsOnlyRenamedFields(t *testing.T) {
	b, srv := newBackend(t)
	c := New(srv.URL, nil)

	err := c.UpdateProduct(context.Background(), "p1", UpdateProductRequest{
		NewName: "Humic", NewDescription: "Soil booster", NewCategory: "Granule Products",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	req := b.last(t)
	if req.method != http.MethodPatch || req.path != "/products/edit-product/p1" {
		t.Fatalf("unexpected request %s %s", req.method, req.path)
	}
	var payload map[string]any
	if err := json.Unmarshal(req.body, &payload); err != nil {
		t.Fatalf("body is not JSON: %v (%q)", err, req.body)
	}
	if len(payload) != 3 {
		t.Fatalf("expected exactly three fields, got %v", payload)
	}
	for _, k := range []string{"newname", "newdescription", "newcategory"} {
		if _, ok := payload[k]; !ok {
			t.Fatalf("missing field %s in %v", k, payload)
		}
	}
}

func TestCreateProduct_Multipart(t *testing.T) {
	b, srv := newBackend(t)
	c := New(srv.URL, nil)

	err := c.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Humic", Description: "Soil booster", Category: "Granule Products",
		Images: []File{
			{Name: "a.png", ContentType: "image/png", Data: []byte("png")},
			{Name: "b.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	req := b.last(t)
	if req.method != http.MethodPost || req.path != "/products/add-product" {
		t.Fatalf("unexpected request %s %s", req.method, req.path)
	}
	for _, k := range []string{"name", "description", "category"} {
		if len(req.form[k]) != 1 {
			t.Fatalf("expected field %s, got %v", k, req.form)
		}
	}
	if _, ok := req.form["price"]; ok {
		t.Fatalf("price must not be sent")
	}
	if got := req.files["images"]; len(got) != 2 || got[0] != "a.png" || got[1] != "b.jpg" {
		t.Fatalf("unexpected image parts %v", got)
	}
	if got := req.types["images"]; got[0] != "image/png" || got[1] != "image/jpeg" {
		t.Fatalf("part content types not kept: %v", got)
	}
}

func TestUploadBrochure_Multipart(t *testing.T) {
	b, srv := newBackend(t)
	c := New(srv.URL, nil)

	err := c.UploadBrochure(context.Background(), UploadBrochureRequest{
		Title: "Catalogue",
		File:  File{Name: "cat.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	req := b.last(t)
	if req.path != "/broucher/add-broucher" || req.form["title"][0] != "Catalogue" {
		t.Fatalf("unexpected request %+v", req)
	}
	if got := req.types[BrochureFileField]; len(got) != 1 || got[0] != "application/pdf" {
		t.Fatalf("unexpected brochure part %v", got)
	}
}

func TestHTTPError(t *testing.T) {
	b, srv := newBackend(t)
	b.status = http.StatusUnauthorized
	b.reply = `{"message":"no"}`
	c := New(srv.URL, nil)

	err := c.DeleteContact(context.Background(), "c1")
	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Status != http.StatusUnauthorized || StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", he.Status)
	}
	if b.last(t).method != http.MethodDelete {
		t.Fatalf("expected DELETE")
	}
}

func TestTransportError(t *testing.T) {
	_, srv := newBackend(t)
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).ListProducts(context.Background(), ListProductsParams{Page: 1, Limit: 1})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestCanceledContextIsNotDispatched(t *testing.T) {
	b, srv := newBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(srv.URL, nil).DeleteProduct(ctx, "p1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(b.requests) != 0 {
		t.Fatalf("no request should be sent")
	}
}

func TestLogin_TokenShapes(t *testing.T) {
	b, srv := newBackend(t)
	c := New(srv.URL, nil)

	for reply, want := range map[string]Token{
		`{"token":"t1"}`:          "t1",
		`{"accessToken":"t2"}`:    "t2",
		`{"data":{"token":"t3"}}`: "t3",
	} {
		b.mu.Lock()
		b.reply = reply
		b.mu.Unlock()
		got, err := c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
		if err != nil || got != want {
			t.Fatalf("reply %s: got %q, %v", reply, got, err)
		}
	}

	b.mu.Lock()
	b.reply = `{"message":"ok"}`
	b.mu.Unlock()
	if _, err := c.Login(context.Background(), Credentials{}); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	var sent map[string]string
	if err := json.Unmarshal(b.last(t).body, &sent); err != nil || len(sent) != 2 {
		t.Fatalf("unexpected login body %q", b.last(t).body)
	}
}

func TestDownloadBrochure(t *testing.T) {
	b, srv := newBackend(t)
	b.reply = "%PDF-1.4"
	b.headers = map[string]string{
		"Content-Type":        "application/pdf",
		"Content-Disposition": `attachment; filename="catalogue.pdf"`,
	}
	d, err := New(srv.URL, nil).DownloadBrochure(context.Background(), "b1")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if d.Filename != "catalogue.pdf" || d.ContentType != "application/pdf" || string(d.Data) != "%PDF-1.4" {
		t.Fatalf("unexpected download %+v", d)
	}
	if b.last(t).path != "/broucher/download-broucher/b1" {
		t.Fatalf("unexpected path %s", b.last(t).path)
	}
}
