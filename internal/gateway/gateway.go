// Package gateway is the single point through which the site talks to the
// REST backend.
package gateway

import (
	"bytes"
	"context"
	"mime"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/tidwall/gjson"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

// TokenKey is the persistence key of the bearer credential.
const TokenKey = "accessToken"

// BrochureFileField is the multipart field carrying an uploaded brochure.
const BrochureFileField = "file"

// File is an uploaded file forwarded to the backend.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the file length in bytes.
func (f File) Size() int64 { return int64(len(f.Data)) }

// Download is a binary payload fetched from the backend.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ListProductsParams struct {
	Page  int
	Limit int
	// Lang and CacheBust are sent only when non-empty.
	Lang      string
	CacheBust string
}

type CreateProductRequest struct {
	Name        string
	Description string
	Category    string
	Images      []File
}

// UpdateProductRequest is the JSON body of an edit. The backend expects the
// renamed fields and does not accept images on this route.
type UpdateProductRequest struct {
	NewName        string `json:"newname"`
	NewDescription string `json:"newdescription"`
	NewCategory    string `json:"newcategory"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

type UploadBrochureRequest struct {
	File  File
	Title string
}

type Credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Token is an opaque bearer credential issued by the backend.
type Token string

// Client issues backend calls. It is safe for concurrent use.
type Client struct {
	baseURL string
	creds   kv.Reader
}

// New returns a client rooted at baseURL (for example
// "http://localhost:5000/api"). creds may be nil.
func New(baseURL string, creds kv.Reader) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), creds: creds}
}

// WithCredentials returns a copy of c that reads the bearer credential from
// creds.
func (c *Client) WithCredentials(creds kv.Reader) *Client {
	cp := *c
	cp.creds = creds
	return &cp
}

func (c *Client) ListProducts(ctx context.Context, p ListProductsParams) ([]byte, error) {
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.SetUint("page", p.Page)
	args.SetUint("limit", p.Limit)
	if p.Lang != "" {
		args.Set("lang", p.Lang)
	}
	if p.CacheBust != "" {
		args.Set("t", p.CacheBust)
	}
	r, err := c.call(ctx, "list products", fiber.MethodGet, "products/get?"+args.String(), nil)
	return r.body, err
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) error {
	body, ctype, err := multipartBody(
		[][2]string{{"name", req.Name}, {"description", req.Description}, {"category", req.Category}},
		"images", req.Images,
	)
	if err != nil {
		return errors.Wrap(err, "encode product")
	}
	_, err = c.call(ctx, "create product", fiber.MethodPost, "products/add-product", func(a *fiber.Agent) {
		a.ContentType(ctype).Body(body)
	})
	return err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) error {
	_, err := c.call(ctx, "update product", fiber.MethodPatch, "products/edit-product/"+url.PathEscape(id), func(a *fiber.Agent) {
		a.JSON(req)
	})
	return err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.call(ctx, "delete product", fiber.MethodDelete, "products/delete-product/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) ListContacts(ctx context.Context) ([]byte, error) {
	r, err := c.call(ctx, "list contacts", fiber.MethodGet, "contacts/getall-contact", nil)
	return r.body, err
}

func (c *Client) CreateContact(ctx context.Context, req ContactRequest) error {
	_, err := c.call(ctx, "create contact", fiber.MethodPost, "contacts/create-contact", func(a *fiber.Agent) {
		a.JSON(req)
	})
	return err
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	_, err := c.call(ctx, "delete contact", fiber.MethodDelete, "contacts/delete-contact/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) ListBrochures(ctx context.Context) ([]byte, error) {
	r, err := c.call(ctx, "list brochures", fiber.MethodGet, "broucher/getall-broucher", nil)
	return r.body, err
}

func (c *Client) UploadBrochure(ctx context.Context, req UploadBrochureRequest) error {
	var fields [][2]string
	if req.Title != "" {
		fields = append(fields, [2]string{"title", req.Title})
	}
	body, ctype, err := multipartBody(fields, BrochureFileField, []File{req.File})
	if err != nil {
		return errors.Wrap(err, "encode brochure")
	}
	_, err = c.call(ctx, "upload brochure", fiber.MethodPost, "broucher/add-broucher", func(a *fiber.Agent) {
		a.ContentType(ctype).Body(body)
	})
	return err
}

func (c *Client) DeleteBrochure(ctx context.Context, id string) error {
	_, err := c.call(ctx, "delete brochure", fiber.MethodDelete, "broucher/delete-broucher/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) DownloadBrochure(ctx context.Context, id string) (Download, error) {
	r, err := c.call(ctx, "download brochure", fiber.MethodGet, "broucher/download-broucher/"+url.PathEscape(id), nil)
	if err != nil {
		return Download{}, err
	}
	d := Download{Filename: "brochure-" + id + ".pdf", ContentType: r.contentType, Data: r.body}
	if _, params, perr := mime.ParseMediaType(r.disposition); perr == nil && params["filename"] != "" {
		d.Filename = params["filename"]
	}
	if d.ContentType == "" {
		d.ContentType = "application/pdf"
	}
	return d, nil
}

// Login exchanges credentials for a bearer token. The token may sit under
// "token", "accessToken" or "data.token".
func (c *Client) Login(ctx context.Context, creds Credentials) (Token, error) {
	r, err := c.call(ctx, "login", fiber.MethodPost, "users/login", func(a *fiber.Agent) {
		a.JSON(creds)
	})
	if err != nil {
		return "", err
	}
	for _, path := range []string{"token", "accessToken", "data.token", "data.accessToken"} {
		if v := gjson.GetBytes(r.body, path); v.Type == gjson.String && v.String() != "" {
			return Token(v.String()), nil
		}
	}
	return "", ErrNoToken
}

type reply struct {
	body        []byte
	contentType string
	disposition string
}

func (c *Client) call(ctx context.Context, op, method, path string, prepare func(*fiber.Agent)) (reply, error) {
	if err := ctx.Err(); err != nil {
		return reply{}, &TransportError{Op: op, Err: err}
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + "/" + path)
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return reply{}, &TransportError{Op: op, Err: err}
	}
	if deadline, ok := ctx.Deadline(); ok {
		a.Timeout(time.Until(deadline))
	}
	if token := c.token(); token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if prepare != nil {
		prepare(a)
	}

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	a.SetResponse(resp)

	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		log.Errorw("backend call failed", "op", op, "error", errs[0])
		return reply{}, &TransportError{Op: op, Err: errs[0]}
	}
	// raw belongs to resp, which returns to the pool with this call
	body := append([]byte(nil), raw...)
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		log.Warnw("backend rejected call", "op", op, "status", code)
		return reply{}, &HTTPError{Op: op, Status: code, Body: body}
	}
	return reply{
		body:        body,
		contentType: string(resp.Header.ContentType()),
		disposition: string(resp.Header.Peek(fiber.HeaderContentDisposition)),
	}, nil
}

func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	v, err := c.creds.Get(TokenKey)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// multipartBody encodes fields followed by one part per file under
// fileField. Each file part keeps its declared content type.
func multipartBody(fields [][2]string, fileField string, files []File) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for i, f := range files {
		name := f.Name
		if name == "" {
			name = fileField + "-" + strconv.Itoa(i)
		}
		ctype := f.ContentType
		if ctype == "" {
			ctype = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("form-data", map[string]string{"name": fileField, "filename": name}))
		h.Set(fiber.HeaderContentType, ctype)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
