package brochure

import (
	"context"
	"mime"
	"strings"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2/log"
	"github.com/tidwall/gjson"
	"golang.org/x/text/message"

	"github.com/kuberbiotech/kuber-web/internal/envelope"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

// MaxSize is the largest accepted upload (10 MiB).
const MaxSize = 10 << 20

// PDFType is the only accepted upload type.
const PDFType = "application/pdf"

var (
	ErrMissing  = errors.New("no brochure file selected")
	ErrNotPDF   = errors.New("brochure is not a PDF")
	ErrTooLarge = errors.New("brochure exceeds 10 MiB")
)

// Brochure is a downloadable PDF. Title and Size are optional.
type Brochure struct {
	ID        string
	Title     string
	Filename  string
	Size      int64
	CreatedAt string
}

// Label is the text shown for the brochure: its title, else its filename.
func (b Brochure) Label() string {
	if b.Title != "" {
		return b.Title
	}
	if b.Filename != "" {
		return b.Filename
	}
	return b.ID
}

// FormatSize renders Size in megabytes with lang's digits, or "" when unknown.
func (b Brochure) FormatSize(lang language.Lang) string {
	if b.Size <= 0 {
		return ""
	}
	return message.NewPrinter(lang.Tag()).Sprintf("%.2f MB", float64(b.Size)/float64(1<<20))
}

func FromResult(r gjson.Result) Brochure {
	b := Brochure{
		ID:        str(r, "_id", "id"),
		Title:     str(r, "title", "name"),
		Filename:  str(r, "filename", "originalName", "fileName"),
		CreatedAt: str(r, "createdAt"),
	}
	for _, p := range []string{"size", "fileSize"} {
		if v := r.Get(p); v.Type == gjson.Number {
			b.Size = v.Int()
			break
		}
	}
	return b
}

// Decode normalizes a list response into brochures.
func Decode(body []byte) []Brochure {
	return envelope.Decode(body, envelope.Brochures, FromResult)
}

func str(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := r.Get(p); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// Validate checks a selected file before any upload is attempted.
func Validate(f gateway.File) error {
	if f.Name == "" && len(f.Data) == 0 {
		return ErrMissing
	}
	mediaType, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil || !strings.EqualFold(mediaType, PDFType) {
		return ErrNotPDF
	}
	if f.Size() > MaxSize {
		return ErrTooLarge
	}
	return nil
}

// Lister fetches the brochure list.
type Lister interface {
	ListBrochures(ctx context.Context) ([]byte, error)
}

type Service struct {
	lister Lister
}

func NewService(lister Lister) *Service {
	return &Service{lister: lister}
}

// List returns the current brochures; failures log and yield an empty list.
func (s *Service) List(ctx context.Context) []Brochure {
	body, err := s.lister.ListBrochures(ctx)
	if err != nil {
		log.Warnw("list brochures", "resource", "brochures", "error", err)
		return []Brochure{}
	}
	return Decode(body)
}
