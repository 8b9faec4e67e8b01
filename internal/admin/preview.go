package admin

import (
	"context"
	"encoding/base64"
	"html/template"
	"mime"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/kuberbiotech/kuber-web/internal/gateway"
)

// ErrNotImage rejects a preview of a file that is not an image.
var ErrNotImage = errors.New("file is not an image")

// StagedField carries previewed images back with the product form.
const StagedField = "staged"

// Preview is a selected image rendered inline. Staged is the same image with
// its file name, as sent back by the form.
type Preview struct {
	Name   string
	URL    template.URL
	Staged string
}

// BuildPreviews encodes every file as a data URL concurrently. Previews are
// published only when all files succeed; on error they are left unchanged.
func (d *Dashboard) BuildPreviews(ctx context.Context, files []gateway.File) error {
	out := make([]Preview, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := encodePreview(f)
			if err != nil {
				return errors.Wrapf(err, "preview %q", f.Name)
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	d.Previews = out
	return nil
}

func encodePreview(f gateway.File) (Preview, error) {
	mediaType, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return Preview{}, ErrNotImage
	}
	data := ";base64," + base64.StdEncoding.EncodeToString(f.Data)
	header := mime.FormatMediaType(mediaType, map[string]string{"name": f.Name})
	if header == "" {
		header = mediaType
	}
	return Preview{
		Name:   f.Name,
		URL:    template.URL("data:" + mediaType + data),
		Staged: "data:" + header + data,
	}, nil
}

// Unstage decodes a Preview.Staged value back into its file.
func Unstage(s string) (gateway.File, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	i := strings.LastIndex(rest, ";base64,")
	if !ok || i < 0 {
		return gateway.File{}, errors.New("malformed staged image")
	}
	mediaType, params, err := mime.ParseMediaType(rest[:i])
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return gateway.File{}, ErrNotImage
	}
	data, err := base64.StdEncoding.DecodeString(rest[i+len(";base64,"):])
	if err != nil {
		return gateway.File{}, errors.Wrap(err, "decode staged image")
	}
	return gateway.File{Name: params["name"], ContentType: mediaType, Data: data}, nil
}
