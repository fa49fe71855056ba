package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/barbieri-app/booking-dashboard/internal/config"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
)

const (
	maxPortraitPx = 512
	webpQuality   = 82
)

// ImageStore holds staff portraits: uploads are decoded, downscaled, encoded
// as webp and put to S3; the public URL goes on the barber row.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &ImageStore{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
	}
}

// UploadPortrait stores the portrait for a barber and returns its public URL.
func (st *ImageStore) UploadPortrait(ctx context.Context, barberID string, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	resized := downscale(src, maxPortraitPx)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("barbers/%s.webp", barberID)
	_, err = st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return st.publicURL(key), nil
}

func (st *ImageStore) publicURL(key string) string {
	if st.baseURL != "" {
		return st.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", st.bucket, key)
}

// downscale caps the longest side at max px, keeping aspect ratio. Smaller
// images pass through untouched.
func downscale(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
