// Package imgur uploads product images to the Imgur anonymous image API and
// returns their public display links.
package imgur

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/luciantraders/meesho-lister/internal/config"
	"github.com/luciantraders/meesho-lister/internal/model"
)

var tracer = otel.Tracer("internal/imgur")

// UploadResult is the outcome of one image upload. A failed upload carries
// the reason and leaves its link slot empty; it never aborts the batch.
type UploadResult struct {
	Link string
	Err  error
}

// OK reports whether the upload produced a usable public link.
func (r UploadResult) OK() bool {
	return r.Err == nil
}

type Client struct {
	cfg        config.Imgur
	logger     *slog.Logger
	httpClient *http.Client

	// limiter paces successive upload calls: one call per UploadDelay.
	// Failed uploads are not retried.
	limiter *rate.Limiter
}

func NewClient(cfg config.Imgur, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "imgur")),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(cfg.UploadDelay), 1),
	}
}

// AcquireLinks uploads up to [model.MaxImages] image blobs in order and
// returns the link set plus one result per attempted image. Slot i of the
// link set corresponds to images[i]; slots beyond the supplied images, and
// slots whose upload failed, stay empty. Every supplied image is attempted;
// a failure is local to its own slot.
func (c *Client) AcquireLinks(ctx context.Context, images [][]byte) (model.ImageLinkSet, []UploadResult) {
	if len(images) > model.MaxImages {
		images = images[:model.MaxImages]
	}

	var links model.ImageLinkSet
	results := make([]UploadResult, len(images))

	for i, image := range images {
		if err := c.limiter.Wait(ctx); err != nil {
			results[i] = UploadResult{Err: fmt.Errorf("wait for upload slot: %w", err)}
			continue
		}

		res := c.upload(ctx, image)
		results[i] = res

		if res.OK() {
			links[i] = res.Link
			c.logger.InfoContext(ctx, "image uploaded",
				slog.Int("slot", i+1), slog.String("link", res.Link))
		} else {
			c.logger.WarnContext(ctx, "image upload failed, slot left blank",
				slog.Int("slot", i+1), slog.Any("error", res.Err))
		}
	}

	return links, results
}

func (c *Client) upload(ctx context.Context, image []byte) UploadResult {
	ctx, span := tracer.Start(ctx, "imgur.upload")
	defer span.End()

	payload := base64.StdEncoding.EncodeToString(image)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadURL, strings.NewReader(payload))
	if err != nil {
		return UploadResult{Err: fmt.Errorf("build upload request: %w", err)}
	}
	req.Header.Set("Authorization", "Client-ID "+c.cfg.ClientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{Err: fmt.Errorf("post image: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return UploadResult{Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	var body struct {
		Data struct {
			Link string `json:"link"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return UploadResult{Err: fmt.Errorf("decode upload response: %w", err)}
	}

	if body.Data.Link == "" {
		return UploadResult{Err: fmt.Errorf("upload response has no link")}
	}

	return UploadResult{Link: body.Data.Link}
}
