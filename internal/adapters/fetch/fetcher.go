// Package fetch turns the configured PAC source into a cached, UTF-8 local file.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"unicode/utf8"

	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Fetcher implements ports.SourceFetcher.
type Fetcher struct {
	client *http.Client
	logger ports.Logger
}

// NewFetcher creates a Fetcher. A nil client means http.DefaultClient.
func NewFetcher(client *http.Client, logger ports.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, logger: logger}
}

// Fetch returns the path of a ready-to-evaluate PAC document.
func (f *Fetcher) Fetch(ctx context.Context, opts *domain.Options, cache ports.ContentCache) (string, error) {
	if opts.Source() == domain.SourceFile {
		return f.fetchFile(opts.PACFile(), opts.UseCache(), cache)
	}
	return f.fetchURL(ctx, opts.PACURL(), opts.UseCache(), cache)
}

func (f *Fetcher) fetchFile(path string, useCache bool, cache ports.ContentCache) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NewError(domain.KindSourceNotFound, zerr.With(domain.ErrSourceNotFound, "path", path))
		}
		return "", readError(err, path)
	}
	if info.IsDir() {
		return "", readError(zerr.New("path is a directory"), path)
	}

	key, err := cache.KeyForFile(path)
	if err != nil {
		return "", err
	}

	if useCache {
		if cached, ok := cache.Get(key); ok {
			f.logger.Info(fmt.Sprintf("Using cached copy of '%s'.", path))
			return cached, nil
		}
	}

	//nolint:gosec // Path is provided by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return "", readError(err, path)
	}

	text, err := normalize(data)
	if err != nil {
		return "", decodeError(err, "path", path)
	}

	f.logger.Info(fmt.Sprintf("Read WPAD file '%s'.", path))
	return cache.Put(key, text)
}

func (f *Fetcher) fetchURL(ctx context.Context, url string, useCache bool, cache ports.ContentCache) (string, error) {
	key := cache.KeyForURL(url)

	if useCache {
		if cached, ok := cache.Get(key); ok {
			f.logger.Info(fmt.Sprintf("Using cached copy of '%s'.", url))
			return cached, nil
		}
	}

	body, err := f.download(ctx, url)
	if err != nil {
		return "", err
	}

	text, err := normalize(body)
	if err != nil {
		return "", decodeError(err, "url", url)
	}

	f.logger.Info(fmt.Sprintf("Downloaded WPAD file from '%s'.", url))
	return cache.Put(key, text)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fetchError(zerr.Wrap(err, "failed to create request"), url, 0)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fetchError(zerr.Wrap(err, "request failed"), url, 0)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := zerr.New(fmt.Sprintf("unexpected status %s", resp.Status))
		return nil, fetchError(err, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchError(zerr.Wrap(err, "failed to read response body"), url, resp.StatusCode)
	}

	return body, nil
}

func fetchError(err error, url string, status int) error {
	err = zerr.Wrap(err, domain.ErrFetchFailed.Error())
	err = zerr.With(err, "url", url)
	if status != 0 {
		err = zerr.With(err, "status_code", status)
	}
	return domain.NewError(domain.KindFetch, err)
}

// readError reports a local PAC file that exists but cannot be read.
func readError(err error, path string) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	return domain.NewError(domain.KindEvaluation, err)
}

// decodeError reports a PAC document that is not valid text.
func decodeError(err error, key, source string) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), key, source)
	return domain.NewError(domain.KindEvaluation, err)
}

// normalize returns data as UTF-8 without a byte-order mark.
// UTF-16 input with a BOM is transcoded. Anything else must already be
// valid UTF-8: invalid bytes are an error, never replaced.
func normalize(data []byte) ([]byte, error) {
	if !hasUTF16BOM(data) {
		if !utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
			return nil, zerr.New("document is not valid UTF-8")
		}
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode text")
	}
	return out, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}
