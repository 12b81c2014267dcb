package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"capbrowse/internal/logging"
	"capbrowse/internal/record"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// HTTPDoer describes the HTTP client used for remote sources.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options controls a single load.
type Options struct {
	Client    HTTPDoer
	CacheBust bool
	Timeout   time.Duration
	Logger    *slog.Logger
	// Now supplies the cache-busting timestamp.
	Now func() time.Time
}

// Load fetches source and decodes it into records. It makes exactly one
// attempt.
func Load(ctx context.Context, source string, opts Options) ([]record.Record, error) {
	loadID := uuid.NewString()
	ctx = logging.WithLoadID(ctx, loadID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "loader"))

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	var (
		body      []byte
		requested string
		err       error
	)
	if IsRemote(source) {
		requested, err = requestURL(source, opts)
		if err == nil {
			body, err = fetch(ctx, requested, opts.Client)
		}
	} else {
		requested = strings.TrimPrefix(source, "file://")
		body, err = readFile(requested)
	}
	if err != nil {
		logger.Warn("sample load failed", logging.String("source", requested), logging.Error(err))
		return nil, err
	}

	records, err := Decode(body)
	if err != nil {
		logger.Warn("sample decode failed", logging.String("source", requested), logging.Error(err))
		return nil, err
	}
	logger.Info("samples loaded",
		logging.String("source", source),
		logging.Int("count", len(records)),
		logging.Int("bytes", len(body)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return records, nil
}

// Decode validates data as a JSON array of objects and decodes it.
func Decode(data []byte) ([]record.Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !json.Valid(data) {
		var shape any
		err := json.Unmarshal(data, &shape)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, &ParseError{Err: err}
	}

	var elements []json.RawMessage
	if kind := jsonKind(data); kind != "array" {
		return nil, &SchemaError{Found: kind, Index: -1}
	}
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, &ParseError{Err: err}
	}

	records := make([]record.Record, 0, len(elements))
	for i, element := range elements {
		if kind := jsonKind(element); kind != "object" {
			return nil, &SchemaError{Found: kind, Index: i}
		}
		var rec record.Record
		if err := json.Unmarshal(element, &rec); err != nil {
			return nil, &ParseError{Err: fmt.Errorf("element %d: %w", i, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}

// IsRemote reports whether source should be fetched over HTTP.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func requestURL(source string, opts Options) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(source))
	if err != nil {
		return "", &LoadError{URL: source, Err: err}
	}
	if opts.CacheBust {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		values := parsed.Query()
		values.Set("t", strconv.FormatInt(now().UnixMilli(), 10))
		parsed.RawQuery = values.Encode()
	}
	return parsed.String(), nil
}

func fetch(ctx context.Context, target string, client HTTPDoer) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &LoadError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &LoadError{URL: target, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{URL: target, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{URL: path, Err: err}
	}
	return body, nil
}

func jsonKind(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '[':
		return "array"
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
