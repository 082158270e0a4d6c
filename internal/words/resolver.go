package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Source identifies the tier that produced a vocabulary.
type Source string

const (
	SourceFile     Source = "file"
	SourceRemote   Source = "remote"
	SourceEmbedded Source = "embedded"
)

// DefaultTimeout bounds the remote fetch when Resolver.Timeout is zero.
const DefaultTimeout = 8 * time.Second

// maxPayload caps the remote response body.
const maxPayload = 8 << 20

// Result is a resolved vocabulary and where it came from.
type Result struct {
	Vocabulary *Vocabulary
	Source     Source
}

// Resolver produces a vocabulary from a local file, a remote list, or the
// embedded fallback, in that order. It never fails.
type Resolver struct {
	Path    string        // Local word list; empty disables reading and persisting
	URL     string        // Remote word list; empty disables fetching
	Timeout time.Duration // Bound on the remote fetch
	Client  *http.Client  // Defaults to http.DefaultClient
	Logger  *log.Logger   // Defaults to a discarding logger
}

// tier is one step of the resolution chain.
type tier struct {
	source Source
	load   func(ctx context.Context) ([]string, bool)
}

// Resolve walks the chain and returns the first non-empty vocabulary.
func (r *Resolver) Resolve(ctx context.Context) Result {
	return r.resolve(ctx, []tier{
		{SourceFile, r.fromFile},
		{SourceRemote, r.fromRemote},
		{SourceEmbedded, r.fromEmbedded},
	})
}

// Refresh prefers the remote list over the local file. When the download
// fails a usable local file is kept, so the embedded list never replaces it.
func (r *Resolver) Refresh(ctx context.Context) Result {
	return r.resolve(ctx, []tier{
		{SourceRemote, r.fromRemote},
		{SourceFile, r.fromFile},
		{SourceEmbedded, r.fromEmbedded},
	})
}

func (r *Resolver) resolve(ctx context.Context, tiers []tier) Result {
	for _, t := range tiers {
		if list, ok := t.load(ctx); ok {
			return Result{Vocabulary: NewVocabulary(list), Source: t.source}
		}
	}
	// Unreachable: the embedded tier always succeeds.
	return Result{Vocabulary: NewVocabulary(Fallback()), Source: SourceEmbedded}
}

// fromFile reads the local list.
func (r *Resolver) fromFile(_ context.Context) ([]string, bool) {
	if r.Path == "" {
		return nil, false
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		r.logger().Debug("no local word list", "path", r.Path, "error", err)
		return nil, false
	}
	list := Filter(strings.Split(string(data), "\n"))
	if len(list) == 0 {
		r.logger().Debug("local word list has no usable words", "path", r.Path)
		return nil, false
	}
	return list, true
}

// fromRemote downloads the list and persists it on success.
func (r *Resolver) fromRemote(ctx context.Context) ([]string, bool) {
	if r.URL == "" {
		return nil, false
	}
	r.logger().Info("fetching word list", "url", r.URL)

	list, err := r.fetch(ctx)
	if err != nil {
		r.logger().Warn("could not download word list, using fallback", "error", err)
		return nil, false
	}

	if r.persist(list) {
		r.logger().Info("saved word list", "words", len(list), "path", r.Path)
	}
	return list, true
}

// fromEmbedded returns the fallback list, persisting it best-effort.
func (r *Resolver) fromEmbedded(_ context.Context) ([]string, bool) {
	list := Fallback()
	r.persist(list)
	return list, true
}

// fetch performs one bounded GET and filters the payload.
func (r *Resolver) fetch(ctx context.Context) ([]string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("words: build request: %w", err)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("words: fetch %s: %w", r.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("words: fetch %s: unexpected status %s", r.URL, resp.Status)
	}

	var lines []string
	sc := bufio.NewScanner(io.LimitReader(resp.Body, maxPayload))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", r.URL, err)
	}

	list := Filter(lines)
	if len(list) == 0 {
		return nil, fmt.Errorf("words: %s returned no %d-letter words", r.URL, Length)
	}
	return list, nil
}

// persist writes the list to Path. Failures are logged and otherwise ignored.
func (r *Resolver) persist(list []string) bool {
	if r.Path == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		r.logger().Debug("cannot create word list directory", "path", r.Path, "error", err)
		return false
	}
	if err := os.WriteFile(r.Path, []byte(strings.Join(list, "\n")+"\n"), 0o644); err != nil {
		r.logger().Debug("cannot save word list", "path", r.Path, "error", err)
		return false
	}
	return true
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}
	return r.Logger
}
