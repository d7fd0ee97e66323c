package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
)

type PromptList struct {
	prompts []string
	intn    func(n int) int
}

func NewPromptList(prompts []string) *PromptList {
	return &PromptList{prompts: prompts, intn: rand.IntN}
}

func (p *PromptList) Len() int {
	if p == nil {
		return 0
	}
	return len(p.prompts)
}

// Generate picks a prompt uniformly at random.
func (p *PromptList) Generate() (string, error) {
	if p.Len() == 0 {
		return "", ErrNoPrompts
	}
	return p.prompts[p.intn(len(p.prompts))], nil
}

// parsePrompts takes the first column of every row that has one.
func parsePrompts(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var prompts []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return prompts, fmt.Errorf("failed to parse prompts: %w", err)
		}
		if len(rec) == 0 {
			continue
		}
		if first := strings.TrimSpace(rec[0]); first != "" {
			prompts = append(prompts, first)
		}
	}
	return prompts, nil
}

func openPromptSource(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(source)
}

// LoadPrompts fetches the prompt list once. Failures are logged and yield an
// empty list; there is no retry.
func LoadPrompts(ctx context.Context, source string) *PromptList {
	if source == "" {
		return NewPromptList(nil)
	}
	rc, err := openPromptSource(ctx, source)
	if err != nil {
		slog.Warn("failed to fetch prompts", "source", source, "error", err)
		return NewPromptList(nil)
	}
	defer rc.Close()

	prompts, err := parsePrompts(rc)
	if err != nil {
		slog.Warn("prompt list is incomplete", "source", source, "error", err)
	}
	slog.Debug("prompts loaded", "source", source, "count", len(prompts))
	return NewPromptList(prompts)
}
