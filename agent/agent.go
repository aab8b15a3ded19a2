// Package agent contains the six travel-planning agents and the coordinator
// that fans a request out to them. Every agent follows the same pipeline:
// build prompt, await the model or provider call, parse the free text into
// typed records, then reconcile or fall back. An agent never returns a partial
// result; when a provider is unreachable or yields nothing usable, it
// substitutes synthesized data shaped exactly like the live path's output.
package agent

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/thoas/go-funk"
	"github.com/tripweave/tripweave/llm"
	"github.com/tripweave/tripweave/schema"
)

const (
	_dateLayout = "2006-01-02"

	// Bound applied to every model call so a hung provider degrades into the
	// fallback path instead of stalling the whole plan.
	_defaultLLMTimeout = 60 * time.Second
)

// base carries the collaborators every agent shares.
type base struct {
	name string
	opts *Options
}

func newBase(name string, opts ...Option) base {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return base{name: name, opts: options}
}

// generate runs one completion with callback hooks around it.
func (b *base) generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (string, error) {
	if b.opts.LLM == nil {
		return "", schema.ErrMissingLLM
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, _defaultLLMTimeout)
		defer cancel()
	}
	if b.opts.Callback != nil {
		b.opts.Callback.HandleLLMStart(ctx, prompt)
	}
	output, err := b.opts.LLM.Generate(ctx, prompt, opts...)
	if err != nil {
		return "", err
	}
	if b.opts.Callback != nil {
		b.opts.Callback.HandleLLMEnd(ctx, output)
	}
	return output.Content, nil
}

func (b *base) onStart(ctx context.Context) {
	if b.opts.Callback != nil {
		b.opts.Callback.HandleAgentStart(ctx, b.name)
	}
}

func (b *base) onEnd(ctx context.Context, err error) {
	if b.opts.Callback != nil {
		b.opts.Callback.HandleAgentEnd(ctx, b.name, err)
	}
}

func (b *base) onFallback(ctx context.Context, reason string) {
	if b.opts.Callback != nil {
		b.opts.Callback.HandleFallback(ctx, b.name, reason)
	}
}

// preferencesJSON renders preferences for prompt interpolation. A marshal
// failure degrades to an empty object rather than failing the agent.
func preferencesJSON(p schema.Preferences) string {
	bytes, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

// firstLines joins the first n non-empty lines of a model response, the
// cheap-and-cheerful way to get a one-paragraph summary out of free text.
func firstLines(text string, n int) string {
	lines := nonEmptyLines(text)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

// keywordLines returns up to limit trimmed lines containing any keyword,
// scanning case-sensitively to match the model's own phrasing.
func keywordLines(text string, keywords []string, limit int) []string {
	out := make([]string, 0, limit)
	for _, line := range nonEmptyLines(text) {
		matched := funk.Contains(keywords, func(keyword string) bool {
			return strings.Contains(line, keyword)
		})
		if matched {
			out = append(out, line)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

func nonEmptyLines(text string) []string {
	return funk.FilterString(
		funk.Map(strings.Split(text, "\n"), strings.TrimSpace).([]string),
		func(line string) bool { return line != "" },
	)
}
