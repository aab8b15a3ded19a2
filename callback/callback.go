// Package callback defines the observation hooks agents invoke at their
// lifecycle edges. Agents guard every invocation with a nil check, so a
// handler is always optional.
package callback

import (
	"context"
	"log"

	"github.com/tripweave/tripweave/llm"
)

// Handler receives notifications as agents run. Implementations must be safe
// for concurrent use; agents may run in parallel.
type Handler interface {
	HandleAgentStart(ctx context.Context, agent string)
	HandleAgentEnd(ctx context.Context, agent string, err error)
	HandleLLMStart(ctx context.Context, prompt string)
	HandleLLMEnd(ctx context.Context, output *llm.Generation)
	// HandleFallback fires when an agent substitutes synthesized data for a
	// provider result, with the reason for the substitution.
	HandleFallback(ctx context.Context, agent, reason string)
}

// LogHandler writes every event to the standard logger. Useful as a default
// during development and in examples.
type LogHandler struct{}

var _ Handler = (*LogHandler)(nil)

func (h *LogHandler) HandleAgentStart(_ context.Context, agent string) {
	log.Printf("[%s] start", agent)
}

func (h *LogHandler) HandleAgentEnd(_ context.Context, agent string, err error) {
	if err != nil {
		log.Printf("[%s] end, err: %v", agent, err)
		return
	}
	log.Printf("[%s] end", agent)
}

func (h *LogHandler) HandleLLMStart(_ context.Context, prompt string) {
	log.Printf("llm start, prompt length %d", len(prompt))
}

func (h *LogHandler) HandleLLMEnd(_ context.Context, output *llm.Generation) {
	if output == nil || output.Usage == nil {
		return
	}
	log.Printf("llm end, %d completion tokens", output.Usage.CompletionTokens)
}

func (h *LogHandler) HandleFallback(_ context.Context, agent, reason string) {
	log.Printf("[%s] falling back to synthesized data: %s", agent, reason)
}
