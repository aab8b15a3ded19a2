package llm

import "context"

// LLM is the minimal completion interface the agents depend on: prompt in,
// free text out. No streaming or structured-output mode is assumed.
type LLM interface {
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (*Generation, error)
	GenerateContent(ctx context.Context, messages []Message, opts ...GenerateOption) (*Generation, error)
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Name    string
	Content string
}

func NewUserMessage(name, content string) Message {
	return Message{Role: RoleUser, Name: name, Content: content}
}

func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// Usage reports token consumption for a single generation.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Generation is the output of a single completion call.
type Generation struct {
	Content    string
	StopReason string
	Usage      *Usage
}

type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
	StopWords   []string
	JSONMode    bool
}

type GenerateOption func(*GenerateOptions)

func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		Temperature: 0.7,
		MaxTokens:   1500,
	}
}

func WithTemperature(temperature float32) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.Temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.MaxTokens = maxTokens
	}
}

func WithStopWords(stopWords []string) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.StopWords = stopWords
	}
}

func WithJSONMode() GenerateOption {
	return func(opts *GenerateOptions) {
		opts.JSONMode = true
	}
}
