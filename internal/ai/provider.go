package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable reports that a provider is not usable, typically because
// no credential was configured.
var ErrUnavailable = errors.New("ai provider unavailable")

// Message is one entry of a chat transcript sent to a model. Role follows
// the OpenAI convention: "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type IChatProvider interface {
	Name() string
	Chat(ctx context.Context, model string, messages []Message) (string, error)
}

type IEmbedProvider interface {
	Name() string
	EmbedBatch(ctx context.Context, model string, texts []string) ([][]float32, error)
}

// IChatOracle is a chat provider bound to one model.
type IChatOracle interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// IEmbedOracle is an embedding provider bound to one model.
type IEmbedOracle interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	ModelName() string
}

type chatOracle struct {
	provider IChatProvider
	model    string
}

func NewChatOracle(p IChatProvider, model string) IChatOracle {
	return &chatOracle{provider: p, model: model}
}

func (o *chatOracle) Chat(ctx context.Context, messages []Message) (string, error) {
	return o.provider.Chat(ctx, o.model, messages)
}

type embedOracle struct {
	provider IEmbedProvider
	model    string
}

func NewEmbedOracle(p IEmbedProvider, model string) IEmbedOracle {
	return &embedOracle{provider: p, model: model}
}

func (o *embedOracle) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return o.provider.EmbedBatch(ctx, o.model, texts)
}

func (o *embedOracle) ModelName() string {
	return o.model
}

type ChatFactory func(args interface{}) (IChatProvider, error)
type EmbedFactory func(args interface{}) (IEmbedProvider, error)

var (
	chatRegistry  = map[string]ChatFactory{}
	embedRegistry = map[string]EmbedFactory{}
)

func Register(name string, factory ChatFactory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	chatRegistry[key] = factory
}

func RegisterEmbed(name string, factory EmbedFactory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	embedRegistry[key] = factory
}

func NewChatProvider(name string, args interface{}) (IChatProvider, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	factory := chatRegistry[key]
	if factory == nil {
		return nil, fmt.Errorf("unsupported ai provider: %s", name)
	}
	return factory(args)
}

func NewEmbedProvider(name string, args interface{}) (IEmbedProvider, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("ai.embed_provider is required")
	}
	factory := embedRegistry[key]
	if factory == nil {
		return nil, fmt.Errorf("unsupported embed provider: %s", name)
	}
	return factory(args)
}
