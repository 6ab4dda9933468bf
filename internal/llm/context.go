package llm

import "context"

type contextKey string

const callMetaKey contextKey = "llm_call_meta"

// CallMeta labels a provider call for event recording.
type CallMeta struct {
	RequestID string
	Tier      string
	Mode      string
}

// WithCallMeta attaches call metadata to the context.
func WithCallMeta(ctx context.Context, meta CallMeta) context.Context {
	return context.WithValue(ctx, callMetaKey, meta)
}

// CallMetaFrom extracts call metadata from the context.
func CallMetaFrom(ctx context.Context) CallMeta {
	if v, ok := ctx.Value(callMetaKey).(CallMeta); ok {
		return v
	}
	return CallMeta{}
}
