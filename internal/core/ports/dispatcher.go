package ports

import "context"

// Prompter asks the operator for input while a transition is suspended.
type Prompter interface {
	// RequestReturnTime asks for an estimated return time. ok is false
	// when the operator dismisses the prompt.
	RequestReturnTime(ctx context.Context, clientName string) (returnTime string, ok bool)
	ConfirmSecurityScreening(ctx context.Context, clientName string) bool
	WarnInvalidInput(ctx context.Context, message string)
}

// Notifier surfaces timer-driven notices to the operator.
type Notifier interface {
	NotifyCheckDue(ctx context.Context, clientName string)
	NotifyShowerEnded(ctx context.Context, clientName string)
}

// Dispatcher is the operator-facing collaborator the engine calls into.
type Dispatcher interface {
	Prompter
	Notifier
}

type prompterKey struct{}

// WithPrompter returns a context whose prompts are answered by p instead of
// the engine's default dispatcher. Transports that collect the operator's
// answers up front (an HTTP request body, a scripted test) use this.
func WithPrompter(ctx context.Context, p Prompter) context.Context {
	return context.WithValue(ctx, prompterKey{}, p)
}

// PrompterFrom returns the prompter carried by ctx, or fallback.
func PrompterFrom(ctx context.Context, fallback Prompter) Prompter {
	if p, ok := ctx.Value(prompterKey{}).(Prompter); ok && p != nil {
		return p
	}
	return fallback
}
