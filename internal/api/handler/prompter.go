package handler

import (
	"context"

	"github.com/crisiscenter/tracker/internal/core/ports"
)

// requestPrompter answers the engine's prompts from values the operator
// already supplied in the request body. Warnings go to the fallback so they
// still reach the notice feed.
type requestPrompter struct {
	returnTime string
	screened   bool
	fallback   ports.Prompter
}

func (p requestPrompter) RequestReturnTime(_ context.Context, _ string) (string, bool) {
	return p.returnTime, p.returnTime != ""
}

func (p requestPrompter) ConfirmSecurityScreening(_ context.Context, _ string) bool {
	return p.screened
}

func (p requestPrompter) WarnInvalidInput(ctx context.Context, message string) {
	if p.fallback != nil {
		p.fallback.WarnInvalidInput(ctx, message)
	}
}
