package sink

import (
	"context"

	"github.com/wisepayru/banking/internal/event"
)

// Sink is the downstream consumer of validated events. Implementations are
// called once per accepted request; a returned error is classified by the
// dispatcher as a processing failure and never reaches the provider verbatim.
type Sink interface {
	Receive(ctx context.Context, evt event.Event) error
}
