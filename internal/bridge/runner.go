// internal/bridge/runner.go
package bridge

import (
	"context"
	"time"

	"github.com/tamzrod/glove-bridge/internal/poller"
	"github.com/tamzrod/glove-bridge/internal/sensor"
)

// Run is the orchestrator: one frame per poll result, plus a 1 Hz
// ticker for seconds-in-error. It owns bank, table, link and mirror
// for its whole lifetime. Run returns when ctx is done or results closes.
func (b *Bridge) Run(ctx context.Context, bank *sensor.Bank, results <-chan poller.PollResult) {
	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case res, ok := <-results:
			if !ok {
				return
			}
			b.Apply(bank, res)

			// Link errors are already tracked and logged on transition.
			_, _ = b.EncodeAndSend()

		case <-secTicker.C:
			b.tickSecond()
		}
	}
}

// Apply stores a poll result into the bank. A failed poll clears the
// bank so every bound sensor reads as no contact for this frame.
func (b *Bridge) Apply(bank *sensor.Bank, res poller.PollResult) {
	if res.Err != nil {
		bank.Clear()
	} else {
		bank.Store(res.Bits)
	}
	b.observeSource(res.Err)
}
