package intent

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wrenlabs/shortcuts/internal/logger"
)

// DefaultSubmitTimeout bounds a single donation submission.
const DefaultSubmitTimeout = 5 * time.Second

// Assistant is the sink donated interactions are submitted to.
type Assistant interface {
	Submit(ctx context.Context, interaction Interaction) error
}

// Donor donates intents to the assistant, fire-and-forget. The only
// observable local effect of a failed submission is one error log line;
// nothing is surfaced to the caller and nothing is retried.
type Donor struct {
	assistant Assistant
	logger    logger.Logger
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewDonor creates a donor submitting to the given assistant.
func NewDonor(assistant Assistant, log logger.Logger) *Donor {
	return &Donor{
		assistant: assistant,
		logger:    log,
		timeout:   DefaultSubmitTimeout,
	}
}

// Donate constructs the intent for kind and url, wraps it in an
// interaction and submits it asynchronously. Returns immediately; the
// submission outcome never reaches the caller. The logger must be safe to
// call from the submission goroutine.
func (d *Donor) Donate(kind Kind, url string) Interaction {
	interaction := Interaction{
		ID:        uuid.NewString(),
		Intent:    NewIntent(kind, url),
		DonatedAt: time.Now(),
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.assistant.Submit(ctx, interaction); err != nil {
			d.logger.Error("failed to donate intent",
				logger.String("interaction_id", interaction.ID),
				logger.String("kind", string(kind)),
				logger.Error(err))
		}
	}()

	return interaction
}

// Close waits for in-flight donations to settle. Used on shutdown.
func (d *Donor) Close() {
	d.wg.Wait()
}
