// Package narration wraps an external text-to-speech command behind a
// fire-and-forget API. Speech runs in the background and can always be
// cancelled; nothing in the app ever waits for it.
package narration

import (
	"context"
	"os/exec"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

const (
	minRate     = 50
	maxRate     = 300
	defaultRate = 150
)

type Narrator struct {
	mu      sync.Mutex
	command string
	rate    int
	enabled bool
	cancel  context.CancelFunc
	log     *zap.Logger
}

// New builds a narrator around a TTS command such as "espeak" or "say".
// An empty command disables narration entirely.
func New(command string, enabled bool, log *zap.Logger) *Narrator {
	if log == nil {
		log = zap.NewNop()
	}
	if command == "" {
		enabled = false
	}
	return &Narrator{
		command: command,
		rate:    defaultRate,
		enabled: enabled,
		log:     log,
	}
}

// Speak queues text for narration and returns immediately. Any speech
// already in flight is cancelled first.
func (n *Narrator) Speak(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.enabled || text == "" {
		return
	}

	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel

	cmd := exec.CommandContext(ctx, n.command, n.args(text)...)
	go func() {
		defer cancel()
		if err := cmd.Run(); err != nil && ctx.Err() == nil {
			n.log.Debug("narration failed", zap.Error(err))
		}
	}()
}

// args maps the rate flag to the known TTS tools; espeak and say disagree
// on the flag name.
func (n *Narrator) args(text string) []string {
	rate := strconv.Itoa(n.rate)
	if n.command == "say" {
		return []string{"-r", rate, text}
	}
	return []string{"-s", rate, text}
}

// Stop cancels any in-flight speech.
func (n *Narrator) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

// SetRate sets the speech rate in words per minute, clamped to 50-300.
func (n *Narrator) SetRate(rate int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if rate < minRate {
		rate = minRate
	}
	if rate > maxRate {
		rate = maxRate
	}
	n.rate = rate
}

// Toggle flips audio on or off and reports the new state. Turning audio
// off also stops anything currently speaking.
func (n *Narrator) Toggle() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = !n.enabled
	if !n.enabled && n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	return n.enabled
}

func (n *Narrator) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}
