package chat

import (
	"context"
	"strconv"
	"sync"
	"time"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Recorder is an in-memory Sink. The CLI prints what it records and tests
// assert against it.
type Recorder struct {
	mu       sync.Mutex
	messages []*Message
	now      func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Post(ctx context.Context, msg *Message) (*Message, error) {
	if msg == nil {
		return nil, dnderr.InvalidArgument("message is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := *msg
	created.ID = "msg-" + strconv.Itoa(len(r.messages)+1)
	created.CreatedAt = r.now()
	r.messages = append(r.messages, &created)

	out := created
	return &out, nil
}

// Messages returns copies of every recorded message in post order
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Message, len(r.messages))
	for i, m := range r.messages {
		out[i] = *m
	}
	return out
}

// Last returns the most recent message, or nil
func (r *Recorder) Last() *Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return nil
	}
	out := *r.messages[len(r.messages)-1]
	return &out
}
