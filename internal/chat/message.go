package chat

//go:generate mockgen -destination=mock/mock.go -package=mockchat -source=message.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
)

type MessageType string

const (
	MessageTypeOther MessageType = "other"
	MessageTypeRoll  MessageType = "roll"
)

type RollMode string

const (
	RollModePublic  RollMode = "publicroll"
	RollModeGM      RollMode = "gmroll"
	RollModeBlind   RollMode = "blindroll"
	RollModePrivate RollMode = "selfroll"
)

// Speaker is who a message is attributed to. An empty ActorID with an Alias
// is an out-of-character speaker.
type Speaker struct {
	ActorID string `json:"actorId,omitempty"`
	Alias   string `json:"alias"`
}

// Roll is the evaluated roll attached to a roll message
type Roll struct {
	Formula string         `json:"formula"`
	Total   int            `json:"total"`
	Dice    []dice.DieRoll `json:"dice,omitempty"`
}

// RollFromResult converts an evaluator result for attaching to a message
func RollFromResult(res *dice.Result) *Roll {
	if res == nil {
		return nil
	}
	return &Roll{
		Formula: res.Formula,
		Total:   res.Total,
		Dice:    res.Dice,
	}
}

type Message struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	ChannelID string      `json:"channelId"`
	Speaker   Speaker     `json:"speaker"`
	Flavor    string      `json:"flavor,omitempty"`
	Type      MessageType `json:"type"`
	RollMode  RollMode    `json:"rollMode,omitempty"`
	Roll      *Roll       `json:"roll,omitempty"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"imageUrl,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Sink posts chat messages and returns the created message
type Sink interface {
	Post(ctx context.Context, msg *Message) (*Message, error)
}
