package core

//go:generate mockgen -destination=mock/mock.go -package=mockcore -source=responder.go

import (
	"github.com/bwmarrin/discordgo"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Responder abstracts Discord's interaction response API
type Responder interface {
	// Defer acknowledges the interaction so the response can follow later
	Defer(ephemeral bool) error

	// Respond sends the initial response, or edits it when already sent
	Respond(response *Response) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	HasResponded() bool
	IsDeferred() bool
}

// InteractionSession is the part of *discordgo.Session the responder uses
type InteractionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordResponder implements Responder against a Discord session
type DiscordResponder struct {
	session     InteractionSession
	interaction *discordgo.Interaction
	responded   bool
	deferred    bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s InteractionSession, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

func (r *DiscordResponder) Defer(ephemeral bool) error {
	if r.responded {
		return dnderr.New(dnderr.CodeAlreadyExists, "interaction already responded to")
	}

	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to defer interaction")
	}

	r.deferred = true
	r.responded = true
	return nil
}

func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return r.Edit(response)
	}

	respType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update {
		respType = discordgo.InteractionResponseUpdateMessage
	}

	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: respType,
		Data: buildResponseData(response),
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to respond to interaction")
	}

	r.responded = true
	return nil
}

func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return dnderr.InvalidArgument("cannot edit before responding")
	}

	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &response.Embeds,
		Components: &response.Components,
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to edit interaction response")
	}
	return nil
}

func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

func (r *DiscordResponder) IsDeferred() bool {
	return r.deferred
}

func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}
