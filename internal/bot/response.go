package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// The part of the discord session used to answer
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type ResponseString struct {
	string
}
type ResponseEmbed struct {
	discordgo.MessageEmbed
}

type Response interface {
	Send(channelid string, sender Sender) error
}

func (response ResponseString) Send(channelid string, sender Sender) error {
	_, err := sender.ChannelMessageSend(channelid, response.string)
	return err
}

func (response ResponseEmbed) Send(channelid string, sender Sender) error {
	_, err := sender.ChannelMessageSendEmbed(channelid, &response.MessageEmbed)
	return err
}

func sendResponses(sender Sender, channelid string, responses []Response) {
	for _, response := range responses {
		if err := response.Send(channelid, sender); err != nil {
			log.Error().Err(err).Msgf("Could not send response to channel %s", channelid)
		}
	}
}
