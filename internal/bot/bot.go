package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameinfo/internal/config"
	"gameinfo/internal/report"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Reporter interface {
	GameInfo(ctx context.Context, summonerName string) (string, error)
}

type Bot struct {
	token    string
	prefix   string
	timeout  time.Duration
	reporter Reporter
	ctx      context.Context // Parent of every command, cancelled on shutdown
}

func NewBot(cfg config.Config, reporter Reporter) *Bot {
	return &Bot{
		token:    cfg.DiscordToken,
		prefix:   cfg.CommandPrefix,
		timeout:  cfg.CommandTimeout,
		reporter: reporter,
		ctx:      context.Background(),
	}
}

// Connect to discord and serve commands until the context is done
func (bot *Bot) Run(ctx context.Context) error {

	bot.ctx = ctx

	// Create session
	discord, err := discordgo.New("Bot " + bot.token)
	if err != nil {
		return fmt.Errorf("could not create discord session: %w", err)
	}
	discord.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	// Event handlers
	discord.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Msgf("Connected as %s to %d guilds", r.User.Username, len(r.Guilds))
	})
	discord.AddHandler(bot.Receive)

	// Open session
	if err := discord.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer discord.Close()

	log.Info().Msg("Bot running")
	<-ctx.Done()
	log.Info().Msg("Closing discord session")

	return nil
}

func (bot *Bot) Receive(discord *discordgo.Session, message *discordgo.MessageCreate) {

	// Reject my own messages
	if message.Author == nil || (discord.State != nil && discord.State.User != nil && message.Author.ID == discord.State.User.ID) {
		return
	}

	responses := bot.Handle(bot.ctx, message.Content)
	sendResponses(discord, message.ChannelID, responses)
}

// Parse the content of a message and compute the answers to it
func (bot *Bot) Handle(ctx context.Context, content string) (responses []Response) {

	// A failing command must not take the handler down
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic while handling '%s': %v", content, r)
			responses = nil
		}
	}()

	parseResult := Parse(bot.prefix, content)
	switch parseResult.parseid {
	case PARSEID_NO_BOT_PREFIX:
		return nil
	case PARSEID_OK:
		log.Info().Msgf("Command understood: %s", content)
		switch parseResult.command {
		case COMMAND_GAMEINFO:
			return bot.gameinfo(ctx, parseResult.arguments)
		case COMMAND_HELP:
			return HelpMessage(bot.prefix)
		default:
			panic(fmt.Sprintf("Command %d is not one of the possible ones", parseResult.command))
		}
	default:
		// The command is invalid input, so it contains an error message
		log.Info().Msgf("Wrong input: '%s'. Reason: %s", content, parseResult.errorMessage)
		return InputNotValid(parseResult.errorMessage)
	}
}

func (bot *Bot) gameinfo(ctx context.Context, summonerName string) []Response {

	ctx, cancel := context.WithTimeout(ctx, bot.timeout)
	defer cancel()

	logger := log.With().Str("invocation", uuid.NewString()).Str("summoner", summonerName).Logger()
	start := time.Now()

	table, err := bot.reporter.GameInfo(ctx, summonerName)
	switch {
	case err == nil:
		logger.Info().Msgf("Game info sent after %s", time.Since(start).Round(time.Millisecond))
		return GameInfoMessage(table)
	case errors.Is(err, report.ErrSummonerNotFound):
		logger.Info().Msg("Summoner not found")
		return SummonerNotFound(summonerName)
	case errors.Is(err, report.ErrNotInGame):
		logger.Info().Msg("Summoner not in game")
		return SummonerNotInGame(summonerName)
	case errors.Is(err, report.ErrUnranked):
		logger.Info().Err(err).Msg("Unranked participant")
		return SummonerNotRanked()
	case errors.Is(err, report.ErrAborted):
		logger.Warn().Err(err).Msg("Game info aborted")
		return nil
	default:
		logger.Error().Err(err).Msg("Could not build game info")
		return RequestFailed(summonerName)
	}
}
