package bot

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	COMMAND_GAMEINFO = iota
	COMMAND_HELP
)

const (
	PARSEID_OK = iota
	PARSEID_NO_BOT_PREFIX
	PARSEID_NO_COMMAND
	PARSEID_COMMAND_NOT_RECOGNISED
	PARSEID_NO_INPUT
)

var errorMessages map[int]string = map[int]string{
	PARSEID_NO_COMMAND:             "No command provided",
	PARSEID_COMMAND_NOT_RECOGNISED: "Command `%s` not recognised",
	PARSEID_NO_INPUT:               "Command `%s` requires an argument",
}

type ParseResult struct {
	command      int
	parseid      int
	errorMessage string
	arguments    string
}

func Parse(prefix string, message string) ParseResult {

	// The message has to start with the bot prefix
	if !strings.HasPrefix(message, prefix) {
		log.Debug().Msg("Reject message not intended for the bot")
		return ParseResult{parseid: PARSEID_NO_BOT_PREFIX}
	}

	// Get the command if valid
	words := strings.Fields(message[len(prefix):])
	if len(words) == 0 {
		parseid := PARSEID_NO_COMMAND
		return ParseResult{parseid: parseid, errorMessage: errorMessages[parseid]}
	}
	commandString := words[0]
	words = words[1:]

	switch commandString {
	case "gameinfo":
		// <prefix>gameinfo <summoner_name>
		// Summoner names can contain spaces
		command := COMMAND_GAMEINFO
		if len(words) == 0 {
			parseid := PARSEID_NO_INPUT
			return ParseResult{command: command, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], commandString)}
		}
		return ParseResult{command: command, parseid: PARSEID_OK, arguments: strings.Join(words, " ")}
	case "help":
		// <prefix>help
		return ParseResult{command: COMMAND_HELP, parseid: PARSEID_OK}
	default:
		parseid := PARSEID_COMMAND_NOT_RECOGNISED
		return ParseResult{parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], commandString)}
	}
}
