package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Use "teal" color for the bot
const color int = 0x008080

func InputNotValid(errorMessage string) []Response {

	return []Response{ResponseString{fmt.Sprintf("Input not valid: \n> %s", errorMessage)}}
}

func HelpMessage(prefix string) []Response {

	embed := discordgo.MessageEmbed{Title: "Commands available", Color: color}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("`%sgameinfo <summoner_name>`", prefix),
		Value:  "Print the players, champions and ranks of the game the summoner is currently playing",
		Inline: false,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("`%shelp`", prefix),
		Value:  "Print the usage of the different commands",
		Inline: false,
	})
	return []Response{ResponseEmbed{embed}}
}

func SummonerNotFound(summonerName string) []Response {
	return []Response{ResponseString{fmt.Sprintf("Oops, are you sure `%s` is a valid summoner name?", summonerName)}}
}

func SummonerNotInGame(summonerName string) []Response {
	return []Response{ResponseString{fmt.Sprintf("Oops, are you sure `%s` is currently in game?", summonerName)}}
}

func SummonerNotRanked() []Response {
	return []Response{ResponseString{"Oops, are you sure every summoner in the game is ranked?"}}
}

func RequestFailed(summonerName string) []Response {
	return []Response{ResponseString{fmt.Sprintf("Sorry, I could not complete the request for `%s`", summonerName)}}
}

func GameInfoMessage(table string) []Response {
	return []Response{ResponseString{table}}
}
