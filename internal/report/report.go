// Package report builds the text summary of the game a summoner is playing.
package report

import (
	"context"
	"errors"
	"fmt"

	"gameinfo/internal/riotapi"

	"github.com/rs/zerolog/log"
)

const UNRANKED = "Unranked"
const UNKNOWN_MAP = "Unknown map"

// Subset of the riot API needed to build a report
type RiotApi interface {
	GetSummonerByName(ctx context.Context, name string) (riotapi.Summoner, error)
	GetActiveGame(ctx context.Context, summonerId riotapi.SummonerId) (riotapi.ActiveGame, error)
	GetLeagues(ctx context.Context, summonerId riotapi.SummonerId) ([]riotapi.League, error)
	GetChampion(ctx context.Context, championId riotapi.ChampionId) (riotapi.Champion, error)
	GetMaps(ctx context.Context) ([]riotapi.MapInfo, error)
}

type Reporter struct {
	riotapi RiotApi
}

func NewReporter(riotapi RiotApi) *Reporter {
	return &Reporter{riotapi: riotapi}
}

// One line of the table
type PlayerRow struct {
	Name     string
	Champion string
	Solo     string
	Flex     string
}

type Report struct {
	MapName  string
	GameMode string
	Team1    []PlayerRow
	Team2    []PlayerRow
}

// Build the formatted summary of the game the summoner is currently playing.
// Nothing is returned unless every request succeeded
func (reporter *Reporter) GameInfo(ctx context.Context, summonerName string) (string, error) {

	report, err := reporter.Build(ctx, summonerName)
	if err != nil {
		return "", err
	}
	return Format(report), nil
}

func (reporter *Reporter) Build(ctx context.Context, summonerName string) (Report, error) {

	// summoner
	summoner, err := reporter.riotapi.GetSummonerByName(ctx, summonerName)
	if errors.Is(err, riotapi.ErrNotFound) {
		return Report{}, fmt.Errorf("%w: %s", ErrSummonerNotFound, summonerName)
	} else if err != nil {
		return Report{}, failed(err)
	}

	// active game
	game, err := reporter.riotapi.GetActiveGame(ctx, summoner.Id)
	if errors.Is(err, riotapi.ErrNotFound) {
		return Report{}, fmt.Errorf("%w: %s", ErrNotInGame, summoner.Name)
	} else if err != nil {
		return Report{}, failed(err)
	}
	log.Info().Msgf("%s is playing game %d", summoner, game.GameId)

	// map name
	maps, err := reporter.riotapi.GetMaps(ctx)
	if err != nil {
		return Report{}, midPipeline(err)
	}
	report := Report{MapName: MapName(maps, game.MapId), GameMode: game.GameMode}

	// participants, the team of the first one is team 1
	if len(game.Participants) == 0 {
		return Report{}, failed(errors.New("active game without participants"))
	}
	idTeam1 := game.Participants[0].TeamId
	for _, participant := range game.Participants {

		leagues, err := reporter.riotapi.GetLeagues(ctx, participant.SummonerId)
		if err != nil {
			return Report{}, midPipeline(err)
		}
		if len(leagues) == 0 {
			return Report{}, fmt.Errorf("%w: %s", ErrUnranked, participant.SummonerName)
		}

		champion, err := reporter.riotapi.GetChampion(ctx, participant.ChampionId)
		if err != nil {
			return Report{}, midPipeline(err)
		}

		row := PlayerRow{
			Name:     participant.SummonerName,
			Champion: champion.Name,
			Solo:     RankString(leagues, riotapi.QUEUE_RANKED_SOLO),
			Flex:     RankString(leagues, riotapi.QUEUE_RANKED_FLEX),
		}
		if participant.TeamId == idTeam1 {
			report.Team1 = append(report.Team1, row)
		} else {
			report.Team2 = append(report.Team2, row)
		}
	}

	return report, nil
}

// Name of the first map with the provided id
func MapName(maps []riotapi.MapInfo, mapId riotapi.MapId) string {
	for _, m := range maps {
		if m.MapId == mapId {
			return m.MapName
		}
	}
	log.Warn().Msgf("Map id %d not found among %d maps", mapId, len(maps))
	return UNKNOWN_MAP
}

// "{tier} {rank}" of the first entry for the queue, or Unranked
func RankString(leagues []riotapi.League, queueType string) string {
	for _, league := range leagues {
		if league.QueueType == queueType {
			return league.String()
		}
	}
	return UNRANKED
}

func failed(err error) error {
	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

// Missing data once the game is known ends the report silently
func midPipeline(err error) error {
	if errors.Is(err, riotapi.ErrNotFound) {
		log.Warn().Err(err).Msg("Aborting report")
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return failed(err)
}
