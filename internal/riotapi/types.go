package riotapi

import (
	"fmt"
	"time"
)

type SummonerId int64
type ChampionId int
type MapId int
type GameId int64
type TeamId int

// Queues with their own ladder
const (
	QUEUE_RANKED_SOLO = "RANKED_SOLO_5x5"
	QUEUE_RANKED_FLEX = "RANKED_FLEX_SR"
)

type Summoner struct {
	Id            SummonerId
	AccountId     int64
	Name          string
	SummonerLevel int
}

type League struct {
	QueueType    string
	Tier         string
	Rank         string
	LeaguePoints int
	Wins         int
	Losses       int
	Winrate      float32
}

type Participant struct {
	SummonerId   SummonerId
	SummonerName string
	ChampionId   ChampionId
	TeamId       TeamId
}

type ActiveGame struct {
	GameId       GameId
	MapId        MapId
	GameMode     string
	GameLength   time.Duration
	Participants []Participant
}

type Champion struct {
	Id   ChampionId
	Name string
}

type MapInfo struct {
	MapId   MapId
	MapName string
}

func (summoner Summoner) String() string {
	return fmt.Sprintf("%s (%d)", summoner.Name, summoner.Id)
}

func (league League) String() string {
	return fmt.Sprintf("%s %s", league.Tier, league.Rank)
}
