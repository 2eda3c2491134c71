package riotapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

func UnmarshalSummoner(data []byte) (Summoner, error) {

	var summoner Summoner
	if err := json.Unmarshal(data, &summoner); err != nil {
		return Summoner{}, &DecodeError{"summoner", err}
	}
	if summoner.Id == 0 {
		return Summoner{}, &DecodeError{"summoner", errors.New("missing summoner id")}
	}

	return summoner, nil
}

func UnmarshalActiveGame(data []byte) (ActiveGame, error) {

	// unmarshal
	var raw struct {
		GameId       GameId
		MapId        MapId
		GameMode     string
		GameLength   int64
		Participants []Participant
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ActiveGame{}, &DecodeError{"active game", err}
	}

	if len(raw.Participants) == 0 {
		return ActiveGame{}, &DecodeError{"active game", errors.New("no participants")}
	}
	for i, participant := range raw.Participants {
		if participant.SummonerName == "" {
			return ActiveGame{}, &DecodeError{"active game", fmt.Errorf("participant %d has no summoner name", i)}
		}
	}

	return ActiveGame{
		GameId:       raw.GameId,
		MapId:        raw.MapId,
		GameMode:     raw.GameMode,
		GameLength:   time.Duration(raw.GameLength) * time.Second,
		Participants: raw.Participants,
	}, nil
}

func UnmarshalLeagues(data []byte) ([]League, error) {

	// unmarshal
	var leagues []League
	if err := json.Unmarshal(data, &leagues); err != nil {
		return nil, &DecodeError{"leagues", err}
	}

	// Handle internal data
	for i := range leagues {

		if leagues[i].QueueType == "" {
			return nil, &DecodeError{"leagues", fmt.Errorf("entry %d has no queue type", i)}
		}

		// winrate
		games := leagues[i].Wins + leagues[i].Losses
		if games > 0 {
			leagues[i].Winrate = 100.0 * float32(leagues[i].Wins) / float32(games)
		} else {
			leagues[i].Winrate = 0
		}
	}

	return leagues, nil
}

func UnmarshalChampion(data []byte) (Champion, error) {

	var champion Champion
	if err := json.Unmarshal(data, &champion); err != nil {
		return Champion{}, &DecodeError{"champion", err}
	}
	if champion.Name == "" {
		return Champion{}, &DecodeError{"champion", errors.New("missing champion name")}
	}

	return champion, nil
}

// Maps come keyed by a string. The result is ordered by that key
// so that scanning it always gives the same answer
func UnmarshalMaps(data []byte) ([]MapInfo, error) {

	var raw struct {
		Data map[string]MapInfo
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{"maps", err}
	}
	if raw.Data == nil {
		return nil, &DecodeError{"maps", errors.New("missing map data")}
	}

	keys := make([]string, 0, len(raw.Data))
	for key := range raw.Data {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		// numeric keys in numeric order, anything else after them
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	maps := make([]MapInfo, 0, len(keys))
	for _, key := range keys {
		maps = append(maps, raw.Data[key])
	}
	return maps, nil
}
