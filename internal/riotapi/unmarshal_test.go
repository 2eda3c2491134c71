package riotapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalSummoner(t *testing.T) {
	summoner, err := UnmarshalSummoner([]byte(`{"id":42,"accountId":7,"name":"Hide on bush","summonerLevel":512}`))
	require.NoError(t, err)
	assert.Equal(t, Summoner{Id: 42, AccountId: 7, Name: "Hide on bush", SummonerLevel: 512}, summoner)

	_, err = UnmarshalSummoner([]byte(`{"name":"nobody"}`))
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "summoner", decodeErr.Resource)
}

func TestUnmarshalActiveGame(t *testing.T) {
	data := []byte(`{
		"gameId": 3000,
		"mapId": 11,
		"gameMode": "CLASSIC",
		"gameLength": 125,
		"participants": [
			{"teamId": 100, "championId": 103, "summonerName": "alpha", "summonerId": 1},
			{"teamId": 200, "championId": 222, "summonerName": "beta", "summonerId": 2}
		]
	}`)

	game, err := UnmarshalActiveGame(data)
	require.NoError(t, err)
	assert.Equal(t, GameId(3000), game.GameId)
	assert.Equal(t, MapId(11), game.MapId)
	assert.Equal(t, "CLASSIC", game.GameMode)
	assert.Equal(t, 125*time.Second, game.GameLength)
	assert.Equal(t, []Participant{
		{SummonerId: 1, SummonerName: "alpha", ChampionId: 103, TeamId: 100},
		{SummonerId: 2, SummonerName: "beta", ChampionId: 222, TeamId: 200},
	}, game.Participants)
}

func TestUnmarshalActiveGameInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"gameId":`},
		{"no participants", `{"gameId": 1, "participants": []}`},
		{"participant without name", `{"gameId": 1, "participants": [{"teamId": 100, "summonerId": 1}]}`},
		{"wrong type", `{"gameId": "abc"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalActiveGame([]byte(tt.data))
			var decodeErr *DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestUnmarshalLeagues(t *testing.T) {
	data := []byte(`[
		{"queueType":"RANKED_SOLO_5x5","tier":"GOLD","rank":"II","leaguePoints":55,"wins":30,"losses":10},
		{"queueType":"RANKED_FLEX_SR","tier":"SILVER","rank":"I","leaguePoints":0,"wins":0,"losses":0}
	]`)

	leagues, err := UnmarshalLeagues(data)
	require.NoError(t, err)
	require.Len(t, leagues, 2)
	assert.Equal(t, "GOLD II", leagues[0].String())
	assert.Equal(t, 55, leagues[0].LeaguePoints)
	assert.InDelta(t, 75.0, leagues[0].Winrate, 0.001)
	assert.Equal(t, float32(0), leagues[1].Winrate)

	leagues, err = UnmarshalLeagues([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, leagues)

	_, err = UnmarshalLeagues([]byte(`[{"tier":"GOLD"}]`))
	assert.Error(t, err)
}

func TestUnmarshalChampion(t *testing.T) {
	champion, err := UnmarshalChampion([]byte(`{"id":103,"key":"Ahri","name":"Ahri","title":"the Nine-Tailed Fox"}`))
	require.NoError(t, err)
	assert.Equal(t, Champion{Id: 103, Name: "Ahri"}, champion)

	_, err = UnmarshalChampion([]byte(`{"id":103}`))
	assert.Error(t, err)
}

func TestUnmarshalMapsIsOrdered(t *testing.T) {
	data := []byte(`{"type":"map","data":{
		"12":{"mapId":12,"mapName":"Howling Abyss"},
		"8":{"mapId":8,"mapName":"The Crystal Scar"},
		"11":{"mapId":11,"mapName":"Summoner's Rift"}
	}}`)

	maps, err := UnmarshalMaps(data)
	require.NoError(t, err)
	assert.Equal(t, []MapInfo{
		{MapId: 8, MapName: "The Crystal Scar"},
		{MapId: 11, MapName: "Summoner's Rift"},
		{MapId: 12, MapName: "Howling Abyss"},
	}, maps)

	_, err = UnmarshalMaps([]byte(`{"type":"map"}`))
	assert.Error(t, err)
}
