package riotapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gameinfo/internal/common"

	"github.com/rs/zerolog/log"
)

// Riot schema
const RIOT_SCHEMA = "https://%s.api.riotgames.com"

// Routes inside the riot API
const ROUTE_SUMMONER_BY_NAME = "/lol/summoner/v3/summoners/by-name/%s"
const ROUTE_SPECTATOR = "/lol/spectator/v3/active-games/by-summoner/%d"
const ROUTE_POSITIONS = "/lol/league/v3/positions/by-summoner/%d"
const ROUTE_CHAMPION = "/lol/static-data/v3/champions/%d"
const ROUTE_MAPS = "/lol/static-data/v3/maps"

type Options struct {
	Region       string
	ApiKey       string
	BaseUrl      string // Overrides the url built from the region
	Restrictions []common.Restriction
	HttpClient   *http.Client
}

type RiotApi struct {
	baseUrl string
	proxy   *common.Proxy
}

func NewRiotApi(options Options) *RiotApi {

	baseUrl := options.BaseUrl
	if baseUrl == "" {
		baseUrl = fmt.Sprintf(RIOT_SCHEMA, options.Region)
	}

	return &RiotApi{
		baseUrl: baseUrl,
		proxy:   common.NewProxy(options.HttpClient, map[string]string{"api_key": options.ApiKey}, options.Restrictions),
	}
}

func (riotapi *RiotApi) GetSummonerByName(ctx context.Context, name string) (Summoner, error) {

	data, err := riotapi.Fetch(ctx, fmt.Sprintf(ROUTE_SUMMONER_BY_NAME, url.PathEscape(name)))
	if err != nil {
		return Summoner{}, fmt.Errorf("summoner %s: %w", name, err)
	}

	summoner, err := UnmarshalSummoner(data)
	if err != nil {
		return Summoner{}, err
	}
	log.Debug().Msgf("Found summoner %s", summoner)
	return summoner, nil
}

func (riotapi *RiotApi) GetActiveGame(ctx context.Context, summonerId SummonerId) (ActiveGame, error) {

	data, err := riotapi.Fetch(ctx, fmt.Sprintf(ROUTE_SPECTATOR, summonerId))
	if err != nil {
		return ActiveGame{}, fmt.Errorf("active game for summoner id %d: %w", summonerId, err)
	}

	return UnmarshalActiveGame(data)
}

func (riotapi *RiotApi) GetLeagues(ctx context.Context, summonerId SummonerId) ([]League, error) {

	data, err := riotapi.Fetch(ctx, fmt.Sprintf(ROUTE_POSITIONS, summonerId))
	if err != nil {
		return nil, fmt.Errorf("leagues for summoner id %d: %w", summonerId, err)
	}

	return UnmarshalLeagues(data)
}

func (riotapi *RiotApi) GetChampion(ctx context.Context, championId ChampionId) (Champion, error) {

	data, err := riotapi.Fetch(ctx, fmt.Sprintf(ROUTE_CHAMPION, championId))
	if err != nil {
		return Champion{}, fmt.Errorf("champion id %d: %w", championId, err)
	}

	return UnmarshalChampion(data)
}

func (riotapi *RiotApi) GetMaps(ctx context.Context) ([]MapInfo, error) {

	data, err := riotapi.Fetch(ctx, ROUTE_MAPS)
	if err != nil {
		return nil, fmt.Errorf("maps: %w", err)
	}

	return UnmarshalMaps(data)
}

// Request a path of the API and return the body of a successful answer.
// 404 is reported as ErrNotFound, any other non 2xx status as a StatusError
func (riotapi *RiotApi) Fetch(ctx context.Context, path string) ([]byte, error) {

	response, err := riotapi.proxy.Request(ctx, riotapi.baseUrl+path)
	if err != nil {
		return nil, err
	}

	switch {
	case response.StatusCode == common.DATA_NOT_FOUND:
		return nil, ErrNotFound
	case response.StatusCode < 200 || response.StatusCode > 299:
		log.Warn().Msgf("Unexpected status %d for path %s", response.StatusCode, path)
		return nil, &StatusError{StatusCode: response.StatusCode, Url: path}
	default:
		return response.Body, nil
	}
}
