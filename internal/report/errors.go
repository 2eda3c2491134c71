package report

import "errors"

var (
	ErrSummonerNotFound = errors.New("summoner not found")
	ErrNotInGame        = errors.New("summoner not currently in game")
	ErrUnranked         = errors.New("summoner not ranked")
	// The report stopped and nothing should be told to the user
	ErrAborted       = errors.New("report aborted")
	ErrRequestFailed = errors.New("could not complete request")
)
