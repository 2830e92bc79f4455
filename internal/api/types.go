package api

import "encoding/json"

// listEnvelope is the paginated response wrapper used by the Dragon Ball API
// list endpoints. Items are decoded per kind after the envelope.
type listEnvelope struct {
	Items []json.RawMessage `json:"items"`
	Meta  pageMeta          `json:"meta"`
	Links pageLinks         `json:"links"`
}

// pageMeta carries the upstream pagination counters. CurrentPage is 1-based.
type pageMeta struct {
	TotalItems   int `json:"totalItems"`
	ItemCount    int `json:"itemCount"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
}

type pageLinks struct {
	First    string `json:"first"`
	Previous string `json:"previous"`
	Next     string `json:"next"`
	Last     string `json:"last"`
}

// characterPayload is a character as returned by /characters and
// /characters/{id}. The detail endpoint additionally populates
// OriginPlanet and Transformations.
type characterPayload struct {
	ID              int                     `json:"id"`
	Name            string                  `json:"name"`
	Ki              string                  `json:"ki"`
	MaxKi           string                  `json:"maxKi"`
	Race            string                  `json:"race"`
	Gender          string                  `json:"gender"`
	Description     string                  `json:"description"`
	Image           string                  `json:"image"`
	Affiliation     string                  `json:"affiliation"`
	OriginPlanet    *planetPayload          `json:"originPlanet"`
	Transformations []transformationPayload `json:"transformations"`
}

type transformationPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Ki          string `json:"ki"`
	CharacterID int    `json:"characterId"`
}

type planetPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsDestroyed bool   `json:"isDestroyed"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type sagaPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Chapters    []int  `json:"chapters"`
}

type episodePayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Chapter     int    `json:"chapter"`
	Saga        string `json:"saga"`
}
