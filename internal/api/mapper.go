package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/waylonwalker/senzu/internal/resource"
)

// decodeSummary decodes one list item of the given kind into a Summary row.
func decodeSummary(kind resource.Kind, raw json.RawMessage) (resource.Summary, error) {
	switch kind {
	case resource.Character:
		var p characterPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return resource.Summary{}, err
		}
		return resource.Summary{
			Ref:    resource.Ref{Kind: kind, ID: p.ID},
			Name:   p.Name,
			Detail: fmt.Sprintf("%s · %s", p.Race, p.Affiliation),
		}, nil
	case resource.Transformation:
		var p transformationPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return resource.Summary{}, err
		}
		return resource.Summary{
			Ref:    resource.Ref{Kind: kind, ID: p.ID},
			Name:   p.Name,
			Detail: "Ki " + p.Ki,
		}, nil
	case resource.Planet:
		var p planetPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return resource.Summary{}, err
		}
		detail := "intact"
		if p.IsDestroyed {
			detail = "destroyed"
		}
		return resource.Summary{
			Ref:    resource.Ref{Kind: kind, ID: p.ID},
			Name:   p.Name,
			Detail: detail,
		}, nil
	case resource.Saga:
		var p sagaPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return resource.Summary{}, err
		}
		return resource.Summary{
			Ref:    resource.Ref{Kind: kind, ID: p.ID},
			Name:   p.Name,
			Detail: fmt.Sprintf("%d chapters", len(p.Chapters)),
		}, nil
	case resource.Episode:
		var p episodePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return resource.Summary{}, err
		}
		return resource.Summary{
			Ref:    resource.Ref{Kind: kind, ID: p.ID},
			Name:   p.Name,
			Detail: fmt.Sprintf("Ch. %d · %s", p.Chapter, p.Saga),
		}, nil
	}
	return resource.Summary{}, fmt.Errorf("unknown kind %v", kind)
}

// decodeRecord decodes a detail payload of the given kind into a Record.
func decodeRecord(kind resource.Kind, raw json.RawMessage) (*resource.Record, error) {
	switch kind {
	case resource.Character:
		var p characterPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return mapCharacter(&p), nil
	case resource.Transformation:
		var p transformationPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return mapTransformation(&p), nil
	case resource.Planet:
		var p planetPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return mapPlanet(&p), nil
	case resource.Saga:
		var p sagaPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return mapSaga(&p), nil
	case resource.Episode:
		var p episodePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return mapEpisode(&p), nil
	}
	return nil, fmt.Errorf("unknown kind %v", kind)
}

func mapCharacter(p *characterPayload) *resource.Record {
	rec := &resource.Record{
		Ref:  resource.Ref{Kind: resource.Character, ID: p.ID},
		Name: p.Name,
		Fields: []resource.Field{
			{Label: "Race", Value: p.Race},
			{Label: "Gender", Value: p.Gender},
			{Label: "Ki", Value: p.Ki},
			{Label: "Max Ki", Value: p.MaxKi},
			{Label: "Affiliation", Value: p.Affiliation},
			{Label: "Description", Value: p.Description},
			{Label: "Image", Value: p.Image},
		},
	}
	for _, tr := range p.Transformations {
		rec.Relations = append(rec.Relations, resource.Ref{Kind: resource.Transformation, ID: tr.ID})
	}
	if p.OriginPlanet != nil {
		rec.Relations = append(rec.Relations, resource.Ref{Kind: resource.Planet, ID: p.OriginPlanet.ID})
		rec.Fields = append(rec.Fields, resource.Field{Label: "Origin Planet", Value: p.OriginPlanet.Name})
	}
	return rec
}

func mapTransformation(p *transformationPayload) *resource.Record {
	rec := &resource.Record{
		Ref:  resource.Ref{Kind: resource.Transformation, ID: p.ID},
		Name: p.Name,
		Fields: []resource.Field{
			{Label: "Ki", Value: p.Ki},
			{Label: "Image", Value: p.Image},
		},
	}
	if p.CharacterID != 0 {
		rec.Relations = append(rec.Relations, resource.Ref{Kind: resource.Character, ID: p.CharacterID})
		rec.Fields = append(rec.Fields, resource.Field{Label: "Character", Value: strconv.Itoa(p.CharacterID)})
	}
	return rec
}

func mapPlanet(p *planetPayload) *resource.Record {
	destroyed := "no"
	if p.IsDestroyed {
		destroyed = "yes"
	}
	return &resource.Record{
		Ref:  resource.Ref{Kind: resource.Planet, ID: p.ID},
		Name: p.Name,
		Fields: []resource.Field{
			{Label: "Destroyed", Value: destroyed},
			{Label: "Description", Value: p.Description},
			{Label: "Image", Value: p.Image},
		},
	}
}

func mapSaga(p *sagaPayload) *resource.Record {
	chapters := ""
	for i, ch := range p.Chapters {
		if i > 0 {
			chapters += ", "
		}
		chapters += strconv.Itoa(ch)
	}
	return &resource.Record{
		Ref:  resource.Ref{Kind: resource.Saga, ID: p.ID},
		Name: p.Name,
		Fields: []resource.Field{
			{Label: "Chapters", Value: chapters},
			{Label: "Description", Value: p.Description},
			{Label: "Image", Value: p.Image},
		},
	}
}

func mapEpisode(p *episodePayload) *resource.Record {
	return &resource.Record{
		Ref:  resource.Ref{Kind: resource.Episode, ID: p.ID},
		Name: p.Name,
		Fields: []resource.Field{
			{Label: "Chapter", Value: strconv.Itoa(p.Chapter)},
			{Label: "Saga", Value: p.Saga},
			{Label: "Description", Value: p.Description},
		},
	}
}
