package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/folio/internal/db"
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
)

// Document shapes as stored in the remote collections.

type playRow struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subtitle         string `json:"playsubt"`
	FrontMatter      string `json:"fm"`
	SceneDescription string `json:"scndescr"`
}

type characterRow struct {
	ID                    string `json:"id"`
	PlayID                string `json:"play_id"`
	Name                  string `json:"name"`
	GroupDescription      string `json:"group_description"`
	IndividualDescription string `json:"individual_description"`
}

type actRow struct {
	ID     string `json:"id"`
	PlayID string `json:"play_id"`
	Title  string `json:"title"`
}

type sceneRow struct {
	ID     string `json:"id"`
	ActID  string `json:"act_id"`
	PlayID string `json:"play_id"`
	Title  string `json:"title"`
}

type speechRow struct {
	ID      string `json:"id"`
	SceneID string `json:"scene_id"`
	Speaker string `json:"speaker"`
	Content string `json:"content"`
}

func (r playRow) toDomain() domcat.Play {
	return domcat.NewPlay(r.ID, r.Title, r.Subtitle, r.FrontMatter, r.SceneDescription)
}

func (r characterRow) toDomain() domcat.Character {
	return domcat.NewCharacter(r.ID, r.PlayID, r.Name, r.GroupDescription, r.IndividualDescription)
}

func (r actRow) toDomain() domcat.Act { return domcat.NewAct(r.ID, r.PlayID, r.Title) }

func (r sceneRow) toDomain() domcat.Scene { return domcat.NewScene(r.ID, r.ActID, r.PlayID, r.Title) }

func (r speechRow) toDomain() domcat.Speech {
	return domcat.NewSpeech(r.ID, r.SceneID, r.Speaker, r.Content)
}

// decodeHits unmarshals every hit document into R and converts it with conv.
func decodeHits[R any, D any](hits []db.Hit, conv func(R) D) ([]D, error) {
	out := make([]D, 0, len(hits))
	for i, h := range hits {
		var row R
		if err := json.Unmarshal(h.Document, &row); err != nil {
			return nil, fmt.Errorf("decode hit %d: %w", i, err)
		}
		out = append(out, conv(row))
	}
	return out, nil
}
