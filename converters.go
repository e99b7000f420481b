package folio

import (
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
	"github.com/kailas-cloud/folio/internal/domain/search/result"
)

func fromInternalSpeechSearch(r result.SpeechSearch) SpeechSearchResult {
	return SpeechSearchResult{
		Play:       fromInternalPlay(r.Play()),
		Characters: convertAll(r.Characters(), fromInternalCharacter),
		Acts:       convertAll(r.Acts(), fromInternalAct),
		Scenes:     convertAll(r.Scenes(), fromInternalScene),
		Speeches:   convertAll(r.Speeches(), fromInternalSpeech),
		Found:      r.Found(),
		Page:       r.Page(),
		TotalPages: r.TotalPages(),
	}
}

func convertAll[D any, P any](in []D, conv func(D) P) []P {
	out := make([]P, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}
	return out
}

func fromInternalPlay(p domcat.Play) Play {
	return Play{
		ID:               p.ID(),
		Title:            p.Title(),
		Subtitle:         p.Subtitle(),
		FrontMatter:      p.FrontMatter(),
		SceneDescription: p.SceneDescription(),
	}
}

func fromInternalCharacter(c domcat.Character) Character {
	return Character{
		ID:                    c.ID(),
		PlayID:                c.PlayID(),
		Name:                  c.Name(),
		GroupDescription:      c.GroupDescription(),
		IndividualDescription: c.IndividualDescription(),
	}
}

func fromInternalAct(a domcat.Act) Act {
	return Act{ID: a.ID(), PlayID: a.PlayID(), Title: a.Title()}
}

func fromInternalScene(s domcat.Scene) Scene {
	return Scene{ID: s.ID(), ActID: s.ActID(), PlayID: s.PlayID(), Title: s.Title()}
}

func fromInternalSpeech(s domcat.Speech) Speech {
	return Speech{ID: s.ID(), SceneID: s.SceneID(), Speaker: s.Speaker(), Content: s.Content()}
}

func fromInternalCollection(col domcol.Collection) Collection {
	fields := make([]Field, len(col.Fields()))
	for i, f := range col.Fields() {
		fields[i] = Field{Name: f.Name(), Type: string(f.FieldType())}
	}
	return Collection{
		Name:          col.Name(),
		Fields:        fields,
		DocumentCount: col.DocumentCount(),
	}
}
