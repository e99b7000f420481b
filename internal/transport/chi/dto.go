package chi

import (
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
	"github.com/kailas-cloud/folio/internal/domain/search/result"
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeNotFound          ErrorCode = "not_found"
	CodePageLimitExceeded ErrorCode = "page_limit_exceeded"
	CodeUpstreamError     ErrorCode = "upstream_error"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ListResponse wraps a list of items.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// WorkResponse is a play listed by id and title.
type WorkResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PlayResponse is a play record.
type PlayResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle,omitempty"`
	FrontMatter      string `json:"front_matter,omitempty"`
	SceneDescription string `json:"scene_description,omitempty"`
}

// CharacterResponse is a person in a play.
type CharacterResponse struct {
	ID                    string `json:"id"`
	PlayID                string `json:"play_id"`
	Name                  string `json:"name"`
	GroupDescription      string `json:"group_description,omitempty"`
	IndividualDescription string `json:"individual_description,omitempty"`
}

// ActResponse is a division of a play.
type ActResponse struct {
	ID     string `json:"id"`
	PlayID string `json:"play_id"`
	Title  string `json:"title"`
}

// SceneResponse is a division of an act.
type SceneResponse struct {
	ID     string `json:"id"`
	ActID  string `json:"act_id"`
	PlayID string `json:"play_id"`
	Title  string `json:"title"`
}

// SpeechResponse is one speaker's text within a scene.
type SpeechResponse struct {
	ID      string `json:"id"`
	SceneID string `json:"scene_id"`
	Speaker string `json:"speaker"`
	Content string `json:"content"`
}

// SpeechSearchResponse is the body of GET /plays/{playID}/speeches.
type SpeechSearchResponse struct {
	Play       PlayResponse        `json:"play"`
	Characters []CharacterResponse `json:"characters"`
	Acts       []ActResponse       `json:"acts"`
	Scenes     []SceneResponse     `json:"scenes"`
	Speeches   []SpeechResponse    `json:"speeches"`
	Found      int                 `json:"found"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
}

// FieldResponse is a collection schema field.
type FieldResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CollectionResponse is a collection's schema and size.
type CollectionResponse struct {
	Name         string          `json:"name"`
	Fields       []FieldResponse `json:"fields"`
	NumDocuments int64           `json:"num_documents"`
}

func speechSearchToResponse(r result.SpeechSearch) SpeechSearchResponse {
	p := r.Play()
	return SpeechSearchResponse{
		Play: PlayResponse{
			ID:               p.ID(),
			Title:            p.Title(),
			Subtitle:         p.Subtitle(),
			FrontMatter:      p.FrontMatter(),
			SceneDescription: p.SceneDescription(),
		},
		Characters: mapSlice(r.Characters(), func(c domcat.Character) CharacterResponse {
			return CharacterResponse{
				ID:                    c.ID(),
				PlayID:                c.PlayID(),
				Name:                  c.Name(),
				GroupDescription:      c.GroupDescription(),
				IndividualDescription: c.IndividualDescription(),
			}
		}),
		Acts: mapSlice(r.Acts(), func(a domcat.Act) ActResponse {
			return ActResponse{ID: a.ID(), PlayID: a.PlayID(), Title: a.Title()}
		}),
		Scenes: mapSlice(r.Scenes(), func(s domcat.Scene) SceneResponse {
			return SceneResponse{ID: s.ID(), ActID: s.ActID(), PlayID: s.PlayID(), Title: s.Title()}
		}),
		Speeches: mapSlice(r.Speeches(), func(s domcat.Speech) SpeechResponse {
			return SpeechResponse{ID: s.ID(), SceneID: s.SceneID(), Speaker: s.Speaker(), Content: s.Content()}
		}),
		Found:      r.Found(),
		Page:       r.Page(),
		TotalPages: r.TotalPages(),
	}
}

func collectionToResponse(c domcol.Collection) CollectionResponse {
	fields := make([]FieldResponse, len(c.Fields()))
	for i, f := range c.Fields() {
		fields[i] = FieldResponse{Name: f.Name(), Type: string(f.FieldType())}
	}
	return CollectionResponse{
		Name:         c.Name(),
		Fields:       fields,
		NumDocuments: c.DocumentCount(),
	}
}

// mapSlice never returns nil so empty lists encode as [].
func mapSlice[D any, R any](in []D, conv func(D) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}
	return out
}
