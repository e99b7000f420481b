package folio

// Work is a play listed by id and title.
type Work struct {
	ID    string
	Title string
}

// Play is a play record.
type Play struct {
	ID               string
	Title            string
	Subtitle         string
	FrontMatter      string
	SceneDescription string
}

// Character is a person in a play.
type Character struct {
	ID                    string
	PlayID                string
	Name                  string
	GroupDescription      string
	IndividualDescription string
}

// Act is a division of a play.
type Act struct {
	ID     string
	PlayID string
	Title  string
}

// Scene is a division of an act.
type Scene struct {
	ID     string
	ActID  string
	PlayID string
	Title  string
}

// Speech is one speaker's text within a scene.
type Speech struct {
	ID      string
	SceneID string
	Speaker string
	Content string
}

// SpeechSearchResult is a page of speeches together with the structure of the play they belong to.
type SpeechSearchResult struct {
	Play       Play
	Characters []Character
	Acts       []Act
	Scenes     []Scene
	Speeches   []Speech
	Found      int // total matches across all pages
	Page       int
	TotalPages int
}

// Collection is the metadata of a search index collection.
type Collection struct {
	Name          string
	Fields        []Field
	DocumentCount int64
}

// Field is a collection schema field.
type Field struct {
	Name string
	Type string
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "error"
	Checks map[string]string // component → "ok"/"error"
}
