// Package catalog holds the play reference records served by the search index.
//
// Records are immutable snapshots of a single query response. Parent/child
// relations are plain id fields; referential integrity is not checked.
package catalog

// Remote collection names.
const (
	CollectionPlays      = "plays"
	CollectionCharacters = "characters"
	CollectionActs       = "acts"
	CollectionScenes     = "scenes"
	CollectionSpeeches   = "speeches"
)

// Work is the (id, title) projection of a play used for listings.
type Work struct {
	id    string
	title string
}

// NewWork creates a Work.
func NewWork(id, title string) Work { return Work{id: id, title: title} }

// ID returns the play id.
func (w Work) ID() string { return w.id }

// Title returns the play title.
func (w Work) Title() string { return w.title }

// Play is the root record of a play.
type Play struct {
	id               string
	title            string
	subtitle         string
	frontMatter      string
	sceneDescription string
}

// NewPlay creates a Play. Optional attributes may be empty.
func NewPlay(id, title, subtitle, frontMatter, sceneDescription string) Play {
	return Play{
		id:               id,
		title:            title,
		subtitle:         subtitle,
		frontMatter:      frontMatter,
		sceneDescription: sceneDescription,
	}
}

// ID returns the play id.
func (p Play) ID() string { return p.id }

// Title returns the play title.
func (p Play) Title() string { return p.title }

// Subtitle returns the play subtitle.
func (p Play) Subtitle() string { return p.subtitle }

// FrontMatter returns the front matter text.
func (p Play) FrontMatter() string { return p.frontMatter }

// SceneDescription returns the scene description.
func (p Play) SceneDescription() string { return p.sceneDescription }

// Character is a dramatis persona of a play.
type Character struct {
	id                    string
	playID                string
	name                  string
	groupDescription      string
	individualDescription string
}

// NewCharacter creates a Character.
func NewCharacter(id, playID, name, groupDescription, individualDescription string) Character {
	return Character{
		id:                    id,
		playID:                playID,
		name:                  name,
		groupDescription:      groupDescription,
		individualDescription: individualDescription,
	}
}

func (c Character) ID() string                    { return c.id }
func (c Character) PlayID() string                { return c.playID }
func (c Character) Name() string                  { return c.name }
func (c Character) GroupDescription() string      { return c.groupDescription }
func (c Character) IndividualDescription() string { return c.individualDescription }

// Act belongs to a play.
type Act struct {
	id     string
	playID string
	title  string
}

// NewAct creates an Act.
func NewAct(id, playID, title string) Act { return Act{id: id, playID: playID, title: title} }

func (a Act) ID() string     { return a.id }
func (a Act) PlayID() string { return a.playID }
func (a Act) Title() string  { return a.title }

// Scene belongs to an act. PlayID is assumed to match the act's play.
type Scene struct {
	id     string
	actID  string
	playID string
	title  string
}

// NewScene creates a Scene.
func NewScene(id, actID, playID, title string) Scene {
	return Scene{id: id, actID: actID, playID: playID, title: title}
}

func (s Scene) ID() string     { return s.id }
func (s Scene) ActID() string  { return s.actID }
func (s Scene) PlayID() string { return s.playID }
func (s Scene) Title() string  { return s.title }

// Speech is a single speech within a scene.
type Speech struct {
	id      string
	sceneID string
	speaker string
	content string
}

// NewSpeech creates a Speech.
func NewSpeech(id, sceneID, speaker, content string) Speech {
	return Speech{id: id, sceneID: sceneID, speaker: speaker, content: content}
}

func (s Speech) ID() string      { return s.id }
func (s Speech) SceneID() string { return s.sceneID }
func (s Speech) Speaker() string { return s.speaker }
func (s Speech) Content() string { return s.content }

// ActIDs returns the ids of acts in order.
func ActIDs(acts []Act) []string {
	ids := make([]string, len(acts))
	for i, a := range acts {
		ids[i] = a.id
	}
	return ids
}

// SceneIDs returns the ids of scenes in order.
func SceneIDs(scenes []Scene) []string {
	ids := make([]string, len(scenes))
	for i, s := range scenes {
		ids[i] = s.id
	}
	return ids
}
