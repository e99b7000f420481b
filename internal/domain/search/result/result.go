package result

import (
	"github.com/kailas-cloud/folio/internal/domain/catalog"
	"github.com/kailas-cloud/folio/internal/domain/search/page"
)

// SpeechSearch is a play joined with its characters, acts, scenes and one page of matching speeches.
type SpeechSearch struct {
	play       catalog.Play
	characters []catalog.Character
	acts       []catalog.Act
	scenes     []catalog.Scene
	speeches   []catalog.Speech
	found      int
	page       int
	totalPages int
}

// NewSpeechSearch assembles a result. totalPages is derived from found and perPage.
func NewSpeechSearch(
	play catalog.Play,
	characters []catalog.Character,
	acts []catalog.Act,
	scenes []catalog.Scene,
	speeches []catalog.Speech,
	found, pageNum, perPage int,
) SpeechSearch {
	return SpeechSearch{
		play:       play,
		characters: characters,
		acts:       acts,
		scenes:     scenes,
		speeches:   speeches,
		found:      found,
		page:       pageNum,
		totalPages: page.TotalPages(found, perPage),
	}
}

func (r SpeechSearch) Play() catalog.Play              { return r.play }
func (r SpeechSearch) Characters() []catalog.Character { return r.characters }
func (r SpeechSearch) Acts() []catalog.Act             { return r.acts }
func (r SpeechSearch) Scenes() []catalog.Scene         { return r.scenes }
func (r SpeechSearch) Speeches() []catalog.Speech      { return r.speeches }

// Found returns the server-side match count, independent of page size.
func (r SpeechSearch) Found() int { return r.found }

// Page returns the requested page number.
func (r SpeechSearch) Page() int { return r.page }

// TotalPages returns ceil(found / perPage).
func (r SpeechSearch) TotalPages() int { return r.totalPages }
