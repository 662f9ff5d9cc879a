// Package dhopen opens a user's game lists from databaze-her.cz in the
// browser, so they can be saved and handed to dh-hltb.py.
package dhopen

import (
	"github.com/rs/zerolog/log"

	"github.com/kparal/dh-open/internal/catalog"
	"github.com/kparal/dh-open/internal/dhopen/conf"
)

// Opener opens a URL in the user's preferred viewer.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// Service issues the open requests for one nickname.
type Service struct {
	conf   *conf.Config
	opener Opener
}

func NewService(conf *conf.Config, opener Opener) *Service {
	return &Service{conf: conf, opener: opener}
}

// OpenLists requests one browser tab per catalog list, want-to-play first.
// The requests are fire-and-forget: a failed request is logged and the next
// one is still issued, like two open calls in a row in a shell.
func (s *Service) OpenLists(nickname string) {
	for _, list := range catalog.Lists() {
		u := list.URL(s.conf.Domain, nickname)
		log.Debug().Str("list", list.Label).Str("url", u).Msg("Opening browser tab")
		if err := s.opener.Open(u); err != nil {
			log.Warn().Err(err).Str("url", u).Msg("Failed to open browser tab")
		}
	}
}
