// Package catalog addresses the per-user game lists on databaze-her.cz.
package catalog

import (
	"fmt"
	"net/url"
)

// DefaultDomain is the catalog host the lists live on.
const DefaultDomain = "www.databaze-her.cz"

// List is one game-status listing on the catalog site. Query carries the
// fixed parameters of the saved-page workflow verbatim, including the "?&"
// oddity in the want-to-play listing that dh-hltb.py documents.
type List struct {
	// Label is the Czech list name as shown on the site.
	Label string
	// Slug is the path segment addressing the list.
	Slug string
	// Query is the full query string, question mark included.
	Query string
}

var (
	// WantToPlay is the "Chci si zahrát" listing, sorted by user rating.
	WantToPlay = List{
		Label: "Chci si zahrát",
		Slug:  "chci-si-zahrat",
		Query: "?&razeni=3&styl=seznam&stranka=vse",
	}

	// Completed is the "Dohráno" listing, sorted by completion date.
	Completed = List{
		Label: "Dohráno",
		Slug:  "dohrane",
		Query: "?razeni=6&styl=seznam&stranka=vse",
	}
)

// Lists returns both listings in the order dh-hltb.py expects the saved
// pages: want-to-play first, completed second.
func Lists() []List {
	return []List{WantToPlay, Completed}
}

// URL builds the listing address for nickname on domain. The nickname is
// percent-encoded so that unusual handles still produce a valid URL.
func (l List) URL(domain, nickname string) string {
	return fmt.Sprintf("https://%s/uzivatele/%s/hry/%s/%s",
		domain, url.PathEscape(nickname), l.Slug, l.Query)
}
