package dhopen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparal/dh-open/internal/dhopen/conf"
)

// recorder is a fake Opener that remembers every requested URL.
type recorder struct {
	urls []string
	err  error
}

func (r *recorder) Open(url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

func TestOpenLists(t *testing.T) {
	rec := &recorder{}

	NewService(conf.Default(), rec).OpenLists("kparal")

	require.Len(t, rec.urls, 2)
	assert.Equal(t,
		"https://www.databaze-her.cz/uzivatele/kparal/hry/chci-si-zahrat/?&razeni=3&styl=seznam&stranka=vse",
		rec.urls[0])
	assert.Equal(t,
		"https://www.databaze-her.cz/uzivatele/kparal/hry/dohrane/?razeni=6&styl=seznam&stranka=vse",
		rec.urls[1])
}

func TestOpenLists_CustomDomain(t *testing.T) {
	rec := &recorder{}
	cfg := &conf.Config{Domain: "dh.example.org"}

	NewService(cfg, rec).OpenLists("kparal")

	require.Len(t, rec.urls, 2)
	assert.Contains(t, rec.urls[0], "https://dh.example.org/uzivatele/kparal/")
}

func TestOpenLists_ContinuesAfterFailure(t *testing.T) {
	rec := &recorder{err: errors.New("no handler registered")}

	NewService(conf.Default(), rec).OpenLists("kparal")

	assert.Len(t, rec.urls, 2)
}

func TestOpenerFunc(t *testing.T) {
	var got string
	f := OpenerFunc(func(url string) error {
		got = url
		return nil
	})

	err := f.Open("https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)
}
