// Package i18n holds the showcase's user-facing strings that are not part of the content
// catalogue: announcements, chat chrome and failure text, and the fallback screen.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var messageFiles embed.FS

// Data is passed to message templates.
type Data map[string]any

// Localizer resolves message ids for one locale, falling back to English.
type Localizer struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

var (
	bundleOnce sync.Once
	bundle     *goi18n.Bundle
	bundleErr  error
)

func loadBundle() (*goi18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := goi18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := messageFiles.ReadDir(".")
		if err != nil {
			bundleErr = fmt.Errorf("i18n: list message files: %w", err)
			return
		}
		for _, e := range entries {
			if _, err := b.LoadMessageFileFS(messageFiles, e.Name()); err != nil {
				bundleErr = fmt.Errorf("i18n: load %s: %w", e.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// New returns a localizer for the given BCP 47 tags, most preferred first.
func New(langs ...string) (*Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if len(langs) > 0 {
		matcher := language.NewMatcher(b.LanguageTags())
		if t, _, conf := matcher.Match(parseTags(langs)...); conf != language.No {
			tag = t
		}
	}

	return &Localizer{
		localizer: goi18n.NewLocalizer(b, append(langs, language.English.String())...),
		tag:       tag,
	}, nil
}

// Must is New for callers that cannot continue without strings.
func Must(langs ...string) *Localizer {
	l, err := New(langs...)
	if err != nil {
		panic(err)
	}
	return l
}

// Language is the best supported match for the requested locales.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T renders the message with the given id. Unknown ids render as the id itself so a missing
// translation is visible without taking the screen down.
func (l *Localizer) T(id string, data Data) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]any(data),
	})
	if err != nil {
		return id
	}
	return msg
}

func parseTags(langs []string) []language.Tag {
	tags := make([]language.Tag, 0, len(langs))
	for _, s := range langs {
		if t, err := language.Parse(s); err == nil {
			tags = append(tags, t)
		}
	}
	return tags
}
