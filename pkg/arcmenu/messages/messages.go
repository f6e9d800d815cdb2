// Package messages holds the user-facing strings hosts show around an arc
// menu, such as the selection toast, in every bundled language.
package messages

import (
	"embed"
	"fmt"
	"path"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	ItemSelected = "ItemSelected"
	MenuOpened   = "MenuOpened"
	MenuClosed   = "MenuClosed"
	ItemCount    = "ItemCount"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog localizes messages for one preferred language.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New builds a catalog for locale, a BCP 47 tag or Accept-Language list
// such as "zh-CN" or "fr, en;q=0.8". Unsupported or empty locales fall back
// to English.
func New(locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("messages: %w", err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("messages: %s: %w", name, err)
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, locale),
		tag:       language.Make(base.String()),
	}, nil
}

// Language is the bundled language messages resolve to.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Supported lists the bundled languages.
func (c *Catalog) Supported() []language.Tag {
	return c.bundle.LanguageTags()
}

// Localize renders id with data. A missing message renders as its ID so a
// host never shows an empty toast.
func (c *Catalog) Localize(id string, data map[string]any) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Selected is the toast text for the item at 1-based position.
func (c *Catalog) Selected(position int, label string) string {
	return c.Localize(ItemSelected, map[string]any{"Position": position, "Label": label})
}

// Items describes an arc of n items, pluralized.
func (c *Catalog) Items(n int) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    ItemCount,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
}

func (c *Catalog) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := c.localizer.Localize(cfg)
	if err != nil {
		logging.GetInternalLogger().Warn("Missing translation", "id", cfg.MessageID, "language", c.tag.String(), "error", err)
		if msg != "" {
			return msg
		}
		return cfg.MessageID
	}
	return msg
}
