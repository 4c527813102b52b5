// Package i18n localizes the fixed strings of the overlay screens.
//
// The English and Spanish message files are embedded and loaded at init, so
// Localize works without any setup. Hosts can replace the bundle with their
// own message files and pick the language from configuration.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func init() {
	files, err := EmbeddedMessageFiles()
	if err == nil {
		err = InitI18NFromBytes(files)
	}
	if err != nil {
		panic(fmt.Sprintf("i18n: load embedded messages: %v", err))
	}
}

// EmbeddedMessageFiles returns the message files compiled into the package.
func EmbeddedMessageFiles() ([]MessageFile, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	files := make([]MessageFile, 0, len(entries))
	for _, e := range entries {
		content, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, MessageFile{Name: e.Name(), Content: content})
	}
	return files, nil
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// InitI18N loads message files from disk, replacing the active bundle.
func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	localizer := i18n.NewLocalizer(bundle, language.English.String())

	i = &I18N{localizer: localizer, bundle: bundle}

	return nil
}

// InitI18NFromBytes loads in-memory message files, replacing the active bundle.
// Each Name must carry the language tag and format, as in "active.es.toml".
func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	localizer := i18n.NewLocalizer(bundle, language.English.String())

	i = &I18N{localizer: localizer, bundle: bundle}

	return nil
}

func SetLanguage(lang language.Tag) {
	localizer := i18n.NewLocalizer(i.bundle, lang.String())

	i = &I18N{localizer: localizer, bundle: i.bundle}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize retrieves a localized string using the go-i18n struct pattern.
// The message provides the ID and the English fallback text.
//
//	i18n.Localize(&i18n.Message{
//	    ID:    "menu_close",
//	    Other: "Close Menu",
//	}, nil)
func Localize(message *Message, templateData map[string]any) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := i.localizer.Localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}

// LocalizePlural retrieves a localized string with plural support. count
// picks the plural form and is also available to the template as .Count.
func LocalizePlural(message *Message, count int, templateData map[string]any) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	data := map[string]any{"Count": count}
	for k, v := range templateData {
		data[k] = v
	}

	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		PluralCount:    count,
		TemplateData:   data,
	})
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}
