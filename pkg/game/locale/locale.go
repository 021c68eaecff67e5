// Package locale holds the message catalogs used for terminal output.
// Catalogs are gettext .po files embedded in the binary.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when a requested catalog does not exist
const DefaultLanguage = "en"

//go:embed po/*.po
var catalogs embed.FS

// dynamicGet looks up keys that are not constant format strings.
var dynamicGet = gotext.Get

var (
	active     = load(DefaultLanguage)
	activeLang = DefaultLanguage
)

func load(lang string) *gotext.Po {
	data, err := catalogs.ReadFile(path.Join("po", lang+".po"))
	if err != nil {
		return nil
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Init switches to the catalog for lang and returns the language actually
// in use. Unknown languages fall back to DefaultLanguage.
func Init(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	// en_GB.UTF-8 -> en
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}

	if po := load(lang); po != nil {
		active, activeLang = po, lang
	} else {
		active, activeLang = load(DefaultLanguage), DefaultLanguage
	}
	return activeLang
}

// Languages lists the embedded catalogs
func Languages() []string {
	entries, err := catalogs.ReadDir("po")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Get translates key and formats the message with vars. Keys without a
// translation are returned as-is.
func Get(key string, vars ...interface{}) string {
	lookup := dynamicGet
	if active != nil {
		lookup = active.Get
	}
	msg := lookup(key)
	if len(vars) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, vars...)
}
