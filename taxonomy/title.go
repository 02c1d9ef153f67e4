package taxonomy

import (
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title returns a display title for a category name, e.g.
// "smiling_and_affectionate" → "Smiling And Affectionate".
// Casing follows the rules of language lang.
// Unknown category names result in ErrNotFound.
func (tax *Taxonomy) Title(name string, lang language.Tag) (string, error) {
	if !tax.CategoryExists(name) {
		return "", notFound(name)
	}
	return cases.Title(lang).String(strings.ReplaceAll(name, "_", " ")), nil
}

// LanguageFromEnvironment detects the user's language from the environment.
// If detection fails, American English is assumed.
func LanguageFromEnvironment() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		userLocale = "en-US"
		tracer().Infof("emoji taxonomy sets default user locale %v", userLocale)
	} else {
		tracer().Debugf("emoji taxonomy detected user locale %v", userLocale)
	}
	return language.Make(userLocale)
}
