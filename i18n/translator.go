package i18n

import "strings"

// Translator retrieves localized messages for validation codes.
// data provides optional values to embed in the message (for example,
// "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "mapping_property":
			msg = "プロパティ {field} の値にマッピングは使用できません"
		case "mapping_in_sequence":
			msg = "プロパティ {field} のシーケンス要素にマッピングは使用できません"
		}
	default: // "en"
		switch code {
		case "mapping_property":
			msg = "property {field} cannot hold a mapping"
		case "mapping_in_sequence":
			msg = "sequence elements of property {field} cannot be mappings"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand replaces {name} placeholders with data values. Unknown
// placeholders are left as they are.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
