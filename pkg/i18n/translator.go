package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "es"

// Translator serves lookups from a catalog loaded once at construction.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger

	// codes[i] is the catalog key behind matcher tag i.
	codes   []string
	matcher language.Matcher
}

func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, entries := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilLanguageMap, lang)
		}
	}

	t.translations = translations
	t.buildMatcher()
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// buildMatcher puts the default language first so it wins when nothing matches.
func (t *Translator) buildMatcher() {
	var tags []language.Tag
	add := func(code string) {
		tag, err := language.Parse(code)
		if err != nil {
			t.logger.Warn("skipping unparseable language code", "lang", code, "error", err)
			return
		}
		tags = append(tags, tag)
		t.codes = append(t.codes, code)
	}

	if _, ok := t.translations[t.defaultLang]; ok {
		add(t.defaultLang)
	}
	for _, code := range t.SupportedLanguages() {
		if code != t.defaultLang {
			add(code)
		}
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// SupportedLanguages returns the catalog languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the catalog language that best serves a BCP 47 tag or an
// Accept-Language style list ("es-CO", "en-US,en;q=0.8"). It returns the
// default language when nothing matches.
func (t *Translator) Match(preferred string) string {
	if t.matcher == nil || strings.TrimSpace(preferred) == "" {
		return t.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.codes[idx]
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

// T translates key for lang, returning the key itself when it is missing.
// Extra args are key/value pairs for "%{name}" placeholders.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Td translates key for lang, returning defaultValue when it is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	langMap, ok := t.translations[lang]
	if !ok {
		t.logMissing("language not supported", lang, key)
		return substitute(defaultValue, args)
	}

	val, ok := lookup(langMap, key)
	if !ok {
		t.logMissing("translation not found", lang, key)
		return substitute(defaultValue, args)
	}

	s, ok := val.(string)
	if !ok {
		t.logMissing("translation is not a string", lang, key)
		return substitute(defaultValue, args)
	}
	return substitute(s, args)
}

func (t *Translator) logMissing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, "lang", lang, "key", key)
	}
}

// lookup walks m along the dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute fills "%{name}" placeholders; unknown names are left in place.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
