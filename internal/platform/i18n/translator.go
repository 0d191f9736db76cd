package i18n

import (
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
)

// CountParam is the placeholder bound to the plural {0} slot
const CountParam = "%count%"

// Translator resolves messages for one locale
// A missing domain or key resolves to the key itself and is logged at warn
type Translator struct {
	cat    *Catalog
	locale string
}

// Locale returns the locale this translator renders
func (t *Translator) Locale() string { return t.locale }

// TransChoice selects the cardinal plural form of key for count, fills {0}
// with params[CountParam] (or count) and replaces any other %name% params
func (t *Translator) TransChoice(key string, count int, params map[string]string, domain string) string {
	tr, ok := t.translator(domain, key)
	if !ok {
		return key
	}
	val, ok := params[CountParam]
	if !ok {
		val = strconv.Itoa(count)
	}
	out, ok := t.render(domain, key, func() (string, error) { return tr.C(key, float64(count), 0, val) })
	if !ok {
		return key
	}
	return replace(out, params)
}

// Trans resolves a message without plural forms and replaces %name% params
func (t *Translator) Trans(key string, params map[string]string, domain string) string {
	tr, ok := t.translator(domain, key)
	if !ok {
		return key
	}
	out, ok := t.render(domain, key, func() (string, error) { return tr.T(key) })
	if !ok {
		return key
	}
	return replace(out, params)
}

func (t *Translator) translator(domain, key string) (ut.Translator, bool) {
	uni, ok := t.cat.domain(domain, false)
	if !ok {
		t.cat.log.Warn().Str("domain", domain).Str("locale", t.locale).Str("key", key).Msg("unknown translation domain")
		return nil, false
	}
	tr, _ := uni.GetTranslator(t.locale)
	return tr, true
}

// render runs fn and turns both errors and universal-translator panics
// (a plural form or positional param that the message does not define) into a miss
func (t *Translator) render(domain, key string, fn func() (string, error)) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t.cat.log.Error().Str("domain", domain).Str("locale", t.locale).Str("key", key).
				Interface("panic", r).Msg("malformed translation")
			out, ok = "", false
		}
	}()
	s, err := fn()
	if err != nil {
		t.cat.log.Warn().Err(err).Str("domain", domain).Str("locale", t.locale).Str("key", key).Msg("missing translation")
		return "", false
	}
	return s, true
}

func replace(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "%") {
		return s
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
