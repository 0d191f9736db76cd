// Package i18n provides the message catalog behind localized relative-time
// phrases. Messages live in named domains ("time"), each backed by a
// universal-translator over the supported CLDR locales so plural forms follow
// the locale's cardinal rules.
package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	perr "reltime/internal/platform/errors"
	"reltime/internal/platform/logger"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

//go:embed catalogs/*.json
var embedded embed.FS

// Catalog holds translations per domain for a fixed set of locales
// Load everything at startup; lookups after that are read-only
type Catalog struct {
	mu       sync.RWMutex
	domains  map[string]*ut.UniversalTranslator
	locales  []locales.Translator
	names    []string // lowercase locale names, fallback first
	matcher  language.Matcher
	log      *logger.Logger
	override bool
	fallback string
}

// Builtin lists the locales the embedded catalogs cover, default fallback first
var Builtin = []string{"en", "fr", "de"}

// Option configures a Catalog
type Option func(*Catalog)

// WithLocales sets the supported locales; the first one is the fallback
func WithLocales(fallback locales.Translator, more ...locales.Translator) Option {
	return func(c *Catalog) {
		c.locales = append([]locales.Translator{fallback}, more...)
	}
}

// WithLogger sets the logger used for missing translations
func WithLogger(l *logger.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFallback promotes a configured locale to fallback; unknown names are ignored
func WithFallback(name string) Option {
	return func(c *Catalog) { c.fallback = strings.ToLower(strings.TrimSpace(name)) }
}

// WithOverride lets later imports replace existing messages
func WithOverride(on bool) Option {
	return func(c *Catalog) { c.override = on }
}

// NewCatalog builds an empty catalog for en (fallback), fr and de unless
// WithLocales says otherwise
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		domains: make(map[string]*ut.UniversalTranslator),
		locales: []locales.Translator{en.New(), fr.New(), de.New()},
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = logger.Named("i18n")
	}
	for i, l := range c.locales {
		if i > 0 && strings.ToLower(l.Locale()) == c.fallback {
			rest := append([]locales.Translator{l}, c.locales[:i]...)
			c.locales = append(rest, c.locales[i+1:]...)
			break
		}
	}

	tags := make([]language.Tag, 0, len(c.locales))
	seen := make(map[string]bool, len(c.locales))
	uniq := c.locales[:0:0]
	for _, l := range c.locales {
		name := strings.ToLower(l.Locale())
		if seen[name] {
			continue
		}
		seen[name] = true
		uniq = append(uniq, l)
		c.names = append(c.names, name)
		tags = append(tags, language.Make(name))
	}
	c.locales = uniq
	c.matcher = language.NewMatcher(tags)
	return c
}

// Default returns a verified catalog preloaded with the embedded domains
func Default(opts ...Option) (*Catalog, error) {
	c := NewCatalog(opts...)
	if err := c.LoadEmbedded(); err != nil {
		return nil, err
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// Locales returns the supported locale names, fallback first
func (c *Catalog) Locales() []string { return append([]string(nil), c.names...) }

// Fallback returns the fallback locale name
func (c *Catalog) Fallback() string { return c.names[0] }

// Domains returns the loaded domain names in sorted order
func (c *Catalog) Domains() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.domains))
	for d := range c.domains {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// domain returns the translator set for name, creating it when create is set
func (c *Catalog) domain(name string, create bool) (*ut.UniversalTranslator, bool) {
	c.mu.RLock()
	uni, ok := c.domains[name]
	c.mu.RUnlock()
	if ok || !create {
		return uni, ok
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if uni, ok = c.domains[name]; ok {
		return uni, true
	}
	uni = ut.New(c.locales[0], c.locales...)
	c.domains[name] = uni
	return uni, true
}

// Import reads universal-translator JSON (an array of
// {locale,key,trans,type,rule,override}) into domain
func (c *Catalog) Import(domain string, r io.Reader) error {
	if domain == "" {
		return perr.InvalidArgf("catalog domain is required")
	}
	uni, _ := c.domain(domain, true)
	if c.override {
		b, err := io.ReadAll(r)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "read catalog %s", domain)
		}
		if b, err = forceOverride(b); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "import catalog %s", domain)
		}
		r = bytes.NewReader(b)
	}
	if err := uni.ImportByReader(ut.FormatJSON, r); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "import catalog %s", domain)
	}
	return nil
}

// ImportFS imports every <domain>.<locale>.json file found under root in fsys
func (c *Catalog) ImportFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}
		domain, _, ok := strings.Cut(path.Base(p), ".")
		if !ok || domain == "" {
			return nil
		}
		f, err := fsys.Open(p)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "open catalog %s", p)
		}
		defer f.Close()

		c.log.Debug().Str("file", p).Str("domain", domain).Msg("importing catalog")
		return c.Import(domain, f)
	})
}

// ImportDir imports catalog files from a directory on disk
func (c *Catalog) ImportDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNotFound, "catalog dir %s", dir)
	}
	return c.ImportFS(os.DirFS(dir), ".")
}

// LoadEmbedded imports the catalogs compiled into the binary
func (c *Catalog) LoadEmbedded() error {
	return c.ImportFS(embedded, "catalogs")
}

// Verify checks that every plural message has all forms its locale needs
func (c *Catalog) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, uni := range c.domains {
		if err := uni.VerifyTranslations(); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "catalog %s is incomplete", name)
		}
	}
	return nil
}

// Match negotiates the best supported locale for Accept-Language style
// inputs ("fr-CH, fr;q=0.9, en;q=0.8" or plain "de"); the fallback wins when
// nothing matches
func (c *Catalog) Match(accept ...string) string {
	var tags []language.Tag
	for _, a := range accept {
		if strings.TrimSpace(a) == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(a)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return c.Fallback()
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.Fallback()
	}
	return c.names[idx]
}

// For returns a translator bound to locale; unknown locales use the fallback
func (c *Catalog) For(locale string) *Translator {
	name := strings.ToLower(strings.TrimSpace(locale))
	for _, n := range c.names {
		if n == name {
			return &Translator{cat: c, locale: n}
		}
	}
	return &Translator{cat: c, locale: c.Match(locale)}
}

// forceOverride marks every entry of a catalog document as overriding
func forceOverride(doc []byte) ([]byte, error) {
	var entries []map[string]any
	if err := json.Unmarshal(doc, &entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		e["override"] = true
	}
	return json.Marshal(entries)
}
