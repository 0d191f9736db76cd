package i18n

import "reltime/internal/platform/config"

// FromConfig builds a verified catalog from DEFAULT_LOCALE and CATALOG_DIR
// Files under CATALOG_DIR replace embedded messages with the same key
func FromConfig(cfg config.Conf, opts ...Option) (*Catalog, error) {
	fallback := cfg.MayEnum("DEFAULT_LOCALE", Builtin[0], Builtin...)
	dir := cfg.MayString("CATALOG_DIR", "")

	opts = append([]Option{WithFallback(fallback), WithOverride(dir != "")}, opts...)
	c := NewCatalog(opts...)
	if err := c.LoadEmbedded(); err != nil {
		return nil, err
	}
	if dir != "" {
		if err := c.ImportDir(dir); err != nil {
			return nil, err
		}
		c.log.Info().Str("dir", dir).Strs("domains", c.Domains()).Msg("catalog overrides loaded")
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}
