package state

import (
	"time"

	"cssprop/config"
	"cssprop/properties"
	"cssprop/style"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:   time.Now(),
		Factory: properties.NewFactory(),
	}
}

// NewDeclaration creates empty declaration block configured according to
// loaded configuration. longhands forces longhand output regardless of
// configuration.
func (e *LocalEnv) NewDeclaration(longhands bool) *style.Declaration {
	var opts []style.Option
	if cfg := e.Cfg; cfg != nil {
		if !cfg.Style.PreferShorthands {
			opts = append(opts, style.WithLonghandsOnly())
		}
		if cfg.Style.Order == config.OutputOrderNatural {
			opts = append(opts, style.WithNaturalOrder())
		}
		if len(cfg.Style.Separator) > 0 {
			opts = append(opts, style.WithSeparator(cfg.Style.Separator))
		}
	}
	if longhands {
		opts = append(opts, style.WithLonghandsOnly())
	}
	return style.NewDeclaration(e.Factory, e.Log, opts...)
}
