package librarylog

import (
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Provider holds the current output strategy and filtering configuration and
// builds loggers from it. Configuration changes apply only to loggers built
// afterwards. The zero Provider is usable and behaves like NewProvider().
type Provider struct {
	// mu serializes Configure* calls; readers only load cfg.
	mu  sync.Mutex
	cfg atomic.Pointer[Config]

	console Console
	styles  *StyleCache
	diag    zerolog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithConsole sets the console used by ConsoleOut configurations that do not
// bring their own. Default: NewStdConsole().
func WithConsole(c Console) Option {
	return func(p *Provider) { p.console = c }
}

// WithStyleCache replaces the process-wide style cache.
func WithStyleCache(c *StyleCache) Option {
	return func(p *Provider) { p.styles = c }
}

// WithDiagnostics sets the logger the provider reports its own configuration
// changes to. Default: zerolog.Nop().
func WithDiagnostics(l zerolog.Logger) Option {
	return func(p *Provider) { p.diag = l }
}

// NewProvider returns a provider with styled console output and the default
// filtering: public logs, plus nothing below WARN.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		styles: defaultStyles,
		diag:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.initLocked()
	return p
}

// initLocked stores the default snapshot if none exists yet. p.mu must be
// held, except during NewProvider.
func (p *Provider) initLocked() *Config {
	if cfg := p.cfg.Load(); cfg != nil {
		return cfg
	}
	if p.console == nil {
		p.console = NewStdConsole()
	}
	if p.styles == nil {
		p.styles = defaultStyles
	}
	cfg := &Config{
		out:      consoleOutput{con: p.console, styles: p.styles},
		style:    true,
		includes: defaultInclusion,
		include:  includeNothing,
	}
	p.cfg.Store(cfg)
	return cfg
}

func (p *Provider) load() *Config {
	if cfg := p.cfg.Load(); cfg != nil {
		return cfg
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initLocked()
}

// Snapshot returns the current configuration.
func (p *Provider) Snapshot() *Config {
	return p.load()
}

// GetLogger builds the root logger from the current configuration.
func (p *Provider) GetLogger() *Logger {
	return build(Source{}, p.load(), p.load)
}

// ConfigureConsole selects the output strategy.
func (p *Provider) ConfigureConsole(cc ConsoleConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.initLocked().clone()
	switch c := cc.(type) {
	case ConsoleOut:
		p.applyConsole(next, c)
	case *ConsoleOut:
		if c == nil {
			p.applyConsole(next, ConsoleOut{})
			break
		}
		p.applyConsole(next, *c)
	case KeyedOut:
		if c.Keyed == nil {
			p.diag.Error().Str("type", "keyed").Msg("console config has no factory, using the default console")
			p.applyConsole(next, ConsoleOut{})
			break
		}
		next.out = extOutput{factory: c.Keyed}
		p.diag.Debug().Str("type", "keyed").Msg("console output configured")
	case NamedOut:
		if c.Named == nil {
			p.diag.Error().Str("type", "named").Msg("console config has no factory, using the default console")
			p.applyConsole(next, ConsoleOut{})
			break
		}
		next.out = extOutput{factory: namedToKeyed(c.Named)}
		p.diag.Debug().Str("type", "named").Msg("console output configured")
	default:
		p.applyConsole(next, ConsoleOut{})
	}
	p.cfg.Store(next)
}

func (p *Provider) applyConsole(next *Config, c ConsoleOut) {
	con := c.Console
	if con == nil {
		con = p.console
	}
	next.out = consoleOutput{con: con, styles: p.styles}
	next.style = true
	if c.Style != nil {
		next.style = *c.Style
	}
	p.diag.Debug().Str("type", "console").Bool("style", next.style).Msg("console output configured")
}

// ConfigureFiltering replaces the global filtering defaults. Omitted Dev,
// Internal, Min and Include fields reset to their defaults.
func (p *Provider) ConfigureFiltering(fc FilteringConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.initLocked().clone()
	next.includes = defaultInclusion.With(Includes{Min: fc.Min, Dev: fc.Dev, Internal: fc.Internal})
	next.include = includeNothing
	if fc.Include != nil {
		next.include = fc.Include
	}
	if fc.ConsoleStyle != nil {
		next.style = *fc.ConsoleStyle
	}
	p.diag.Debug().
		Stringer("min", next.includes.Min).
		Bool("dev", next.includes.Dev).
		Bool("internal", next.includes.Internal).
		Bool("include_hook", fc.Include != nil).
		Msg("filtering configured")
	p.cfg.Store(next)
}
