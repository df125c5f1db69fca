// Package librarylog is a structured logging facade for libraries. Every log
// call-site carries an audience (public, dev, internal), a category (general,
// todo, troubleshooting) and a severity (trace, debug, warn, error), and is
// routed through one centrally configured filtering and output policy.
//
// Key features
//   - Thirteen fixed call-sites (Hmm, Todo, Error, ErrorDev, ErrorPublic, Kapow,
//     Warn, WarnDev, WarnPublic, Debug, DebugDev, Trace, TraceDev)
//   - Inclusion is decided once per logger node at construction time; excluded
//     call-sites are bound to a no-op, so a filtered call costs one indirect call
//   - Hierarchical names via Named, with per-subtree overrides supplied by an
//     include hook that is re-evaluated at every depth
//   - Lazy variants that only build their fields when the call is emitted
//   - Downgrade views that hand a single-audience logger to utility code
//   - Plain or styled console output, or a caller-supplied keyed/named factory;
//     ready-made factories for zerolog (with lumberjack rotation), zap, logrus
//     and apex/log
//
// Typical usage
//
//	provider := librarylog.NewProvider()
//	provider.ConfigureFiltering(librarylog.FilteringConfig{Dev: librarylog.Ptr(true)})
//
//	log := provider.GetLogger().Named("Project", projectID)
//	log.WarnDev("sourcemap missing", librarylog.Fields{"file": name})
//	log.Lazy().Debug("loaded", func() librarylog.Fields { return expensiveStats() })
//
// Configuration changes apply to loggers built afterwards; existing loggers are
// snapshots and are never updated in place.
package librarylog
