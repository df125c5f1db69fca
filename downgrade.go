package librarylog

// Downgrade builds audience-restricted views of a Logger.
type Downgrade struct {
	l *Logger
}

// Internal returns a view over the internal call-sites.
func (d Downgrade) Internal() UtilLogger {
	return &utilLogger{l: d.l, audience: AudienceInternal}
}

// Dev returns a view over the *Dev call-sites.
func (d Downgrade) Dev() UtilLogger {
	return &utilLogger{l: d.l, audience: AudienceDev}
}

// Public returns a view over the *Public call-sites. Public has no debug or
// trace target, so those calls go to the internal Warn call-site with a
// marker saying they were filtered out of the public audience.
func (d Downgrade) Public() UtilLogger {
	return &utilLogger{l: d.l, audience: AudiencePublic}
}

type utilLogger struct {
	l        *Logger
	audience Audience
}

func (u *utilLogger) Error(message string, fields ...Fields) {
	switch u.audience {
	case AudienceInternal:
		u.l.Error(message, fields...)
	case AudienceDev:
		u.l.ErrorDev(message, fields...)
	default:
		u.l.ErrorPublic(message, fields...)
	}
}

func (u *utilLogger) Warn(message string, fields ...Fields) {
	switch u.audience {
	case AudienceInternal:
		u.l.Warn(message, fields...)
	case AudienceDev:
		u.l.WarnDev(message, fields...)
	default:
		u.l.WarnPublic(message, fields...)
	}
}

func (u *utilLogger) Debug(message string, fields ...Fields) {
	switch u.audience {
	case AudienceInternal:
		u.l.Debug(message, fields...)
	case AudienceDev:
		u.l.DebugDev(message, fields...)
	default:
		u.l.Warn(publicDebugMarker+message, fields...)
	}
}

func (u *utilLogger) Trace(message string, fields ...Fields) {
	switch u.audience {
	case AudienceInternal:
		u.l.Trace(message, fields...)
	case AudienceDev:
		u.l.TraceDev(message, fields...)
	default:
		u.l.Warn(publicTraceMarker+message, fields...)
	}
}

// Named keeps the view's audience on the child node.
func (u *utilLogger) Named(name string, key ...any) UtilLogger {
	return &utilLogger{l: u.l.Named(name, key...), audience: u.audience}
}
