package librarylog

import (
	"sort"

	"github.com/apex/log"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

const (
	fieldAudience = "audience"
	fieldCategory = "category"
	fieldSource   = "source"
	fieldSeverity = "severity"
)

// ZapFactory routes call-sites to a zap logger. Each segment becomes a zap
// name, and keys are attached as fields named after their segment.
func ZapFactory(base *zap.Logger) KeyedFactory {
	if base == nil {
		base = zap.NewNop()
	}
	return func(segments []Segment) ExtLogger {
		l := base
		var keys []zap.Field
		for _, seg := range segments {
			l = l.Named(seg.Name)
			if seg.HasKey() {
				keys = append(keys, zap.Any(seg.Name, seg.Key))
			}
		}
		if len(keys) > 0 {
			l = l.With(keys...)
		}
		return &zapLogger{l: l}
	}
}

type zapLogger struct {
	l *zap.Logger
}

func (z *zapLogger) Error(meta Meta, message string, fields Fields) {
	z.l.Error(message, zapFields(meta, fields)...)
}

func (z *zapLogger) Warn(meta Meta, message string, fields Fields) {
	z.l.Warn(message, zapFields(meta, fields)...)
}

func (z *zapLogger) Debug(meta Meta, message string, fields Fields) {
	z.l.Debug(message, zapFields(meta, fields)...)
}

// zap has no trace level; the severity field keeps it apart from debug.
func (z *zapLogger) Trace(meta Meta, message string, fields Fields) {
	z.l.Debug(message, zapFields(meta, fields)...)
}

func zapFields(meta Meta, fields Fields) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+3)
	out = append(out,
		zap.String(fieldAudience, meta.Audience.String()),
		zap.String(fieldCategory, meta.Category.String()),
		zap.Stringer(fieldSeverity, meta.Level),
	)
	for _, k := range sortedKeys(fields) {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

// LogrusFactory routes call-sites to a logrus logger, tagging each entry with
// the rendered source path.
func LogrusFactory(base logrus.FieldLogger) KeyedFactory {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return func(segments []Segment) ExtLogger {
		entry := base.WithFields(logrus.Fields{})
		if src := (Source{segments: segments}).String(); src != emptyString {
			entry = entry.WithField(fieldSource, src)
		}
		return &logrusLogger{e: entry}
	}
}

type logrusLogger struct {
	e *logrus.Entry
}

func (l *logrusLogger) with(meta Meta, fields Fields) *logrus.Entry {
	f := make(logrus.Fields, len(fields)+2)
	for k, v := range fields {
		f[k] = v
	}
	f[fieldAudience] = meta.Audience.String()
	f[fieldCategory] = meta.Category.String()
	return l.e.WithFields(f)
}

func (l *logrusLogger) Error(meta Meta, message string, fields Fields) {
	l.with(meta, fields).Error(message)
}

func (l *logrusLogger) Warn(meta Meta, message string, fields Fields) {
	l.with(meta, fields).Warn(message)
}

func (l *logrusLogger) Debug(meta Meta, message string, fields Fields) {
	l.with(meta, fields).Debug(message)
}

func (l *logrusLogger) Trace(meta Meta, message string, fields Fields) {
	l.with(meta, fields).Trace(message)
}

// ApexFactory routes call-sites to an apex/log interface.
func ApexFactory(base log.Interface) KeyedFactory {
	if base == nil {
		base = log.Log
	}
	return func(segments []Segment) ExtLogger {
		return &apexLogger{l: base, source: Source{segments: segments}.String()}
	}
}

type apexLogger struct {
	l      log.Interface
	source string
}

func (a *apexLogger) with(meta Meta, fields Fields) *log.Entry {
	f := make(log.Fields, len(fields)+4)
	for k, v := range fields {
		f[k] = v
	}
	f[fieldAudience] = meta.Audience.String()
	f[fieldCategory] = meta.Category.String()
	f[fieldSeverity] = meta.Level.String()
	if a.source != emptyString {
		f[fieldSource] = a.source
	}
	return a.l.WithFields(f)
}

func (a *apexLogger) Error(meta Meta, message string, fields Fields) {
	a.with(meta, fields).Error(message)
}

func (a *apexLogger) Warn(meta Meta, message string, fields Fields) {
	a.with(meta, fields).Warn(message)
}

func (a *apexLogger) Debug(meta Meta, message string, fields Fields) {
	a.with(meta, fields).Debug(message)
}

// apex has no trace level; the severity field keeps it apart from debug.
func (a *apexLogger) Trace(meta Meta, message string, fields Fields) {
	a.with(meta, fields).Debug(message)
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
