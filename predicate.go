package librarylog

// Inclusion is the fully resolved filtering policy for one log source.
type Inclusion struct {
	// Min is the floor for non-public levels, compared against the whole
	// composite level.
	Min Level
	// Dev includes logs meant for developers using the library.
	Dev bool
	// Internal includes logs meant for maintainers of the library.
	Internal bool
}

// Includes is a partial Inclusion. Nil fields inherit.
type Includes struct {
	Min      *Level
	Dev      *bool
	Internal *bool
}

// IncludeHook overrides inclusion for a given source. Returning the zero
// Includes keeps the defaults.
type IncludeHook func(source Source) Includes

func includeNothing(Source) Includes { return Includes{} }

// defaultInclusion is what a provider starts with and what omitted
// FilteringConfig fields reset to.
var defaultInclusion = Inclusion{
	Min:      AtLeast(WarnLevel),
	Dev:      false,
	Internal: false,
}

// With returns i with the fields present in o applied.
func (i Inclusion) With(o Includes) Inclusion {
	if o.Min != nil {
		i.Min = *o.Min
	}
	if o.Dev != nil {
		i.Dev = *o.Dev
	}
	if o.Internal != nil {
		i.Internal = *o.Internal
	}
	return i
}

// ShouldLog reports whether a call-site at lvl is emitted under inc. Public
// levels are always emitted. Dev and internal levels need their flag and must
// not sort below inc.Min.
func ShouldLog(inc Inclusion, lvl Level) bool {
	switch lvl.Audience {
	case AudiencePublic:
		return true
	case AudienceDev:
		if !inc.Dev {
			return false
		}
	case AudienceInternal:
		if !inc.Internal {
			return false
		}
	default:
		return false
	}
	return Compare(inc.Min, lvl) <= 0
}

// Ptr returns a pointer to v, for filling optional configuration fields.
func Ptr[T any](v T) *T {
	return &v
}
