package librarylog

import (
	"fmt"
	"reflect"
	"strings"
)

// Segment is one step of a logger's hierarchical name.
type Segment struct {
	Name string
	// Key distinguishes instances sharing a name, e.g. a page id. Nil, and
	// typed nils such as a nil *int, mean no key.
	Key any
}

// HasKey reports whether the segment carries a key.
func (s Segment) HasKey() bool {
	return !isNilKey(s.Key)
}

func isNilKey(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// KeyString renders the key, or "" when there is none.
func (s Segment) KeyString() string {
	if !s.HasKey() {
		return emptyString
	}
	return fmt.Sprint(s.Key)
}

// Source is the immutable path from the root logger to a node.
type Source struct {
	segments []Segment
}

// Named returns a new Source with one segment appended. Only the first key,
// if any, is used. The receiver is never modified.
func (s Source) Named(name string, key ...any) Source {
	seg := Segment{Name: name}
	if len(key) > 0 && !isNilKey(key[0]) {
		seg.Key = key[0]
	}
	next := make([]Segment, len(s.segments), len(s.segments)+1)
	copy(next, s.segments)
	return Source{segments: append(next, seg)}
}

// Segments returns a copy of the path.
func (s Source) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the depth of the source; the root has depth zero.
func (s Source) Len() int {
	return len(s.segments)
}

// Find returns the first segment with the given name.
func (s Source) Find(name string) (Segment, bool) {
	for _, seg := range s.segments {
		if seg.Name == name {
			return seg, true
		}
	}
	return Segment{}, false
}

// Names renders each segment as "name" or "name (key)", the form handed to
// named factories.
func (s Source) Names() []string {
	names := make([]string, 0, len(s.segments))
	for _, seg := range s.segments {
		if seg.HasKey() {
			names = append(names, seg.Name+" ("+seg.KeyString()+")")
			continue
		}
		names = append(names, seg.Name)
	}
	return names
}

// String renders the source as space-joined "name" or "name#key" segments.
func (s Source) String() string {
	var b strings.Builder
	for i, seg := range s.segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.Name)
		if seg.HasKey() {
			b.WriteByte('#')
			b.WriteString(seg.KeyString())
		}
	}
	return b.String()
}
