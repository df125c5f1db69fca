package librarylog

import (
	"regexp"
	"strconv"
	"sync"
	"unicode/utf16"
)

// StyleCache memoizes the display style of rendered names for the styled
// console. Entries are never evicted.
type StyleCache struct {
	mu   sync.RWMutex
	memo map[string]string

	bold       *regexp.Regexp
	italic     *regexp.Regexp
	color      func(name string) string
	collapseOn *regexp.Regexp
}

// StyleOption configures a StyleCache.
type StyleOption func(*StyleCache)

// WithBold adds font-weight:600 to names matching re.
func WithBold(re *regexp.Regexp) StyleOption {
	return func(c *StyleCache) { c.bold = re }
}

// WithItalic adds font-style:italic to names matching re.
func WithItalic(re *regexp.Regexp) StyleOption {
	return func(c *StyleCache) { c.italic = re }
}

// WithColor replaces the derived hue with a caller-supplied CSS color.
func WithColor(fn func(name string) string) StyleOption {
	return func(c *StyleCache) { c.color = fn }
}

var defaultCollapseOn = regexp.MustCompile(`[a-z\- ]+`)

// defaultStyles is shared by every provider that does not bring its own cache.
var defaultStyles = NewStyleCache()

// NewStyleCache returns an empty cache. The empty name always maps to the
// empty style.
func NewStyleCache(opts ...StyleOption) *StyleCache {
	c := &StyleCache{
		memo:       map[string]string{emptyString: emptyString},
		collapseOn: defaultCollapseOn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CSS returns the memoized style for name, computing it on first use.
func (c *StyleCache) CSS(name string) string {
	c.mu.RLock()
	found, ok := c.memo[name]
	c.mu.RUnlock()
	if ok {
		return found
	}

	css := c.compute(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if found, ok := c.memo[name]; ok {
		return found
	}
	c.memo[name] = css
	return css
}

// Collapsed returns a short label for names of five or more UTF-16 units by
// stripping lower-case letters, hyphens and spaces ("ProjectModel" becomes
// "PM"). The short label is memoized with the full name's style.
func (c *StyleCache) Collapsed(name string) string {
	if utf16Len(name) < 5 {
		return name
	}
	collapsed := c.collapseOn.ReplaceAllString(name, emptyString)

	c.mu.RLock()
	_, ok := c.memo[collapsed]
	c.mu.RUnlock()
	if ok {
		return collapsed
	}

	css := c.CSS(name)
	c.mu.Lock()
	if _, ok := c.memo[collapsed]; !ok {
		c.memo[collapsed] = css
	}
	c.mu.Unlock()
	return collapsed
}

// Len returns the number of memoized entries.
func (c *StyleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memo)
}

func (c *StyleCache) compute(name string) string {
	var css string
	if c.color != nil {
		css = "color:" + c.color(name)
	} else {
		css = "color:hsl(" + strconv.Itoa(hue(name)) + ", 100%, 60%)"
	}
	if c.bold != nil && c.bold.MatchString(name) {
		css += ";font-weight:600"
	}
	if c.italic != nil && c.italic.MatchString(name) {
		css += ";font-style:italic"
	}
	return css
}

// hue derives a stable hue from the first and last UTF-16 code units.
func hue(name string) int {
	units := utf16.Encode([]rune(name))
	if len(units) == 0 {
		return 0
	}
	return (int(units[0]) + int(units[len(units)-1])) % 360
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
