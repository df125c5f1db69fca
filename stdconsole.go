package librarylog

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// StdConsole is the default Console. Error and Warn go to Err, Info and Debug
// go to Out. The %c directives of the name prefix are rendered as ANSI escape
// sequences when Color is set and dropped otherwise.
type StdConsole struct {
	Out io.Writer
	Err io.Writer
	// Color enables ANSI styling.
	Color bool
	// LevelTags prefixes every line with its console level, e.g. "WARN".
	LevelTags bool

	mu sync.Mutex
}

// NewStdConsole writes to os.Stdout and os.Stderr, with color when stderr is
// a terminal.
func NewStdConsole() *StdConsole {
	fd := os.Stderr.Fd()
	return &StdConsole{
		Out:       os.Stdout,
		Err:       os.Stderr,
		Color:     isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		LevelTags: true,
	}
}

func (c *StdConsole) Error(message string, args ...any) {
	c.write(c.Err, "ERROR", message, args)
}

func (c *StdConsole) Warn(message string, args ...any) {
	c.write(c.Err, "WARN", message, args)
}

func (c *StdConsole) Info(message string, args ...any) {
	c.write(c.Out, "INFO", message, args)
}

func (c *StdConsole) Debug(message string, args ...any) {
	c.write(c.Out, "DEBUG", message, args)
}

func (c *StdConsole) write(w io.Writer, tag, message string, args []any) {
	if w == nil {
		return
	}
	var b strings.Builder
	if c.LevelTags {
		b.WriteString(tag)
		b.WriteByte(' ')
	}
	rest := c.render(&b, message, args)
	for _, arg := range rest {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
		writeArg(&b, arg)
	}
	b.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(w, b.String())
}

// render expands %c and %% in format, consuming one argument per %c, and
// returns the arguments left over.
func (c *StdConsole) render(b *strings.Builder, format string, args []any) []any {
	format = strings.TrimLeft(format, " ")
	styled := false
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			b.WriteByte(format[i])
			continue
		}
		switch format[i+1] {
		case 'c':
			i++
			if len(args) == 0 {
				continue
			}
			css, _ := args[0].(string)
			args = args[1:]
			if c.Color {
				b.WriteString(ansiReset)
				if seq := cssToANSI(css); seq != emptyString {
					b.WriteString(seq)
					styled = true
				}
			}
		case '%':
			i++
			b.WriteByte('%')
		default:
			b.WriteByte('%')
		}
	}
	if styled {
		b.WriteString(ansiReset)
	}
	return args
}

func writeArg(b *strings.Builder, arg any) {
	switch v := arg.(type) {
	case string:
		b.WriteString(v)
	case Fields:
		for i, k := range sortedKeys(v) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k)
			b.WriteByte('=')
			fmt.Fprint(b, v[k])
		}
	default:
		fmt.Fprint(b, v)
	}
}

const ansiReset = "\033[0m"

// cssToANSI translates the subset of CSS the style cache produces into an SGR
// sequence: color, background-color, font-weight and font-style.
func cssToANSI(css string) string {
	var codes []string
	for _, decl := range strings.Split(css, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		val = strings.TrimSpace(val)
		switch prop {
		case "color":
			if r, g, bl, ok := parseColor(val); ok {
				codes = append(codes, "38;2;"+rgbCodes(r, g, bl))
			}
		case "background-color":
			if r, g, bl, ok := parseColor(val); ok {
				codes = append(codes, "48;2;"+rgbCodes(r, g, bl))
			}
		case "font-weight":
			if n, err := strconv.Atoi(val); (err == nil && n >= 600) || val == "bold" {
				codes = append(codes, "1")
			}
		case "font-style":
			if val == "italic" {
				codes = append(codes, "3")
			}
		}
	}
	if len(codes) == 0 {
		return emptyString
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

func rgbCodes(r, g, b uint8) string {
	return strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b))
}

var namedColors = map[string][3]uint8{
	"white": {255, 255, 255},
	"black": {0, 0, 0},
	"red":   {255, 0, 0},
	"green": {0, 128, 0},
	"blue":  {0, 0, 255},
}

// parseColor understands #rgb, #rrggbb, hsl(h, s%, l%) and a few names.
func parseColor(val string) (r, g, b uint8, ok bool) {
	val = strings.ToLower(val)
	if c, found := namedColors[val]; found {
		return c[0], c[1], c[2], true
	}
	if strings.HasPrefix(val, "#") {
		hex := val[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return 0, 0, 0, false
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		return uint8(n >> 16), uint8(n >> 8), uint8(n), true
	}
	if strings.HasPrefix(val, "hsl(") && strings.HasSuffix(val, ")") {
		parts := strings.Split(val[4:len(val)-1], ",")
		if len(parts) != 3 {
			return 0, 0, 0, false
		}
		h, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		s, err2 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[1]), "%"), 64)
		l, err3 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[2]), "%"), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, 0, 0, false
		}
		r, g, b = hslToRGB(h, s/100, l/100)
		return r, g, b, true
	}
	return 0, 0, 0, false
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return to8(r), to8(g), to8(b)
}
