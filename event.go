package librarylog

import (
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
)

// appendFields writes fields onto a zerolog event with typed setters, in
// sorted key order. Error values are enriched with their cause chain.
func appendFields(e *zerolog.Event, fields Fields) *zerolog.Event {
	if e == nil || len(fields) == 0 {
		return e
	}
	for _, key := range sortedKeys(fields) {
		switch val := fields[key].(type) {
		case nil:
			e.Interface(key, nil)
		case string:
			e.Str(key, val)
		case []string:
			e.Strs(key, val)
		case bool:
			e.Bool(key, val)
		case []bool:
			e.Bools(key, val)
		case int:
			e.Int(key, val)
		case int8:
			e.Int8(key, val)
		case int16:
			e.Int16(key, val)
		case int32:
			e.Int32(key, val)
		case int64:
			e.Int64(key, val)
		case uint:
			e.Uint(key, val)
		case uint8:
			e.Uint8(key, val)
		case uint16:
			e.Uint16(key, val)
		case uint32:
			e.Uint32(key, val)
		case uint64:
			e.Uint64(key, val)
		case float32:
			e.Float32(key, val)
		case float64:
			e.Float64(key, val)
		case time.Time:
			e.Time(key, val)
		case time.Duration:
			e.Dur(key, val)
		case net.IP:
			e.IPAddr(key, val)
		case net.HardwareAddr:
			e.MACAddr(key, val)
		case []byte:
			e.Bytes(key, val)
		case error:
			appendError(e, key, val)
		case Fields:
			e.Dict(key, appendFields(zerolog.Dict(), val))
		case fmt.Stringer:
			e.Stringer(key, val)
		default:
			e.Interface(key, val)
		}
	}
	return e
}

// appendError adds err under key together with the chain fields
// <key>_chain, <key>_root, <key>_history, <key>_ops and <key>_root_op.
func appendError(e *zerolog.Event, key string, err error) {
	e.AnErr(key, err)
	if err == nil {
		return
	}
	c := walkErrorChain(err)
	if c.empty() {
		return
	}
	e.Strs(key+"_chain", c.messages)
	e.Str(key+"_root", c.root())
	e.Str(key+"_history", c.history())
	e.Strs(key+"_ops", c.ops)
	if op := c.rootOp(); op != emptyString {
		e.Str(key+"_root_op", op)
	}
}
