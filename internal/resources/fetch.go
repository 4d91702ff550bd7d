package resources

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Resource is implemented by every type decoded from the table. ResourceKey
// is called on the zero value, so implementations use a value receiver and
// return a constant.
type Resource interface {
	ResourceKey() string
}

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used to report decode failures. A nil logger
// restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Fetch decodes the resource registered for T from the process-wide table.
// A decode failure is logged and reported as false; it never panics. A key
// missing from the table panics (see Table.Get).
//
// Unknown fields in the payload are ignored.
func Fetch[T Resource]() (T, bool) {
	return FetchFrom[T](Default())
}

// FetchFrom is Fetch against an explicit table.
func FetchFrom[T Resource](t *Table) (T, bool) {
	var res T
	key := res.ResourceKey()
	raw := t.Get(key)

	if err := yaml.Unmarshal([]byte(raw), &res); err != nil {
		logger().Error("decode resource", "key", key, "error", err)
		var zero T
		return zero, false
	}
	return res, true
}

// MustFetch is Fetch for resources the program cannot run without. It panics
// when the resource does not decode.
func MustFetch[T Resource]() T {
	res, ok := Fetch[T]()
	if !ok {
		var zero T
		panic(fmt.Sprintf("resources: embedded resource %q does not decode", zero.ResourceKey()))
	}
	return res
}
