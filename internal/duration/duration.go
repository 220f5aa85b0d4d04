// Package duration parses the requeue interval accepted on the command line.
//
// The accepted grammar is an unsigned integer optionally followed by a single
// unit: s (seconds), m (minutes) or h (hours). A bare integer is seconds.
// Surrounding whitespace is ignored.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

var durationRE = regexp.MustCompile(`^(?P<value>\d+)(?P<unit>[smh])?$`)

// Parse converts s into a time.Duration.
func Parse(s string) (time.Duration, error) {
	m := durationRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	value, err := strconv.ParseUint(m[1], 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	unit := time.Second
	switch m[2] {
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	}

	if value > uint64(1<<63-1)/uint64(unit) {
		return 0, fmt.Errorf("invalid duration %q: out of range", s)
	}

	return time.Duration(value) * unit, nil
}

// Value is a pflag.Value holding a duration in the requeue grammar, so an
// invalid value fails during flag parsing.
type Value struct {
	d   time.Duration
	raw string
}

var _ pflag.Value = (*Value)(nil)

// NewValue returns a Value initialised from def. It panics if def is invalid.
func NewValue(def string) *Value {
	v := &Value{}
	if err := v.Set(def); err != nil {
		panic(err)
	}
	return v
}

// Set implements pflag.Value.
func (v *Value) Set(s string) error {
	d, err := Parse(s)
	if err != nil {
		return err
	}
	v.d = d
	v.raw = strings.TrimSpace(s)
	return nil
}

// String implements pflag.Value.
func (v *Value) String() string {
	return v.raw
}

// Type implements pflag.Value.
func (v *Value) Type() string {
	return "duration"
}

// Duration returns the parsed duration.
func (v *Value) Duration() time.Duration {
	return v.d
}
