// Package geom holds plain geometric value types used as serialization
// fixtures and layout values.
package geom

import (
	"fmt"

	"github.com/pthm/cssel/lib/encoding"
)

// Rect is a width/height value holder.
type Rect struct {
	Width  float64
	Height float64
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// String returns the rectangle as "WxH".
func (r Rect) String() string {
	return fmt.Sprintf("%gx%g", r.Width, r.Height)
}

// Fields returns the rectangle's state as positional fields for encoding.
func (r Rect) Fields() []any {
	return []any{r.Width, r.Height}
}

// Prototype reconstructs a Rect from its positional fields.
var Prototype = encoding.Prototype[Rect]{
	Name:  "Rect",
	Arity: 2,
	Make: func(fields []any) (Rect, error) {
		w, err := toFloat(fields[0])
		if err != nil {
			return Rect{}, fmt.Errorf("width: %w", err)
		}
		h, err := toFloat(fields[1])
		if err != nil {
			return Rect{}, fmt.Errorf("height: %w", err)
		}
		return Rect{Width: w, Height: h}, nil
	},
}

// toFloat widens the numeric types the two wire forms produce.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("not a number: %T", v)
}
