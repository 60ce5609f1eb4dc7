package level

import (
	"strconv"
)

// Props is the string configuration attached to a thing, keyed by property
// name or by argument position ("0", "1", ...) for formula names.
type Props map[string]string

func (p Props) String(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Int returns def when the key is missing or not an integer.
func (p Props) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// Float returns def when the key is missing or not a number.
func (p Props) Float(key string, def float32) float32 {
	v, ok := p[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return def
	}
	return float32(f)
}
