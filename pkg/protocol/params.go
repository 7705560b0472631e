package protocol

import (
	"strings"

	"github.com/spf13/cast"
)

// Param is a single key=value pair sent with a command.
type Param struct {
	Key   string
	Value string
}

// Params keeps parameters in insertion order, which is also the order
// they are encoded on the wire.
type Params []Param

// Add appends key with value rendered as a string. Supported values are
// strings, integers, booleans (sent as 1/0) and slices of those (comma
// joined).
func (p *Params) Add(key string, value interface{}) {
	*p = append(*p, Param{Key: key, Value: formatValue(value)})
}

// Str appends key when value is not empty.
func (p *Params) Str(key, value string) {
	if value != "" {
		p.Add(key, value)
	}
}

// Int appends key when value is set.
func (p *Params) Int(key string, value *int) {
	if value != nil {
		p.Add(key, *value)
	}
}

// Bool appends key when value is set.
func (p *Params) Bool(key string, value *bool) {
	if value != nil {
		p.Add(key, *value)
	}
}

// List appends key when values is not empty.
func (p *Params) List(key string, values []string) {
	if len(values) > 0 {
		p.Add(key, values)
	}
}

// Ints appends key when values is not empty.
func (p *Params) Ints(key string, values []int) {
	if len(values) > 0 {
		p.Add(key, values)
	}
}

func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, param := range p {
		keys = append(keys, param.Key)
	}
	return keys
}

// Get returns the value of the first parameter named key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Encode joins the parameters as "k1=v1 k2=v2".
func (p Params) Encode() string {
	pairs := make([]string, 0, len(p))
	for _, param := range p {
		pairs = append(pairs, param.Key+"="+param.Value)
	}
	return strings.Join(pairs, " ")
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "1"
		}
		return "0"
	case []string:
		return strings.Join(v, ",")
	case []int:
		parts := make([]string, 0, len(v))
		for _, i := range v {
			parts = append(parts, cast.ToString(i))
		}
		return strings.Join(parts, ",")
	default:
		return cast.ToString(v)
	}
}
