package evaluator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/t14raptor/regen/ast"
)

// jsWhitespace is the set trimmed by string to number conversion.
const jsWhitespace = "\t\n\v\f\r \u00A0\u1680\u180E\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF"

var stringToNumberParseInteger = regexp.MustCompile(`^(?:0[xXoObB])`)

func parseNumber(value string) float64 {
	value = strings.Trim(value, jsWhitespace)

	if value == "" {
		return 0
	}

	if stringToNumberParseInteger.MatchString(value) {
		number, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(number)
	}

	switch value {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return number
}

type valueKind int

const (
	valueUndefined valueKind = iota
	valueNull
	valueNumber
	valueString
	valueBoolean
	valueObject
	valueFunction
)

var (
	undefinedValue = Value{kind: valueUndefined}
	nullValue      = Value{kind: valueNull}
	falseValue     = Value{kind: valueBoolean, value: false}
	trueValue      = Value{kind: valueBoolean, value: true}
)

// Value is the representation of a JavaScript value.
type Value struct {
	value any
	kind  valueKind
}

// Object is a plain object or an array. Arrays keep their indexed elements
// in Elements and any other keys in the property map.
type Object struct {
	Array    bool
	Elements []Value

	keys  []string
	props map[string]Value
}

func newObject() *Object {
	return &Object{props: make(map[string]Value)}
}

// Get returns the property key, or undefined.
func (o *Object) Get(key string) Value {
	if o.Array {
		if key == "length" {
			return float64Value(float64(len(o.Elements)))
		}
		if i, ok := arrayIndex(key); ok {
			if i < len(o.Elements) {
				return o.Elements[i]
			}
			return undefinedValue
		}
	}
	if v, ok := o.props[key]; ok {
		return v
	}
	return undefinedValue
}

// Set stores value under key.
func (o *Object) Set(key string, value Value) {
	if o.Array {
		if i, ok := arrayIndex(key); ok {
			for len(o.Elements) <= i {
				o.Elements = append(o.Elements, undefinedValue)
			}
			o.Elements[i] = value
			return
		}
	}
	if _, ok := o.props[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.props[key] = value
}

// Keys returns the non index keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

func arrayIndex(key string) (int, bool) {
	if key == "" || len(key) > 1 && key[0] == '0' {
		return 0, false
	}
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// Function is a closure over a function literal or a native function.
type Function struct {
	Name string

	literal *ast.FunctionLiteral
	scope   *env

	native func(args []Value) (Value, error)
}

var matchLeading0Exponent = regexp.MustCompile(`([eE][\+\-])0+([1-9])`) // 1e-07 => 1e-7

func floatToString(value float64, bitsize int) string {
	if math.IsNaN(value) {
		return "NaN"
	} else if math.IsInf(value, 0) {
		if math.Signbit(value) {
			return "-Infinity"
		}
		return "Infinity"
	}
	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		return matchLeading0Exponent.ReplaceAllString(strconv.FormatFloat(value, 'g', -1, bitsize), "$1$2")
	}
	return strconv.FormatFloat(value, 'f', -1, bitsize)
}

// string converts v the way String(v) does.
func (v Value) string() string {
	switch v.kind {
	case valueUndefined:
		return "undefined"
	case valueNull:
		return "null"
	case valueString:
		return v.value.(string)
	case valueBoolean:
		return strconv.FormatBool(v.value.(bool))
	case valueNumber:
		value := v.value.(float64)
		if value == 0 {
			return "0" // Take care not to return -0
		}
		return floatToString(value, 64)
	case valueFunction:
		return "function " + v.value.(*Function).Name + "() { [code] }"
	}
	o := v.value.(*Object)
	if !o.Array {
		return "[object Object]"
	}
	parts := make([]string, len(o.Elements))
	for i, e := range o.Elements {
		if !e.IsUndefined() && !e.IsNull() {
			parts[i] = e.string()
		}
	}
	return strings.Join(parts, ",")
}

func (v Value) float64() float64 {
	switch v.kind {
	case valueUndefined:
		return math.NaN()
	case valueNull:
		return 0
	case valueNumber:
		return v.value.(float64)
	case valueBoolean:
		if v.value.(bool) {
			return 1
		}
		return 0
	case valueString:
		return parseNumber(v.value.(string))
	}
	return parseNumber(v.string())
}

func (v Value) bool() bool {
	switch v.kind {
	case valueUndefined, valueNull:
		return false
	case valueBoolean:
		return v.value.(bool)
	case valueNumber:
		value := v.value.(float64)
		return !math.IsNaN(value) && value != 0
	case valueString:
		return len(v.value.(string)) != 0
	}
	return true
}

// IsBoolean will return true if value is a boolean (primitive).
func (v Value) IsBoolean() bool {
	return v.kind == valueBoolean
}

// IsNumber will return true if value is a number (primitive).
func (v Value) IsNumber() bool {
	return v.kind == valueNumber
}

// IsString will return true if value is a string (primitive).
func (v Value) IsString() bool {
	return v.kind == valueString
}

// IsNull will return true if the value is null, and false otherwise.
func (v Value) IsNull() bool {
	return v.kind == valueNull
}

// IsUndefined will return true if the value is undefined, and false otherwise.
func (v Value) IsUndefined() bool {
	return v.kind == valueUndefined
}

// IsObject reports whether v is an object or array.
func (v Value) IsObject() bool {
	return v.kind == valueObject
}

// IsFunction reports whether v can be called.
func (v Value) IsFunction() bool {
	return v.kind == valueFunction
}

// Object returns the object held by v, or nil.
func (v Value) Object() *Object {
	o, _ := v.value.(*Object)
	return o
}

// Truthy reports whether v converts to true.
func (v Value) Truthy() bool {
	return v.bool()
}

// String formats v the way console.log prints it.
func (v Value) String() string {
	return inspect(v, false)
}

// Export converts v to a Go value: nil for undefined and null, float64,
// string, bool, []any for arrays and map[string]any for objects.
func (v Value) Export() any {
	switch v.kind {
	case valueUndefined, valueNull:
		return nil
	case valueObject:
		o := v.value.(*Object)
		if o.Array {
			out := make([]any, len(o.Elements))
			for i, e := range o.Elements {
				out[i] = e.Export()
			}
			return out
		}
		out := make(map[string]any, len(o.keys))
		for _, k := range o.keys {
			out[k] = o.props[k].Export()
		}
		return out
	}
	return v.value
}

func typeOf(v Value) string {
	switch v.kind {
	case valueUndefined:
		return "undefined"
	case valueNumber:
		return "number"
	case valueString:
		return "string"
	case valueBoolean:
		return "boolean"
	case valueFunction:
		return "function"
	}
	return "object"
}

// inspect renders v like console.log. Strings nested inside arrays and
// objects are quoted.
func inspect(v Value, nested bool) string {
	switch v.kind {
	case valueString:
		if nested {
			return "'" + strings.ReplaceAll(v.value.(string), "'", `\'`) + "'"
		}
		return v.value.(string)
	case valueFunction:
		name := v.value.(*Function).Name
		if name == "" {
			return "[Function (anonymous)]"
		}
		return "[Function: " + name + "]"
	case valueObject:
		o := v.value.(*Object)
		var parts []string
		for _, e := range o.Elements {
			parts = append(parts, inspect(e, true))
		}
		for _, k := range o.keys {
			parts = append(parts, k+": "+inspect(o.props[k], true))
		}
		if o.Array {
			if len(parts) == 0 {
				return "[]"
			}
			return "[ " + strings.Join(parts, ", ") + " ]"
		}
		if len(parts) == 0 {
			return "{}"
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}
	return v.string()
}

// Undefined returns the undefined value.
func Undefined() Value {
	return undefinedValue
}

// Null returns the null value.
func Null() Value {
	return nullValue
}

// NaNValue will return a value representing NaN.
func NaNValue() Value {
	return Value{kind: valueNumber, value: math.NaN()}
}

func stringValue(value string) Value {
	return Value{
		kind:  valueString,
		value: value,
	}
}

func float64Value(value float64) Value {
	return Value{
		kind:  valueNumber,
		value: value,
	}
}

func boolValue(value bool) Value {
	if value {
		return trueValue
	}
	return falseValue
}

func objectValue(o *Object) Value {
	return Value{kind: valueObject, value: o}
}

func functionValue(f *Function) Value {
	return Value{kind: valueFunction, value: f}
}

// ToValue converts a Go value to a Value. Supported are nil, bool, numeric
// types, string, []any, map[string]any and Value itself.
func ToValue(value any) Value {
	switch value := value.(type) {
	case nil:
		return undefinedValue
	case Value:
		return value
	case bool:
		return boolValue(value)
	case int:
		return float64Value(float64(value))
	case int64:
		return float64Value(float64(value))
	case float64:
		return float64Value(value)
	case string:
		return stringValue(value)
	case []any:
		o := newObject()
		o.Array = true
		for _, e := range value {
			o.Elements = append(o.Elements, ToValue(e))
		}
		return objectValue(o)
	case map[string]any:
		o := newObject()
		for k, e := range value {
			o.Set(k, ToValue(e))
		}
		return objectValue(o)
	}
	return stringValue("")
}

// NativeFunction wraps fn so scripts can call it.
func NativeFunction(name string, fn func(args []Value) (Value, error)) Value {
	return functionValue(&Function{Name: name, native: fn})
}

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return undefinedValue
}
