package request

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags how a raw value is converted into rendered argument text.
// Conversion happens at set-time; the stored fragment is target-language
// source, not the raw value.
type ValueKind string

const (
	// FormValues renders a call fetching all field values of a form.
	FormValues ValueKind = "form-values"
	// InputValue renders an accessor for an element's value property.
	InputValue ValueKind = "input-value"
	// CheckedValue renders an accessor for an element's checked property.
	CheckedValue ValueKind = "checked-value"
	// ElementInnerHTML renders an accessor for an element's innerHTML.
	ElementInnerHTML ValueKind = "element-innerHTML"
	// QuotedValue renders an escaped, quoted string literal.
	QuotedValue ValueKind = "quoted-value"
	// BoolValue renders the literal true or false by truthiness.
	BoolValue ValueKind = "boolean-value"
	// PageNumber stores the value verbatim and records the slot as the
	// request's rewritable page-number placeholder.
	PageNumber ValueKind = "page-number"
	// NumericValue stores the value verbatim, unquoted.
	NumericValue ValueKind = "numeric-value"
	// JSValue stores the value verbatim; the caller supplies valid
	// expression text.
	JSValue ValueKind = "js-value"
)

// undefined fills skipped slots so a padded argument list still parses.
const undefined = "undefined"

var escaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`)

func escape(s string) string {
	return escaper.Replace(s)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// isTruthy follows the reference semantics: empty and "0" strings are
// false, zero numbers are false, nil is false, anything else is true.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case uint:
		return t != 0
	default:
		return true
	}
}
