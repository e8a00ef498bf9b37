package request

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind is the category of the call target. It is used only to pick the
// naming prefix looked up when the script is rendered.
type Kind string

const (
	Function Kind = "function"
	Class    Kind = "class"
	Event    Kind = "event"
)

// OptionSource resolves a configuration option by dotted key. The request
// asks it for "prefix.<kind>" on every render; what happens for a missing
// key is the source's business. *config.Config satisfies this.
type OptionSource interface {
	GetOption(key string) string
}

// ErrInvalidIndex is returned by SetParameter for a negative index.
var ErrInvalidIndex = fmt.Errorf("request: invalid parameter index")

// Request builds one client-side call expression: a named target, an
// ordered list of already-rendered argument fragments, and an optional
// page-number slot whose value can be rewritten in place.
//
// Name and kind are fixed for the life of the request; everything else is
// mutable at any point. The zero value is not usable, use New.
type Request struct {
	opts       OptionSource
	name       string
	kind       Kind
	quote      string
	params     []string
	pageNumber int
}

// New creates an empty request. The kind is not validated here; an
// unknown kind simply resolves no prefix at render time.
func New(opts OptionSource, name string, kind Kind) *Request {
	return &Request{
		opts:       opts,
		name:       name,
		kind:       kind,
		quote:      `"`,
		pageNumber: -1,
	}
}

// NewFunction creates a request targeting a plain function.
func NewFunction(opts OptionSource, name string) *Request {
	return New(opts, name, Function)
}

// NewClass creates a request targeting a class method.
func NewClass(opts OptionSource, name string) *Request {
	return New(opts, name, Class)
}

// NewEvent creates a request targeting an event handler.
func NewEvent(opts OptionSource, name string) *Request {
	return New(opts, name, Event)
}

// UseSingleQuote makes future quoted fragments use '. Already rendered
// parameters keep the quote they were built with.
func (r *Request) UseSingleQuote() *Request {
	r.quote = "'"
	return r
}

// UseDoubleQuote makes future quoted fragments use ".
func (r *Request) UseDoubleQuote() *Request {
	r.quote = `"`
	return r
}

// ClearParameters drops every parameter slot.
//
// The recorded page-number index is NOT reset: if parameters are added
// again afterwards, the old index still answers to HasPageNumber and
// SetPageNumber. Callers that want a clean slate must set a fresh
// page-number parameter.
func (r *Request) ClearParameters() *Request {
	r.params = nil
	return r
}

// HasPageNumber reports whether a page-number slot has been recorded.
func (r *Request) HasPageNumber() bool {
	return r.pageNumber >= 0
}

// SetPageNumber rewrites the bound page-number slot with value coerced to
// an integer. It is a no-op unless a binding exists and the coerced value
// is strictly positive; non-numeric values coerce to zero and are always
// rejected. Returns the request for chaining.
func (r *Request) SetPageNumber(value any) *Request {
	if n := toInt(value); r.HasPageNumber() && n > 0 {
		r.store(r.pageNumber, strconv.Itoa(n))
	}
	return r
}

// AddParameter appends a parameter at the next free index.
func (r *Request) AddParameter(kind ValueKind, value any) *Request {
	r.SetParameter(len(r.params), kind, value)
	return r
}

// SetParameter renders value according to kind and stores the fragment at
// index, padding skipped slots with the undefined literal so the argument
// list stays syntactically complete. Unrecognized kinds leave the request
// untouched; a negative index is rejected.
func (r *Request) SetParameter(index int, kind ValueKind, value any) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	switch kind {
	case FormValues:
		r.store(index, "jaxon.getFormValues("+r.quote+stringify(value)+r.quote+")")
	case InputValue:
		r.store(index, "jaxon.$("+r.quote+stringify(value)+r.quote+").value")
	case CheckedValue:
		r.store(index, "jaxon.$("+r.quote+stringify(value)+r.quote+").checked")
	case ElementInnerHTML:
		r.store(index, "jaxon.$("+r.quote+stringify(value)+r.quote+").innerHTML")
	case QuotedValue:
		r.store(index, r.quote+escape(stringify(value))+r.quote)
	case BoolValue:
		if isTruthy(value) {
			r.store(index, "true")
		} else {
			r.store(index, "false")
		}
	case PageNumber:
		r.pageNumber = index
		r.store(index, stringify(value))
	case NumericValue, JSValue:
		r.store(index, stringify(value))
	}

	return nil
}

func (r *Request) store(index int, text string) {
	for len(r.params) <= index {
		r.params = append(r.params, undefined)
	}
	r.params[index] = text
}

// Script renders the call expression. The prefix is resolved from the
// option source on every call, so the result always reflects the current
// parameter state and configuration.
func (r *Request) Script() string {
	prefix := r.opts.GetOption("prefix." + string(r.kind))
	return prefix + r.name + "(" + strings.Join(r.params, ", ") + ")"
}

// Write renders the script to w.
func (r *Request) Write(w io.Writer) error {
	_, err := io.WriteString(w, r.Script())
	return err
}

// Print writes the script to standard output.
func (r *Request) Print() {
	io.WriteString(os.Stdout, r.Script())
}

func (r *Request) String() string {
	return r.Script()
}
