// Package filter evaluates expr-lang expressions against the items of a
// DUPR list response, e.g. `rating >= 4.5 and icontains(fullName, "smith")`.
//
// The case-insensitive helpers are icontains, istartsWith and iendsWith; the
// operators contains, startsWith and endsWith remain case-sensitive.
//
// Every key of a JSON object item is exposed as a variable; the whole item
// is also available as `item`. Non-object items are only reachable as `item`.
package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled expressions a Compiler keeps.
const DefaultCacheSize = 32

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Compiler compiles expressions and caches the programs.
type Compiler struct {
	helpers map[string]any
	cache   *lruCache[*Filter]
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCacheSize sets the compiled program cache size; zero disables caching.
func WithCacheSize(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithFunctions adds helper functions callable from expressions.
func WithFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// NewCompiler creates a new expression compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
		cache:   newLRUCache[*Filter](DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses an expression that must evaluate to a boolean.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if f, ok := c.cache.Get(expression); ok {
			return f, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{expression: expression, program: program, helpers: c.helpers}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// CacheSize returns the number of cached programs.
func (c *Compiler) CacheSize() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one item.
func (f *Filter) Match(item any) (bool, error) {
	out, err := expr.Run(f.program, environment(item, f.helpers))
	if err != nil {
		return false, err
	}
	// AsBool guarantees the type
	return out.(bool), nil
}

// Apply returns the items that match, in order. Items that fail to
// evaluate are skipped and reported in the returned slice of errors.
func (f *Filter) Apply(items []any) ([]any, []error) {
	var (
		matched []any
		errs    []error
	)
	for i, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			errs = append(errs, &EvaluationError{Expression: f.expression, Index: i, Err: err})
			continue
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, errs
}

func environment(item any, helpers map[string]any) map[string]any {
	env := make(map[string]any, 32)
	if obj, ok := item.(map[string]any); ok {
		maps.Copy(env, obj)
	}
	// helpers win over item keys of the same name
	maps.Copy(env, helpers)
	env["item"] = item
	return env
}

func helperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["parseDate"] = parseDate
	env["daysSince"] = func(date string) int {
		t := parseDate(date)
		if t.IsZero() {
			return -1
		}
		return int(time.Since(t).Hours() / 24)
	}
	env["now"] = time.Now
}

// parseDate accepts the date layouts the service returns. Unparseable input
// yields the zero time.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
