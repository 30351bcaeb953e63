package ineed

// Rule checks a single property. It returns "" when value is acceptable and the
// violation text otherwise. props is the whole mapping under test and opts the
// rule-specific Opt.Options value.
type Rule func(value any, name string, props Properties, opts any) string

// Opt configures a single validator call. When several are passed, the last
// one wins.
type Opt struct {
	// Options is interpreted by the rule only (bounds, pattern, expected value).
	Options any
	// Message replaces the rule's text when non-empty.
	Message string
	// MessageFunc builds the message from the failing property name and takes
	// precedence over Message. An empty result falls back to the rule's text.
	MessageFunc func(name string) string
}

// Validator checks every property of a mapping against one rule.
type Validator func(props Properties, opts ...Opt) error

// AssertAll turns rule into a Validator reporting failures under code. The
// Validator stops at the first failing property and returns it as a
// *ValidationError; it returns nil when every property passes.
func AssertAll(code string, rule Rule) Validator {
	if rule == nil {
		panic("ineed: AssertAll requires a non-nil rule")
	}
	return func(props Properties, opts ...Opt) error {
		opt := lastOpt(opts)
		for _, p := range props {
			res := rule(p.Value, p.Name, props, opt.Options)
			if res == "" {
				continue
			}
			return &ValidationError{Property: p.Name, Code: code, Message: opt.message(p.Name, res)}
		}
		return nil
	}
}

func (o Opt) message(name, fallback string) string {
	if o.MessageFunc != nil {
		if m := o.MessageFunc(name); m != "" {
			return m
		}
		return fallback
	}
	if o.Message != "" {
		return o.Message
	}
	return fallback
}

func lastOpt(opts []Opt) Opt {
	if len(opts) == 0 {
		return Opt{}
	}
	return opts[len(opts)-1]
}

// withOptions installs a typed rule argument, keeping the caller's message.
func withOptions(options any, opts []Opt) Opt {
	o := lastOpt(opts)
	o.Options = options
	return o
}
