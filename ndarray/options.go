package ndarray

// PrintOption configures Fprint and Format.
type PrintOption func(*printOptions)

type printOptions struct {
	compact bool
	verb    string
}

func defaultPrintOptions() *printOptions {
	return &printOptions{
		verb: "%v",
	}
}

// WithCompact drops the line breaks and indentation between elements,
// printing a 2x3 array as [[0,1,2],[3,4,5]].
func WithCompact() PrintOption {
	return func(o *printOptions) {
		o.compact = true
	}
}

// WithVerb sets the fmt verb used for scalars (default "%v").
// An empty verb is ignored.
func WithVerb(verb string) PrintOption {
	return func(o *printOptions) {
		if verb != "" {
			o.verb = verb
		}
	}
}
