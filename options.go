package jsonbuild

// Option configures a render call.
type Option func(*options) error

type options struct {
	masked bool
}

// Masked returns an Option that controls render-time masking. When enabled,
// every MaskedValue in the tree renders its placeholder as a quoted string
// instead of the value it wraps. The default is disabled.
func Masked(enabled bool) Option {
	return func(o *options) error {
		o.masked = enabled
		return nil
	}
}
