package forms

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	r := software.New().NewRenderer(640, 480)
//	ctx, err := forms.New(
//	    forms.WithRenderer(r),
//	    forms.WithDebugBorders(forms.Red),
//	)
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	renderer     Renderer
	debugBorders bool
	debugColor   Color
	logger       *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		// Semi-transparent red, the conventional debug-border color.
		debugColor: RGBA(1, 0, 0, 0.5),
	}
}

// WithRenderer sets the host rendering surface for the Context. A
// renderer is required; New returns ErrNoRenderer without one.
func WithRenderer(r Renderer) Option {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithDebugBorders enables a border over every updated component's
// content rectangle, drawn in the given color. Useful to visualize the
// resolved layout.
func WithDebugBorders(c Color) Option {
	return func(o *contextOptions) {
		o.debugBorders = true
		o.debugColor = c
	}
}

// WithLogger installs a logger (equivalent to calling SetLogger before
// New). Pass nil to keep the default silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = l
	}
}
