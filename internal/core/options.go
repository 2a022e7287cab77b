// Options for Apply, ApplyDynamic and Attach.
package core

import "log/slog"

// Option applies configuration via the functional options pattern.
type Option func(*config)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPublisher publishes a Change every time a managed property changes.
func WithPublisher(p Publisher) Option {
	return func(c *config) {
		c.publisher = p
	}
}

// WithVisualizer configures the renderer used by Visualize.
func WithVisualizer(v Visualizer) Option {
	return func(c *config) {
		c.visualizer = v
	}
}

// WithMiddleware wraps every composed event handler. Middleware applies in
// the order given; the last one is outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(c *config) {
		c.middleware = append(c.middleware, mw...)
	}
}
