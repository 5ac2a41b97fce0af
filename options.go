package tableconv

import (
	"go.uber.org/zap"

	"github.com/AraneaDev/ckeditor5-table/model"
	"github.com/AraneaDev/ckeditor5-table/upcast"
)

// Option configures a conversion.
type Option func(*options)

// options holds the resolved conversion configuration.
type options struct {
	logger   *zap.Logger
	schema   *model.Schema
	handlers []func(*upcast.Dispatcher)
}

// defaultOptions returns the default conversion configuration.
func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		schema: model.DefaultSchema(),
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a logger to the conversion; converters emit debug
// entries for structural decisions and skipped content.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSchema replaces the default table schema. Content the schema admits
// nowhere is silently dropped during conversion.
func WithSchema(s *model.Schema) Option {
	return func(o *options) {
		if s != nil {
			o.schema = s
		}
	}
}

// WithHandlers registers extra conversion handlers. They are registered
// before the built-in ones and therefore take priority for the element names
// they claim.
func WithHandlers(register func(*upcast.Dispatcher)) Option {
	return func(o *options) {
		if register != nil {
			o.handlers = append(o.handlers, register)
		}
	}
}

// dispatcher builds the handler table for this configuration: caller
// extensions first, then the built-in conversion.
func (o options) dispatcher() *upcast.Dispatcher {
	d := upcast.NewDispatcher()
	for _, register := range o.handlers {
		register(d)
	}
	upcast.RegisterDefaults(d)
	return d
}
