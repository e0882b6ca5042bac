package logger

import "context"

type ctxKey struct{}

// ToCtx returns a copy of ctx carrying lgr.
func ToCtx(ctx context.Context, lgr Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, lgr)
}

// FromCtx returns the logger stored in ctx by ToCtx. When there is none it
// returns a zero Logger and false.
func FromCtx(ctx context.Context) (Logger, bool) {
	if ctx == nil {
		return Logger{}, false
	}

	lgr, ok := ctx.Value(ctxKey{}).(Logger)

	return lgr, ok
}

// FromCtxOrNop returns the logger stored in ctx, or a no-op logger.
func FromCtxOrNop(ctx context.Context) Logger {
	if lgr, ok := FromCtx(ctx); ok {
		return lgr
	}

	return NewNop()
}
