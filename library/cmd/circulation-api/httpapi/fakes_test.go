package httpapi_test

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

type fakeCommandHandler[C shell.Command] struct {
	received []C
	result   shell.HandlerResult
	err      error
}

func (f *fakeCommandHandler[C]) Handle(_ context.Context, command C) (shell.HandlerResult, error) {
	f.received = append(f.received, command)

	return f.result, f.err
}

type fakeQueryHandler[Q shell.Query, R shell.QueryResult] struct {
	received []Q
	result   R
	err      error
}

func (f *fakeQueryHandler[Q, R]) Handle(_ context.Context, query Q) (R, error) {
	f.received = append(f.received, query)

	return f.result, f.err
}
