package memo

import (
	"context"
	"sync"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxRetryFunc func(ctx context.Context, attempts int, fn func(ctx context.Context) error) error

	calls struct {
		RunInTxRetry []struct{ Attempts int }
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTxRetry(ctx context.Context, attempts int, fn func(ctx context.Context) error) error {
	if mock.RunInTxRetryFunc == nil {
		panic("txManagerMock.RunInTxRetryFunc: method is nil but txManager.RunInTxRetry was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTxRetry = append(mock.calls.RunInTxRetry, struct{ Attempts int }{attempts})
	mock.lock.Unlock()
	return mock.RunInTxRetryFunc(ctx, attempts, fn)
}

func (mock *txManagerMock) RunInTxRetryCalls() []struct{ Attempts int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTxRetry
}
