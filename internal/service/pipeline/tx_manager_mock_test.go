package pipeline

import (
	"context"
	"sync"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc      func(ctx context.Context, fn func(ctx context.Context) error) error
	RunInTxRetryFunc func(ctx context.Context, attempts int, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx      []struct{}
		RunInTxRetry []struct{ Attempts int }
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
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
