package session

import (
	"context"
	"github.com/heartmarshall/phrasecast/internal/domain"
	"sync"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	GetFunc func(ctx context.Context, id string) (*domain.Session, error)

	LenFunc func() int

	PutFunc func(ctx context.Context, sess *domain.Session) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Len []struct {
		}
		Put []struct {
			Ctx  context.Context
			Sess *domain.Session
		}
	}
	lockGet sync.RWMutex
	lockLen sync.RWMutex
	lockPut sync.RWMutex
}

func (mock *sessionStoreMock) Get(ctx context.Context, id string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *sessionStoreMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Len() int {
	if mock.LenFunc == nil {
		panic("sessionStoreMock.LenFunc: method is nil but sessionStore.Len was just called")
	}
	callInfo := struct {
	}{}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, callInfo)
	mock.lockLen.Unlock()
	return mock.LenFunc()
}

func (mock *sessionStoreMock) LenCalls() []struct {
} {
	mock.lockLen.RLock()
	calls := mock.calls.Len
	mock.lockLen.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Put(ctx context.Context, sess *domain.Session) error {
	if mock.PutFunc == nil {
		panic("sessionStoreMock.PutFunc: method is nil but sessionStore.Put was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess *domain.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, sess)
}

func (mock *sessionStoreMock) PutCalls() []struct {
	Ctx  context.Context
	Sess *domain.Session
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
