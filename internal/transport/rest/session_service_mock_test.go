package rest

import (
	"context"
	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/session"
	"sync"
)

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	CreateFunc func(ctx context.Context, input session.CreateInput) (*domain.Session, error)

	GetFunc func(ctx context.Context, id string) (*domain.Session, error)

	PlaylistFunc func(ctx context.Context, id string) (string, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input session.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Playlist []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate   sync.RWMutex
	lockGet      sync.RWMutex
	lockPlaylist sync.RWMutex
}

func (mock *sessionServiceMock) Create(ctx context.Context, input session.CreateInput) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionServiceMock.CreateFunc: method is nil but sessionService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *sessionServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input session.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Get(ctx context.Context, id string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionServiceMock.GetFunc: method is nil but sessionService.Get was just called")
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

func (mock *sessionServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Playlist(ctx context.Context, id string) (string, error) {
	if mock.PlaylistFunc == nil {
		panic("sessionServiceMock.PlaylistFunc: method is nil but sessionService.Playlist was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockPlaylist.Lock()
	mock.calls.Playlist = append(mock.calls.Playlist, callInfo)
	mock.lockPlaylist.Unlock()
	return mock.PlaylistFunc(ctx, id)
}

func (mock *sessionServiceMock) PlaylistCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockPlaylist.RLock()
	calls := mock.calls.Playlist
	mock.lockPlaylist.RUnlock()
	return calls
}
