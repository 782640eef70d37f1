package session

import (
	"context"
	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/playlist"
	"sync"
)

var _ playlistGenerator = &playlistGeneratorMock{}

type playlistGeneratorMock struct {
	GenerateFunc func(ctx context.Context, input playlist.GenerateInput) (*playlist.Result, error)

	ManifestFunc func() *domain.Manifest

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input playlist.GenerateInput
		}
		Manifest []struct {
		}
	}
	lockGenerate sync.RWMutex
	lockManifest sync.RWMutex
}

func (mock *playlistGeneratorMock) Generate(ctx context.Context, input playlist.GenerateInput) (*playlist.Result, error) {
	if mock.GenerateFunc == nil {
		panic("playlistGeneratorMock.GenerateFunc: method is nil but playlistGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input playlist.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *playlistGeneratorMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input playlist.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *playlistGeneratorMock) Manifest() *domain.Manifest {
	if mock.ManifestFunc == nil {
		panic("playlistGeneratorMock.ManifestFunc: method is nil but playlistGenerator.Manifest was just called")
	}
	callInfo := struct {
	}{}
	mock.lockManifest.Lock()
	mock.calls.Manifest = append(mock.calls.Manifest, callInfo)
	mock.lockManifest.Unlock()
	return mock.ManifestFunc()
}

func (mock *playlistGeneratorMock) ManifestCalls() []struct {
} {
	mock.lockManifest.RLock()
	calls := mock.calls.Manifest
	mock.lockManifest.RUnlock()
	return calls
}
