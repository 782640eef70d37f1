package playlist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

func newTestService(t *testing.T, m *domain.Manifest) *Service {
	t.Helper()
	svc := NewService(slog.Default(), m, Options{
		MaxPhraseLength: 10,
		MaxTextLength:   200,
		OpenerFilename:  "opener.ts",
		OpenerDuration:  8.08,
		TargetDuration:  10,
	})
	svc.serializer.Now = fixedNow
	return svc
}

func strPtr(s string) *string { return &s }

func TestGenerate_FixedTokens(t *testing.T) {
	t.Parallel()

	m := scenarioManifest()
	m.FixedTokens = toks("hello", "world", "foo", "bar")
	svc := newTestService(t, m)

	res, err := svc.Generate(context.Background(), GenerateInput{Seed: "session-1"})
	require.NoError(t, err)

	assert.Equal(t, m.FixedTokens, res.Tokens)
	assert.Equal(t, []domain.Match{{Phrase: "hello world", Start: 0, End: 2}}, res.Matches)
	assert.Equal(t, []int{3}, res.Dropped)
	assert.Equal(t, domain.Stats{
		TotalTokens:   4,
		MatchedPhrase: 1,
		TotalClips:    2,
		PhraseClips:   1,
		StaticClips:   1,
		DroppedTokens: 1,
		TotalDuration: 2.5,
	}, res.Stats)
	assert.True(t, strings.HasPrefix(res.Playlist, "#EXTM3U\n"))
	assert.Contains(t, res.Playlist, "# Session: session-1\n")
}

func TestGenerate_TextOverridesFixedTokens(t *testing.T) {
	t.Parallel()

	m := scenarioManifest()
	m.FixedTokens = toks("foo")
	svc := newTestService(t, m)

	res, err := svc.Generate(context.Background(), GenerateInput{Seed: "s", Text: strPtr("Héllo  World!")})
	require.NoError(t, err)

	assert.Equal(t, toks("hello", "world", "!"), res.Tokens)
	require.Len(t, res.Script, 1)
	assert.Equal(t, "hw.ts", res.Script[0].Filename)
	assert.Equal(t, []int{2}, res.Dropped)
}

func TestGenerate_FixedTextFallback(t *testing.T) {
	t.Parallel()

	m := scenarioManifest()
	m.FixedText = "Hello world foo"
	svc := newTestService(t, m)

	res, err := svc.Generate(context.Background(), GenerateInput{Seed: "s"})
	require.NoError(t, err)
	assert.Len(t, res.Script, 2)
}

func TestGenerate_NoTokens(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, scenarioManifest())

	_, err := svc.Generate(context.Background(), GenerateInput{Seed: "s"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTokens))

	_, err = svc.Generate(context.Background(), GenerateInput{Seed: "s", Text: strPtr("   ")})
	assert.True(t, errors.Is(err, domain.ErrNoTokens))
}

func TestGenerate_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, scenarioManifest())

	_, err := svc.Generate(context.Background(), GenerateInput{Seed: " "})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = svc.Generate(context.Background(), GenerateInput{Seed: "s", Text: strPtr(strings.Repeat("a", 201))})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "text", ve.Errors[0].Field)
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	m := manifestWith(map[string][]domain.Clip{
		"hello world": {clip("a.ts", 1), clip("b.ts", 1), clip("c.ts", 1)},
	})
	m.FixedTokens = toks("hello", "world")
	svc := newTestService(t, m)
	ctx := context.Background()

	first, err := svc.Generate(ctx, GenerateInput{Seed: "session-1"})
	require.NoError(t, err)
	again, err := svc.Generate(ctx, GenerateInput{Seed: "session-1"})
	require.NoError(t, err)
	other, err := svc.Generate(ctx, GenerateInput{Seed: "session-2"})
	require.NoError(t, err)

	assert.Equal(t, first.Playlist, again.Playlist)
	assert.Equal(t, "a.ts", first.Script[0].Filename)
	assert.Equal(t, "c.ts", other.Script[0].Filename)
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), nil, Options{})
	assert.Equal(t, DefaultMaxPhraseLength, svc.opts.MaxPhraseLength)
	assert.Equal(t, DefaultMaxTextLength, svc.opts.MaxTextLength)
	assert.Nil(t, svc.Manifest())
}

func TestNewService_WarnsAboutClipsOverTarget(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	m := manifestWith(map[string][]domain.Clip{
		"good morning": {clip("gm.ts", 1.5), clip("long.ts", 11.2)},
	})

	NewService(log, m, Options{OpenerFilename: "opener.ts", OpenerDuration: 8.08, TargetDuration: 10})

	line := buf.String()
	require.NotEmpty(t, line)
	assert.Equal(t, "clips exceed target duration", gjson.Get(line, "msg").String())
	assert.Equal(t, int64(10), gjson.Get(line, "target_duration").Int())
	assert.Equal(t, `["long.ts"]`, gjson.Get(line, "clips|@ugly").Raw)
}

func TestNewService_NoWarningWithinTarget(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	m := manifestWith(map[string][]domain.Clip{"good morning": {clip("gm.ts", 1.5)}})

	// Default target of 10 covers the 8.08s opener.
	NewService(log, m, Options{OpenerFilename: "opener.ts", OpenerDuration: 8.08})

	assert.Empty(t, buf.String())
}

func TestNewService_WarnsAboutLongOpener(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	NewService(log, manifestWith(nil), Options{OpenerFilename: "opener.ts", OpenerDuration: 8.08, TargetDuration: 6})

	assert.Equal(t, `["opener.ts"]`, gjson.Get(buf.String(), "clips|@ugly").Raw)
}
