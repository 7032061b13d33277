package router_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-ai-bot/internal/router"
	"weather-ai-bot/pkg/datemath"
)

type fakeWeather struct {
	mu    sync.Mutex
	calls []string
	reply string
}

func (f *fakeWeather) Fetch(ctx context.Context, city string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, city)
	return f.reply
}

type fakeKnowledge struct {
	mu         sync.Mutex
	utterances []string
	dates      []string
	reply      string
}

func (f *fakeKnowledge) Ask(ctx context.Context, utterance string, referenceDate string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.utterances = append(f.utterances, utterance)
	f.dates = append(f.dates, referenceDate)
	return f.reply
}

type recordingTracer struct {
	mu     sync.Mutex
	traces []router.Trace
}

func (r *recordingTracer) Trace(ctx context.Context, t router.Trace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.traces = append(r.traces, t)
}

var monday = time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC)

func newRouter(t *testing.T, w *fakeWeather, k *fakeKnowledge, tr router.Tracer) *router.IntentRouter {
	t.Helper()
	r, err := router.New(router.Config{
		Weather:   w,
		Knowledge: k,
		Clock:     datemath.FixedClock(monday),
		Tracer:    tr,
	})
	require.NoError(t, err)
	return r
}

func TestNew_RequiresCollaborators(t *testing.T) {
	clock := datemath.FixedClock(monday)

	_, err := router.New(router.Config{Knowledge: &fakeKnowledge{}, Clock: clock})
	assert.Error(t, err)

	_, err = router.New(router.Config{Weather: &fakeWeather{}, Clock: clock})
	assert.Error(t, err)

	_, err = router.New(router.Config{Weather: &fakeWeather{}, Knowledge: &fakeKnowledge{}})
	assert.Error(t, err)
}

func TestRoute_Date(t *testing.T) {
	w, k := &fakeWeather{}, &fakeKnowledge{}
	r := newRouter(t, w, k, nil)

	got := r.Route(context.Background(), "What is today's date?")

	assert.Equal(t, "Today is Monday, March 03, 2025.", got)
	assert.Empty(t, w.calls)
	assert.Empty(t, k.utterances)
}

func TestRoute_DateWithoutPhrase(t *testing.T) {
	for _, in := range []string{"Tell me the date", "date please", "give me the time"} {
		w, k := &fakeWeather{}, &fakeKnowledge{}
		r := newRouter(t, w, k, nil)

		assert.Equal(t, "Today is Monday, March 03, 2025.", r.Route(context.Background(), in), in)
		assert.Empty(t, k.utterances, in)
	}
}

func TestRoute_Weather(t *testing.T) {
	w := &fakeWeather{reply: "The weather in Tokyo is clear sky with a temperature of 18.20°C."}
	k := &fakeKnowledge{}
	r := newRouter(t, w, k, nil)

	got := r.Route(context.Background(), "What's the weather in Tokyo?")

	assert.Equal(t, w.reply, got)
	assert.Equal(t, []string{"Tokyo"}, w.calls)
	assert.Empty(t, k.utterances)
}

func TestRoute_WeatherReplyVerbatim(t *testing.T) {
	w := &fakeWeather{reply: "  Sorry, couldn't fetch weather for Atlantis.\n"}
	r := newRouter(t, w, &fakeKnowledge{}, nil)

	got := r.Route(context.Background(), "forecast for Atlantis")

	assert.Equal(t, w.reply, got)
}

func TestRoute_WeatherWithoutCity(t *testing.T) {
	w, k := &fakeWeather{}, &fakeKnowledge{}
	r := newRouter(t, w, k, nil)

	got := r.Route(context.Background(), "weather please")

	assert.Equal(t, router.ReplyClarifyCity, got)
	assert.Empty(t, w.calls, "weather collaborator must not be called without a city")
	assert.Empty(t, k.utterances)
}

func TestRoute_Knowledge(t *testing.T) {
	w := &fakeWeather{}
	k := &fakeKnowledge{reply: "\n  William Shakespeare wrote Hamlet.  \n"}
	r := newRouter(t, w, k, nil)

	got := r.Route(context.Background(), "Who wrote Hamlet?")

	assert.Equal(t, "William Shakespeare wrote Hamlet.", got)
	require.Len(t, k.utterances, 1)
	assert.Equal(t, "Who wrote Hamlet?", k.utterances[0])
	assert.Equal(t, "Monday, March 03, 2025", k.dates[0])
	assert.Empty(t, w.calls)
}

func TestRoute_Idempotent(t *testing.T) {
	w := &fakeWeather{reply: "The weather in Paris is light rain with a temperature of 9.00°C."}
	k := &fakeKnowledge{reply: "Paris is the capital of France."}
	r := newRouter(t, w, k, nil)

	for _, in := range []string{"What is today's date?", "weather in Paris", "weather please", "What is the capital of France?"} {
		first := r.Route(context.Background(), in)
		second := r.Route(context.Background(), in)
		assert.Equal(t, first, second, in)
	}
}

func TestRoute_Tracer(t *testing.T) {
	tr := &recordingTracer{}
	r := newRouter(t, &fakeWeather{reply: "ok"}, &fakeKnowledge{reply: "ok"}, tr)

	ctx := context.Background()
	r.Route(ctx, "what time is it")
	r.Route(ctx, "forecast for New York today")
	r.Route(ctx, "weather please")
	r.Route(ctx, "Who is Ada Lovelace?")

	require.Len(t, tr.traces, 4)
	assert.Equal(t, router.Trace{Intent: router.IntentDate, Branch: router.BranchDate}, tr.traces[0])
	assert.Equal(t, router.Trace{Intent: router.IntentWeather, Branch: router.BranchWeather, City: "New York"}, tr.traces[1])
	assert.Equal(t, router.Trace{Intent: router.IntentWeather, Branch: router.BranchClarify}, tr.traces[2])
	assert.Equal(t, router.Trace{Intent: router.IntentKnowledge, Branch: router.BranchKnowledge}, tr.traces[3])
}

func TestRoute_TracerDoesNotChangeReply(t *testing.T) {
	w := &fakeWeather{reply: "sunny"}
	k := &fakeKnowledge{reply: "answer"}
	plain := newRouter(t, w, k, nil)
	traced := newRouter(t, w, k, &recordingTracer{})

	for _, in := range []string{"what's the date", "weather in Rome", "weather please", "why is the sky blue"} {
		assert.Equal(t, plain.Route(context.Background(), in), traced.Route(context.Background(), in), in)
	}
}

func TestRoute_Concurrent(t *testing.T) {
	w := &fakeWeather{reply: "The weather in Oslo is snow with a temperature of -3.00°C."}
	k := &fakeKnowledge{reply: "42"}
	r := newRouter(t, w, k, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.Equal(t, w.reply, r.Route(context.Background(), "snow in Oslo"))
			} else {
				assert.Equal(t, "42", r.Route(context.Background(), "meaning of life?"))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, w.calls, 10)
	assert.Len(t, k.utterances, 10)
}

func TestMultiTracer(t *testing.T) {
	a, b := &recordingTracer{}, &recordingTracer{}
	tr := router.MultiTracer(a, nil, b)

	tr.Trace(context.Background(), router.Trace{Intent: router.IntentDate, Branch: router.BranchDate})

	assert.Len(t, a.traces, 1)
	assert.Len(t, b.traces, 1)
}
