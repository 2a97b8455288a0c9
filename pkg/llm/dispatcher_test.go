package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/models"
)

type fakeClient struct {
	mu        sync.Mutex
	responses []*Response
	errs      []error
	calls     int
	inflight  atomic.Int32
	maxSeen   atomic.Int32
	delay     time.Duration
}

func (f *fakeClient) Model() string { return "fake-model" }

func (f *fakeClient) Chat(ctx context.Context, _ Request) (*Response, error) {
	cur := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		prev := f.maxSeen.Load()
		if cur <= prev || f.maxSeen.CompareAndSwap(prev, cur) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return &Response{Content: "ok", PromptTokens: 10, CompletionTokens: 5, NativeTokens: 15}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		ModelTiers: map[string]models.TierBinding{
			config.TierFast: {Provider: "openai", Model: "fake-model"},
		},
		ProviderAPIKeys: map[string]string{"openai": "test-key"},
		LLMMaxAttempts:  3,
		ModelPrices: map[string]config.ModelPrice{
			"fake-model": {PromptPerM: 1.0, CompletionPerM: 2.0},
		},
	}
}

func dispatcherWith(t *testing.T, client *fakeClient) *Dispatcher {
	t.Helper()
	d := NewDispatcher(testConfig(), nil)
	d.SetClientFactory(func(ClientConfig) (ProviderClient, error) {
		return client, nil
	})
	return d
}

func spec() CallSpec {
	return CallSpec{
		User:          &models.UserContext{UserID: "u1"},
		MissionID:     "m1",
		Tier:          config.TierFast,
		MaxConcurrent: 2,
	}
}

func TestDispatcher_SuccessRecordsUsage(t *testing.T) {
	client := &fakeClient{}
	d := dispatcherWith(t, client)

	res, err := d.Call(context.Background(), spec(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Content)
	assert.Equal(t, "openai", res.Usage.Provider)
	assert.Equal(t, "fake-model", res.Usage.ModelName)
	assert.Equal(t, 10, res.Usage.PromptTokens)
	// 10 prompt @ $1/M + 5 completion @ $2/M
	assert.InDelta(t, 10.0/1e6+5.0*2/1e6, res.Usage.Cost, 1e-12)
}

func TestDispatcher_RetriesTransientErrors(t *testing.T) {
	client := &fakeClient{
		errs: []error{errors.New("connection reset"), nil},
	}
	d := dispatcherWith(t, client)

	res, err := d.Call(context.Background(), spec(), Request{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Content)
	assert.Equal(t, 2, client.calls)
}

func TestDispatcher_ExhaustsAttempts(t *testing.T) {
	client := &fakeClient{
		errs: []error{
			errors.New("network down"),
			errors.New("network down"),
			errors.New("network down"),
		},
	}
	d := dispatcherWith(t, client)

	_, err := d.Call(context.Background(), spec(), Request{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderNetwork)
	assert.Equal(t, 3, client.calls)
}

func TestDispatcher_StructuredOutputParsed(t *testing.T) {
	client := &fakeClient{responses: []*Response{{
		Content:          `{"answer": "42", "scratchpad_update": "remember the question"}`,
		PromptTokens:     1,
		CompletionTokens: 1,
	}}}
	d := dispatcherWith(t, client)

	var out struct {
		Answer string `json:"answer"`
	}
	res, err := d.Call(context.Background(), spec(), Request{
		SchemaName: "test_schema",
		Schema:     GenerateSchema[struct {
			Answer string `json:"answer"`
		}](),
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "42", out.Answer)
	assert.Equal(t, "remember the question", res.ScratchpadUpdate)
}

func TestDispatcher_PerUserSemaphoreBoundsConcurrency(t *testing.T) {
	client := &fakeClient{delay: 50 * time.Millisecond}
	d := dispatcherWith(t, client)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Call(context.Background(), spec(), Request{}, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, client.maxSeen.Load(), int32(2),
		"no more than MaxConcurrent calls in flight for one user")
}

func TestDispatcher_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.ProviderAPIKeys = map[string]string{}
	d := NewDispatcher(cfg, nil)

	_, err := d.Call(context.Background(), spec(), Request{}, nil)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestDispatcher_UnknownTier(t *testing.T) {
	d := dispatcherWith(t, &fakeClient{})
	s := spec()
	s.Tier = "galactic"

	_, err := d.Call(context.Background(), s, Request{}, nil)
	assert.ErrorIs(t, err, config.ErrUnknownTier)
}

func TestClassify(t *testing.T) {
	assert.Nil(t, Classify(nil))
	assert.True(t, IsRetryable(Classify(errors.New("dial tcp: connection refused"))))
	assert.False(t, IsRetryable(Classify(context.Canceled)))
}
