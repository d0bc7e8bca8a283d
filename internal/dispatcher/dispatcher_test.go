package dispatcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/classifier"
	"github.com/kitbuilder587/crypto-price-bot/internal/coinlore"
	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
	llmMock "github.com/kitbuilder587/crypto-price-bot/internal/llm/mock"
	"github.com/kitbuilder587/crypto-price-bot/internal/metrics"
	"github.com/kitbuilder587/crypto-price-bot/internal/tools"
)

type fakeSource struct {
	top       []domain.AssetRecord
	topErr    error
	asset     *domain.AssetRecord
	assetErr  error
	calls     int
	lastID    string
	lastLimit int
}

func (f *fakeSource) TopTickers(_ context.Context, limit int) ([]domain.AssetRecord, error) {
	f.calls++
	f.lastLimit = limit
	return f.top, f.topErr
}

func (f *fakeSource) Ticker(_ context.Context, id string) (*domain.AssetRecord, error) {
	f.calls++
	f.lastID = id
	return f.asset, f.assetErr
}

type stubClassifier struct {
	sel   domain.Selection
	err   error
	calls int
}

func (s *stubClassifier) Classify(context.Context, domain.Request) (domain.Selection, error) {
	s.calls++
	return s.sel, s.err
}

var bitcoin = &domain.AssetRecord{ID: "90", Symbol: "BTC", Name: "Bitcoin", PriceUSD: "65000.0"}

func newDispatcher(c classifier.Classifier, src tools.PriceSource) *Dispatcher {
	return New(c, tools.NewDefaultRegistry(src, nil), zap.NewNop(), nil)
}

func TestDispatch_Selections(t *testing.T) {
	tests := []struct {
		name      string
		sel       domain.Selection
		src       *fakeSource
		wantText  string
		wantOK    bool
		wantCalls int
	}{
		{
			name:      "asset by id",
			sel:       domain.AssetByID("90"),
			src:       &fakeSource{asset: bitcoin},
			wantText:  "Bitcoin (BTC) current price is $65000.0",
			wantOK:    true,
			wantCalls: 1,
		},
		{
			name:      "list",
			sel:       domain.ListTopAssets(),
			src:       &fakeSource{top: []domain.AssetRecord{*bitcoin, {ID: "80", Symbol: "ETH", PriceUSD: "3000"}}},
			wantText:  "BTC (id: 90): $65000.0\nETH (id: 80): $3000",
			wantOK:    true,
			wantCalls: 1,
		},
		{
			name:      "failure passes through verbatim",
			sel:       domain.AssetByID("999999"),
			src:       &fakeSource{assetErr: domain.ErrAssetNotFound},
			wantText:  "Failed to fetch coin price.",
			wantOK:    false,
			wantCalls: 1,
		},
		{
			name:      "list failure",
			sel:       domain.ListTopAssets(),
			src:       &fakeSource{topErr: errors.New("503")},
			wantText:  "Failed to fetch coin prices.",
			wantOK:    false,
			wantCalls: 1,
		},
		{
			name:      "no tool returns classifier reply",
			sel:       domain.NoTool("Hi there"),
			src:       &fakeSource{},
			wantText:  "Hi there",
			wantOK:    true,
			wantCalls: 0,
		},
		{
			name:      "blank id degrades to list",
			sel:       domain.AssetByID("  "),
			src:       &fakeSource{top: []domain.AssetRecord{*bitcoin}},
			wantText:  "BTC (id: 90): $65000.0",
			wantOK:    true,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDispatcher(&stubClassifier{sel: tt.sel}, tt.src)

			out, err := d.Dispatch(context.Background(), domain.NewRequest("anything about prices", ""))
			require.NoError(t, err)

			assert.Equal(t, tt.wantText, out.Text())
			assert.Equal(t, tt.wantOK, out.Result.OK())
			assert.Equal(t, tt.wantCalls, tt.src.calls)
		})
	}
}

func TestTurn_RunsOnce(t *testing.T) {
	src := &fakeSource{asset: bitcoin}
	d := newDispatcher(&stubClassifier{sel: domain.AssetByID("90")}, src)

	turn := d.NewTurn(domain.NewRequest("", "90"))
	assert.Equal(t, AwaitingRequest, turn.State())

	_, err := turn.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ToolSelected, turn.State())

	_, err = turn.Run(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyDispatched)
	assert.Equal(t, 1, src.calls)
}

func TestDispatch_EmptyRequest(t *testing.T) {
	c := &stubClassifier{sel: domain.ListTopAssets()}
	src := &fakeSource{}
	d := newDispatcher(c, src)

	_, err := d.Dispatch(context.Background(), domain.Request{Text: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyRequest)
	assert.Zero(t, c.calls)
	assert.Zero(t, src.calls)
}

func TestDispatch_TooLongRequest(t *testing.T) {
	c := &stubClassifier{sel: domain.ListTopAssets()}
	src := &fakeSource{}
	d := newDispatcher(c, src)

	_, err := d.Dispatch(context.Background(), domain.NewRequest(strings.Repeat("price ", domain.MaxRequestLength), ""))

	assert.ErrorIs(t, err, domain.ErrRequestTooLong)
	assert.Zero(t, c.calls)
	assert.Zero(t, src.calls)
}

func TestDispatch_ClassifierError(t *testing.T) {
	boom := errors.New("boom")
	src := &fakeSource{}
	d := newDispatcher(&stubClassifier{err: boom}, src)

	_, err := d.Dispatch(context.Background(), domain.NewRequest("prices", ""))

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, src.calls)
}

func TestDispatch_UnregisteredTool(t *testing.T) {
	d := New(&stubClassifier{sel: domain.ListTopAssets()}, tools.NewRegistry(), nil, nil)

	_, err := d.Dispatch(context.Background(), domain.NewRequest("prices", ""))
	assert.ErrorIs(t, err, tools.ErrUnknownTool)
}

func TestDispatch_RecordsMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	src := &fakeSource{assetErr: domain.ErrAssetNotFound}
	d := New(&stubClassifier{sel: domain.AssetByID("1")}, tools.NewDefaultRegistry(src, nil), nil, m)

	_, err := d.Dispatch(context.Background(), domain.NewRequest("price of 1", ""))
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DispatchTotal.WithLabelValues("asset_by_id")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ToolCallsTotal.WithLabelValues(domain.ToolAssetByID, "failure")))
}

// полный путь: правила + инструменты + httptest вместо CoinLore
func TestDispatch_EndToEndWithRules(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tickers/":
			w.Write([]byte(`{"data":[{"id":"90","symbol":"BTC","name":"Bitcoin","price_usd":"65000.0"},{"id":"80","symbol":"ETH","name":"Ethereum","price_usd":"3000.12"}]}`))
		case "/ticker/":
			if r.URL.Query().Get("id") == "90" {
				w.Write([]byte(`[{"id":"90","symbol":"BTC","name":"Bitcoin","price_usd":"65000.0"}]`))
				return
			}
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	src := coinlore.New(coinlore.Config{BaseURL: server.URL, Timeout: 5 * time.Second}, nil, nil)
	d := New(classifier.NewRules(), tools.NewDefaultRegistry(src, nil), nil, nil)

	tests := []struct {
		req  domain.Request
		want string
	}{
		{domain.NewRequest("Get me all coin prices.", ""), "BTC (id: 90): $65000.0\nETH (id: 80): $3000.12"},
		{domain.NewRequest("What is the price of the coin with ID 90?", "90"), "Bitcoin (BTC) current price is $65000.0"},
		{domain.NewRequest("What is the price of the coin with ID 12345?", "12345"), "Failed to fetch coin price."},
		{domain.NewRequest("good morning", ""), classifier.HelpReply},
	}

	for _, tt := range tests {
		t.Run(tt.req.Text, func(t *testing.T) {
			before := hits
			out, err := d.Dispatch(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Text())
			assert.LessOrEqual(t, hits-before, 1)
		})
	}
}

func TestDispatch_ModelClassifier(t *testing.T) {
	client := llmMock.New().WithToolCall(domain.ToolAssetByID, `{"id":"90"}`)
	src := &fakeSource{asset: bitcoin}
	reg := tools.NewDefaultRegistry(src, nil)
	d := New(classifier.NewModel(client, reg.Specs(), nil, nil), reg, nil, nil)

	out, err := d.Dispatch(context.Background(), domain.NewRequest("how much is bitcoin right now?", ""))
	require.NoError(t, err)

	assert.Equal(t, "Bitcoin (BTC) current price is $65000.0", out.Text())
	assert.Equal(t, "90", src.lastID)
	assert.Equal(t, 1, src.calls)
}
