package collector

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"StockDash/internal/model"
)

const chartOK = `{"chart":{"result":[{"timestamp":[1717027200,1717113600,1717200000],
"indicators":{"quote":[{"open":[99.5,null,101.0],"high":[100.5,null,102.0],
"low":[99.0,null,100.5],"close":[100.0,null,101.5],"volume":[1000,null,2000]}]}}],"error":null}}`

const chartEmpty = `{"chart":{"result":[],"error":null}}`

const chartAPIError = `{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

const quoteOK = `{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple Inc.",
"currency":"USD","regularMarketPrice":189.5,"regularMarketPreviousClose":188.0,
"fiftyTwoWeekHigh":199.6,"fiftyTwoWeekLow":164.1,"regularMarketVolume":52000000}],"error":null}}`

const quoteEmpty = `{"quoteResponse":{"result":[],"error":null}}`

func newTestFetcher(t *testing.T, chartBody, quoteBody string, status int) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if r.URL.Path == "/quote" {
			fmt.Fprint(w, quoteBody)
			return
		}
		fmt.Fprint(w, chartBody)
	}))
	t.Cleanup(srv.Close)
	return NewYahooFetcher(srv.URL+"/chart", srv.URL+"/quote", "")
}

func TestFetchHistory_SkipsNullBarsAndSortsAscending(t *testing.T) {
	f := newTestFetcher(t, chartOK, quoteOK, http.StatusOK)

	points, err := f.FetchHistory("AAPL", Period1Mo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points after null-bar skip, got %d", len(points))
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("points not ascending by date")
	}
	if points[1].Close != 101.5 || points[1].Volume != 2000 {
		t.Errorf("unexpected last point: %+v", points[1])
	}
	if h, m, s := points[0].Date.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("expected calendar-day dates, got %v", points[0].Date)
	}
}

func TestFetchHistory_EmptyResultIsDataUnavailable(t *testing.T) {
	f := newTestFetcher(t, chartEmpty, quoteOK, http.StatusOK)

	_, err := f.FetchHistory("AAPL", PeriodMax)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		t.Error("empty result must not be a ProviderError")
	}
}

func TestFetchHistory_APIErrorIsProviderError(t *testing.T) {
	f := newTestFetcher(t, chartAPIError, quoteOK, http.StatusOK)

	_, err := f.FetchHistory("NOPE", Period1Y)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Symbol != "NOPE" || pe.Op != "history" {
		t.Errorf("unexpected error context: %+v", pe)
	}
	if errors.Is(err, ErrDataUnavailable) {
		t.Error("API fault must not be ErrDataUnavailable")
	}
}

func TestFetchHistory_HTTPStatusIsProviderError(t *testing.T) {
	f := newTestFetcher(t, "throttled", "throttled", http.StatusTooManyRequests)

	_, err := f.FetchHistory("AAPL", Period1Mo)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestFetchHistory_TransportFaultIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	f := NewYahooFetcher(srv.URL+"/chart", srv.URL+"/quote", "")
	srv.Close()

	_, err := f.FetchHistory("AAPL", Period1Mo)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestFetchQuote_AbsentFieldsAreUnknown(t *testing.T) {
	f := newTestFetcher(t, chartOK, quoteOK, http.StatusOK)

	q, err := f.FetchQuote("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price != 189.5 {
		t.Errorf("expected price 189.5, got %v", q.Price)
	}
	if q.ShortName != "Apple Inc." || q.Currency != "USD" {
		t.Errorf("unexpected identity fields: %+v", q)
	}
	if !model.IsUnknown(q.MarketCap) || !model.IsUnknown(q.TrailingPE) {
		t.Error("absent fields should carry the Unknown sentinel")
	}
	if model.IsUnknown(q.High52w) {
		t.Error("present field marked Unknown")
	}
	if !q.HasPrice() {
		t.Error("expected HasPrice true")
	}
}

func TestFetchQuote_NoResultIsDataUnavailable(t *testing.T) {
	f := newTestFetcher(t, chartOK, quoteEmpty, http.StatusOK)

	_, err := f.FetchQuote("NOPE")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	ok := &MockFetcher{Quote: func() model.Quote {
		q := model.NewQuote("AAPL")
		q.Price = 189.5
		return q
	}()}
	if !Validate(ok, "AAPL") {
		t.Error("expected valid symbol")
	}

	noPrice := &MockFetcher{Quote: model.NewQuote("NOPE")}
	if Validate(noPrice, "NOPE") {
		t.Error("expected invalid when provider has no price field")
	}

	broken := &MockFetcher{QuoteErr: &ProviderError{Symbol: "AAPL", Op: "quote", Err: errors.New("timeout")}}
	if Validate(broken, "AAPL") {
		t.Error("expected invalid on provider failure")
	}
}

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods {
		got, err := ParsePeriod(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v", p, got, err)
		}
	}
	if _, err := ParsePeriod("10y"); err == nil {
		t.Error("expected error for unknown period")
	}
}
