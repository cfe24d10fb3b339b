package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockDash/internal/model"
)

const (
	defaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	defaultQuoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"
)

// YahooFetcher implements Fetcher using Yahoo Finance public APIs.
type YahooFetcher struct {
	Client   *http.Client
	ChartURL string
	QuoteURL string
}

// NewYahooFetcher creates a Yahoo Finance fetcher. Empty URLs select the
// public endpoints; proxyURL is optional.
func NewYahooFetcher(chartURL, quoteURL, proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if chartURL == "" {
		chartURL = defaultChartURL
	}
	if quoteURL == "" {
		quoteURL = defaultQuoteURL
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		ChartURL: chartURL,
		QuoteURL: quoteURL,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooQuote is the response structure from the Yahoo quote API. Optional
// fields are pointers so that absent keys stay distinguishable from zero.
type yahooQuote struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string   `json:"symbol"`
			ShortName          string   `json:"shortName"`
			Currency           string   `json:"currency"`
			RegularMarketPrice *float64 `json:"regularMarketPrice"`
			PreviousClose      *float64 `json:"regularMarketPreviousClose"`
			Open               *float64 `json:"regularMarketOpen"`
			DayHigh            *float64 `json:"regularMarketDayHigh"`
			DayLow             *float64 `json:"regularMarketDayLow"`
			High52w            *float64 `json:"fiftyTwoWeekHigh"`
			Low52w             *float64 `json:"fiftyTwoWeekLow"`
			Volume             *float64 `json:"regularMarketVolume"`
			AvgVolume          *float64 `json:"averageDailyVolume3Month"`
			MarketCap          *float64 `json:"marketCap"`
			TrailingPE         *float64 `json:"trailingPE"`
			DividendYield      *float64 `json:"trailingAnnualDividendYield"`
			ReturnOnEq         *float64 `json:"returnOnEquity"`
			ProfitMargin       *float64 `json:"profitMargins"`
			DebtToEquity       *float64 `json:"debtToEquity"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func optional(v *float64) float64 {
	if v == nil {
		return model.Unknown
	}
	return *v
}

func (f *YahooFetcher) get(symbol, op, u string, out interface{}) error {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return &ProviderError{Symbol: symbol, Op: op, Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return &ProviderError{Symbol: symbol, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Symbol: symbol, Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return &ProviderError{Symbol: symbol, Op: op, Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(body))}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderError{Symbol: symbol, Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// FetchHistory retrieves daily OHLCV bars for the given lookback window.
// Returns ErrDataUnavailable when the provider has no rows for the
// symbol/period, and *ProviderError on any call failure.
func (f *YahooFetcher) FetchHistory(symbol string, period Period) ([]model.PricePoint, error) {
	u := fmt.Sprintf("%s/%s?interval=1d&range=%s", f.ChartURL, url.PathEscape(symbol), period)

	var chart yahooChart
	if err := f.get(symbol, "history", u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, &ProviderError{Symbol: symbol, Op: "history",
			Err: fmt.Errorf("api error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, ErrDataUnavailable
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrDataUnavailable
	}
	quote := result.Indicators.Quote[0]

	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		day := time.Unix(ts, 0).UTC()
		points = append(points, model.PricePoint{
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(quote.Volume[i])),
		})
	}
	if len(points) == 0 {
		return nil, ErrDataUnavailable
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	// Intraday bars from the current session can collapse onto one
	// calendar day; keep the last bar per day.
	deduped := points[:1]
	for _, p := range points[1:] {
		if p.Date.Equal(deduped[len(deduped)-1].Date) {
			deduped[len(deduped)-1] = p
			continue
		}
		deduped = append(deduped, p)
	}
	return deduped, nil
}

// FetchQuote retrieves per-symbol metadata. Fields the provider omits are
// set to model.Unknown.
func (f *YahooFetcher) FetchQuote(symbol string) (model.Quote, error) {
	u := fmt.Sprintf("%s?symbols=%s", f.QuoteURL, url.QueryEscape(symbol))

	var qr yahooQuote
	if err := f.get(symbol, "quote", u, &qr); err != nil {
		return model.Quote{}, err
	}
	if qr.QuoteResponse.Error != nil {
		return model.Quote{}, &ProviderError{Symbol: symbol, Op: "quote",
			Err: fmt.Errorf("api error %s: %s", qr.QuoteResponse.Error.Code, qr.QuoteResponse.Error.Description)}
	}
	if len(qr.QuoteResponse.Result) == 0 {
		return model.Quote{}, ErrDataUnavailable
	}

	r := qr.QuoteResponse.Result[0]
	q := model.NewQuote(symbol)
	if r.Symbol != "" {
		q.Symbol = r.Symbol
	}
	q.ShortName = r.ShortName
	q.Currency = r.Currency
	q.Price = optional(r.RegularMarketPrice)
	q.PreviousClose = optional(r.PreviousClose)
	q.Open = optional(r.Open)
	q.DayHigh = optional(r.DayHigh)
	q.DayLow = optional(r.DayLow)
	q.High52w = optional(r.High52w)
	q.Low52w = optional(r.Low52w)
	q.Volume = optional(r.Volume)
	q.AvgVolume = optional(r.AvgVolume)
	q.MarketCap = optional(r.MarketCap)
	q.TrailingPE = optional(r.TrailingPE)
	q.DividendYield = optional(r.DividendYield)
	q.ReturnOnEq = optional(r.ReturnOnEq)
	q.ProfitMargin = optional(r.ProfitMargin)
	q.DebtToEquity = optional(r.DebtToEquity)
	return q, nil
}
