package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dailyFeed = `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs Date="02.09.2026" name="Foreign Currency Market">
	<Valute ID="R01235">
		<NumCode>840</NumCode>
		<CharCode>USD</CharCode>
		<Nominal>1</Nominal>
		<Name>Dollar</Name>
		<Value>92,5058</Value>
	</Valute>
	<Valute ID="R01239">
		<NumCode>978</NumCode>
		<CharCode>EUR</CharCode>
		<Nominal>1</Nominal>
		<Name>Euro</Name>
		<Value>99,0013</Value>
	</Valute>
	<Valute ID="R01375">
		<NumCode>156</NumCode>
		<CharCode>CNY</CharCode>
		<Nominal>1</Nominal>
		<Name>Yuan</Name>
		<Value>12,7001</Value>
	</Valute>
	<Valute ID="R01335">
		<NumCode>398</NumCode>
		<CharCode>KZT</CharCode>
		<Nominal>100</Nominal>
		<Name>Tenge</Name>
		<Value>19,2780</Value>
	</Valute>
	<Valute ID="R01035">
		<NumCode>826</NumCode>
		<CharCode>GBP</CharCode>
		<Nominal>1</Nominal>
		<Name>Pound</Name>
		<Value>117,2000</Value>
	</Valute>
</ValCurs>`

func TestCBRClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=windows-1251")
		w.Write([]byte(dailyFeed))
	}))
	defer srv.Close()

	client := NewCBRClient(srv.URL)

	snapshot, err := client.Fetch(context.Background())

	assert.NoError(t, err)
	assert.Len(t, snapshot.Quotes, 4)
	assert.InDelta(t, 92.5058, snapshot.Quotes["USD"], 0.0001)
	assert.InDelta(t, 99.0013, snapshot.Quotes["EUR"], 0.0001)
	assert.InDelta(t, 12.7001, snapshot.Quotes["CNY"], 0.0001)
	assert.InDelta(t, 19.2780, snapshot.Quotes["KZT"], 0.0001)
	// codes outside the fixed set are not carried over
	_, ok := snapshot.Quote("GBP")
	assert.False(t, ok)
}

func TestCBRClient_Fetch_PartialPayload(t *testing.T) {
	partial := `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs>
	<Valute><CharCode>USD</CharCode><Value>92,50</Value></Valute>
	<Valute><CharCode>EUR</CharCode><Value>99,00</Value></Valute>
	<Valute><CharCode>CNY</CharCode><Value>not-a-number</Value></Valute>
</ValCurs>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(partial))
	}))
	defer srv.Close()

	client := NewCBRClient(srv.URL)

	snapshot, err := client.Fetch(context.Background())

	// partial success is success: missing and unparsable codes are absent
	assert.NoError(t, err)
	assert.Len(t, snapshot.Quotes, 2)
	_, hasCNY := snapshot.Quote("CNY")
	assert.False(t, hasCNY)
	_, hasKZT := snapshot.Quote("KZT")
	assert.False(t, hasKZT)
}

func TestCBRClient_Fetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCBRClient(srv.URL)

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestCBRClient_Fetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not xml at all"))
	}))
	defer srv.Close()

	client := NewCBRClient(srv.URL)

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestCBRClient_Fetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewCBRClient(srv.URL)

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "comma separator", input: "92,5058", expected: 92.5058},
		{name: "dot separator", input: "92.5058", expected: 92.5058},
		{name: "surrounding whitespace", input: " 19,2780 ", expected: 19.278},
		{name: "integer", input: "100", expected: 100},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDecimal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0.0001)
		})
	}
}
