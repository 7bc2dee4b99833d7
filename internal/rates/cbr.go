package rates

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"kursbot/internal/domain"
)

// DefaultCBRURL is the daily quote feed of the Central Bank of Russia.
const DefaultCBRURL = "https://www.cbr.ru/scripts/XML_daily.asp"

const fetchTimeout = 10 * time.Second

// CBRClient fetches daily currency quotes from the CBR XML feed
type CBRClient struct {
	url    string
	client *http.Client
}

// NewCBRClient creates a client for the given feed URL.
// An empty url falls back to DefaultCBRURL.
func NewCBRClient(url string) *CBRClient {
	if url == "" {
		url = DefaultCBRURL
	}
	return &CBRClient{
		url:    url,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// valCurs mirrors the CBR daily XML document
type valCurs struct {
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Value    string `xml:"Value"`
}

// Fetch performs one round trip to the feed and extracts the quotes
// for the fixed currency set. Codes missing from the payload or
// carrying unparsable values are left out of the snapshot.
func (c *CBRClient) Fetch(ctx context.Context) (domain.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RateSnapshot{}, fmt.Errorf("fetch rates: unexpected status %d", resp.StatusCode)
	}

	doc, err := decodeValCurs(resp.Body)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("decode rates: %w", err)
	}

	wanted := make(map[string]bool, len(domain.CurrencyCodes))
	for _, code := range domain.CurrencyCodes {
		wanted[code] = true
	}

	quotes := make(map[string]float64, len(domain.CurrencyCodes))
	for _, v := range doc.Valutes {
		if !wanted[v.CharCode] {
			continue
		}
		value, err := parseDecimal(v.Value)
		if err != nil {
			continue
		}
		quotes[v.CharCode] = value
	}

	return domain.RateSnapshot{Quotes: quotes}, nil
}

// decodeValCurs parses the feed body. CBR serves windows-1251.
func decodeValCurs(r io.Reader) (*valCurs, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToLower(charset) {
		case "windows-1251":
			return charmap.Windows1251.NewDecoder().Reader(input), nil
		default:
			return nil, fmt.Errorf("unsupported charset %q", charset)
		}
	}

	var doc valCurs
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// parseDecimal parses a CBR value like "92,5058" (comma decimal separator)
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
}
