package googlesheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// Client fetches the CSV export of a Google Sheet. No API key: it relies
// on the sheet being link-readable, same as the old frontend did.
type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: "https://docs.google.com",
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCSV downloads the export for one sub-sheet (gid). Returns the raw
// CSV text; parsing is the pipeline's job.
func (c *Client) FetchCSV(ctx context.Context, spreadsheetID, sheetID string) (string, error) {
	if sheetID == "" {
		sheetID = "0"
	}
	url := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", c.BaseURL, spreadsheetID, sheetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	// Google serves an HTML interstitial to clients without a browser UA.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request sheet export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sheet export: %w", err)
	}
	return string(body), nil
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSpreadsheetID pulls the spreadsheet id out of a full Google
// Sheets URL. Returns "" when the URL doesn't look like one.
func ExtractSpreadsheetID(url string) string {
	m := spreadsheetIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
