package dune

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
)

func validRow() map[string]any {
	return map[string]any{
		"address":         "0xaaa",
		"transactionType": "buy",
		"transactionTime": "2025-01-15 18:30:00.000 UTC",
		"shares":          100.0,
		"pricePerShare":   0.42,
		"amountUSDC":      42.0,
	}
}

func TestDecodeRow(t *testing.T) {
	tx, err := decodeRow(7, validRow())
	if err != nil {
		t.Fatalf("decodeRow() unexpected error: %v", err)
	}
	if tx.Address != "0xaaa" {
		t.Errorf("Address = %q, want 0xaaa", tx.Address)
	}
	if tx.Side != pnl.SideBuy {
		t.Errorf("Side = %v, want buy", tx.Side)
	}
	want := time.Date(2025, time.January, 15, 18, 30, 0, 0, time.UTC)
	if !tx.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", tx.Time, want)
	}
	if !tx.Shares.Equal(pnl.Q(100)) {
		t.Errorf("Shares = %s, want 100", tx.Shares)
	}
	if !tx.AmountUSDC.Equal(pnl.M(42)) {
		t.Errorf("AmountUSDC = %s, want 42", tx.AmountUSDC.Plain())
	}
}

func TestDecodeRow_NumbersAsStrings(t *testing.T) {
	// Dune serializes high-precision columns as decimal strings.
	row := validRow()
	row["shares"] = "100.000001"
	row["amountUSDC"] = "42.5"

	tx, err := decodeRow(0, row)
	if err != nil {
		t.Fatalf("decodeRow() unexpected error: %v", err)
	}
	if !tx.AmountUSDC.Equal(pnl.M(42.5)) {
		t.Errorf("AmountUSDC = %s, want 42.5", tx.AmountUSDC.Plain())
	}
}

func TestDecodeRow_UnrecognizedTypeIsKept(t *testing.T) {
	// Unknown transaction types are not a decoding error; the partitioner
	// excludes them later.
	row := validRow()
	row["transactionType"] = "redeem"

	tx, err := decodeRow(0, row)
	if err != nil {
		t.Fatalf("decodeRow() unexpected error: %v", err)
	}
	if tx.Side != pnl.SideOther {
		t.Errorf("Side = %v, want other", tx.Side)
	}
}

func TestDecodeRow_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(map[string]any)
		wants  string // substring expected in the error
	}{
		{"missing type", func(r map[string]any) { delete(r, "transactionType") }, "transactionType"},
		{"missing time", func(r map[string]any) { delete(r, "transactionTime") }, "transactionTime"},
		{"missing address", func(r map[string]any) { delete(r, "address") }, "address"},
		{"missing shares", func(r map[string]any) { delete(r, "shares") }, "shares"},
		{"missing price", func(r map[string]any) { delete(r, "pricePerShare") }, "pricePerShare"},
		{"missing amount", func(r map[string]any) { delete(r, "amountUSDC") }, "amountUSDC"},
		{"null field", func(r map[string]any) { r["amountUSDC"] = nil }, "amountUSDC"},
		{"blank type", func(r map[string]any) { r["transactionType"] = " " }, "transactionType"},
		{"zoneless time", func(r map[string]any) { r["transactionTime"] = "2025-01-15 18:30:00" }, "transactionTime"},
		{"non numeric shares", func(r map[string]any) { r["shares"] = "a lot" }, "shares"},
		{"wrong shape", func(r map[string]any) { r["address"] = 12.0 }, "address"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRow()
			tc.mutate(row)
			_, err := decodeRow(3, row)
			if err == nil {
				t.Fatal("decodeRow() expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wants) {
				t.Errorf("error %q does not mention %q", err, tc.wants)
			}
			if !strings.Contains(err.Error(), "row 3") {
				t.Errorf("error %q does not address the row", err)
			}
		})
	}
}

func TestResults(t *testing.T) {
	const payload = `{
		"execution_id": "01HV",
		"state": "QUERY_STATE_COMPLETED",
		"result": {
			"rows": [
				{"address": "0xaaa", "transactionType": "buy", "transactionTime": "2025-01-15 18:30:00.000 UTC", "shares": 10, "pricePerShare": 0.5, "amountUSDC": 5},
				{"address": "0xaaa", "transactionType": "sell", "transactionTime": "2025-01-16 09:00:00.000 UTC", "shares": 10, "pricePerShare": 0.9, "amountUSDC": 9}
			],
			"metadata": {"total_row_count": 2}
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			http.Error(w, "invalid API Key", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	txs, err := results(server.Client(), server.URL, "test-key", 123)
	if err != nil {
		t.Fatalf("results() unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("results() returned %d transactions, want 2", len(txs))
	}
	if txs[0].Side != pnl.SideBuy || txs[1].Side != pnl.SideSell {
		t.Errorf("results() sides = %v, %v, want buy, sell", txs[0].Side, txs[1].Side)
	}
}

func TestResults_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid API Key", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := results(server.Client(), server.URL, "bad-key", 123)
	if err == nil {
		t.Fatal("results() expected an error for an unauthorized request")
	}
}
