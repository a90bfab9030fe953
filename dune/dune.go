// Package dune implements a minimal client for the Dune Analytics results
// API. It retrieves the latest result set of a saved query and decodes its
// loosely-typed rows into strongly-typed transactions, rejecting malformed
// rows at this boundary so the matching core never sees them.
package dune

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
)

const apiBase = "https://api.dune.com/api/v1"

// Results fetches the latest stored results of a saved Dune query and
// decodes every row into a transaction. Any network failure, non-200
// status, or malformed row aborts with an error; there are no retries and
// no partial results.
func Results(apiKey string, queryID int) ([]pnl.Transaction, error) {
	return results(newDailyCachingClient(), apiBase, apiKey, queryID)
}

func results(client *http.Client, base, apiKey string, queryID int) ([]pnl.Transaction, error) {
	// https://api.dune.com/api/v1/query/{id}/results?api_key=...
	// The interesting payload is the result.rows array; the envelope also
	// carries execution metadata we don't care about.
	addr := fmt.Sprintf("%s/query/%d/results?api_key=%s", base, queryID, apiKey)

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch results of dune query %d: %w", queryID, err)
	}

	jrows, err := jsonpath.Get("$.result.rows", jobj)
	if err != nil {
		return nil, fmt.Errorf("dune query %d: response has no result rows: %w", queryID, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("dune query %d: result rows is not an array", queryID)
	}

	txs := make([]pnl.Transaction, 0, len(rows))
	for i, jrow := range rows {
		tx, err := decodeRow(i, jrow)
		if err != nil {
			return nil, fmt.Errorf("dune query %d: %w", queryID, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// decodeRow converts one loosely-typed result row into a transaction.
// Every required field must be present and well shaped; the row's position
// in the result set is recorded for deterministic FIFO tie-breaks.
func decodeRow(ordinal int, jrow any) (pnl.Transaction, error) {
	row, ok := jrow.(map[string]any)
	if !ok {
		return pnl.Transaction{}, fmt.Errorf("row %d: not a JSON object", ordinal)
	}

	address, err := stringField(row, ordinal, "address")
	if err != nil {
		return pnl.Transaction{}, err
	}

	rawSide, err := stringField(row, ordinal, "transactionType")
	if err != nil {
		return pnl.Transaction{}, err
	}
	side, err := pnl.ParseSide(rawSide)
	if err != nil {
		return pnl.Transaction{}, fmt.Errorf("row %d: field \"transactionType\": %w", ordinal, err)
	}

	rawTime, err := stringField(row, ordinal, "transactionTime")
	if err != nil {
		return pnl.Transaction{}, err
	}
	at, err := pnl.ParseTime(rawTime)
	if err != nil {
		return pnl.Transaction{}, fmt.Errorf("row %d: field \"transactionTime\": %w", ordinal, err)
	}

	shares, err := numberField(row, ordinal, "shares")
	if err != nil {
		return pnl.Transaction{}, err
	}
	price, err := numberField(row, ordinal, "pricePerShare")
	if err != nil {
		return pnl.Transaction{}, err
	}
	amount, err := numberField(row, ordinal, "amountUSDC")
	if err != nil {
		return pnl.Transaction{}, err
	}

	return pnl.NewTransaction(ordinal, address, side, at, pnl.Q(shares), pnl.M(price), pnl.M(amount)), nil
}

func stringField(row map[string]any, ordinal int, field string) (string, error) {
	jval, ok := row[field]
	if !ok || jval == nil {
		return "", fmt.Errorf("row %d: missing required field %q", ordinal, field)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("row %d: field %q is a %T, want a string", ordinal, field, jval)
	}
	return s, nil
}

// numberField reads a numeric field. Dune emits numbers both as JSON
// numbers and as decimal strings depending on the column type.
func numberField(row map[string]any, ordinal int, field string) (decimal.Decimal, error) {
	jval, ok := row[field]
	if !ok || jval == nil {
		return decimal.Decimal{}, fmt.Errorf("row %d: missing required field %q", ordinal, field)
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("row %d: field %q: %w", ordinal, field, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("row %d: field %q is a %T, want a number", ordinal, field, jval)
	}
}
