package pnl

import (
	"testing"
	"time"
)

func TestParseSide(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    Side
		wantErr bool
	}{
		{"buy", "buy", SideBuy, false},
		{"sell", "sell", SideSell, false},
		{"mixed case", "Buy", SideBuy, false},
		{"padded", "  sell ", SideSell, false},
		{"unrecognized kept as other", "redeem", SideOther, false},
		{"blank is an error", "   ", SideOther, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSide(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseSide(%q) error = %v, wantErr %v", tc.raw, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseSide(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	utc := time.Date(2025, time.January, 15, 18, 30, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", "2025-01-15T18:30:00Z", utc, false},
		{"rfc3339 with offset", "2025-01-15T20:30:00+02:00", utc, false},
		{"dune utc suffix", "2025-01-15 18:30:00.000 UTC", utc, false},
		{"space separated with offset", "2025-01-15 18:30:00 +00:00", utc, false},
		{"no zone is ambiguous", "2025-01-15 18:30:00", time.Time{}, true},
		{"date only has no instant", "2025-01-15", time.Time{}, true},
		{"blank", "", time.Time{}, true},
		{"garbage", "not-a-time", time.Time{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTime(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTime(%q) error = %v, wantErr %v", tc.raw, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tc.raw, got, tc.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseTime(%q) location = %v, want UTC", tc.raw, got.Location())
			}
		})
	}
}

func TestParseCutoff(t *testing.T) {
	got, err := ParseCutoff("2025-03-01")
	if err != nil {
		t.Fatalf("ParseCutoff() unexpected error: %v", err)
	}
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseCutoff(date only) = %v, want midnight UTC %v", got, want)
	}

	if _, err := ParseCutoff("March 1st"); err == nil {
		t.Error("ParseCutoff() expected an error for an unparseable cutoff")
	}
}

func TestNewTransaction_NormalizesToUTC(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	tx := NewTransaction(0, "0xaaa", SideBuy, time.Date(2025, time.January, 15, 10, 0, 0, 0, paris), Q(1), M(1), M(1))
	if tx.Time.Location() != time.UTC {
		t.Errorf("Time location = %v, want UTC", tx.Time.Location())
	}
	if tx.Time.Hour() != 9 {
		t.Errorf("Time = %v, want 09:00 UTC", tx.Time)
	}
}
