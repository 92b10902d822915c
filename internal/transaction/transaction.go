package transaction

import (
	"math"
	"time"
)

const (
	Deposit    = "Deposit"
	Withdrawal = "Withdrawal"
)

// Transaction maps to the `client_transaction` table.
type Transaction struct {
	ID       int       `json:"transactionId"`
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
	Type     string    `json:"type"`
	ClientID int       `json:"clientId"`
}

// Signed is the amount's effect on the client's total assets.
func (t Transaction) Signed() float64 {
	switch t.Type {
	case Deposit:
		return t.Amount
	case Withdrawal:
		return -t.Amount
	default:
		return 0
	}
}

// Balance is deposits minus withdrawals.
func Balance(txs []Transaction) float64 {
	total := 0.0
	for _, t := range txs {
		total += t.Signed()
	}
	return round2(total)
}

// AverageAssets is the mean balance over clientIDs, rounded to cents.
// Clients without transactions count as zero.
func AverageAssets(clientIDs []int, txs []Transaction) float64 {
	if len(clientIDs) == 0 {
		return 0
	}
	totals := make(map[int]float64, len(clientIDs))
	for _, id := range clientIDs {
		totals[id] = 0
	}
	for _, t := range txs {
		if _, ok := totals[t.ClientID]; ok {
			totals[t.ClientID] += t.Signed()
		}
	}

	sum := 0.0
	for _, v := range totals {
		sum += v
	}
	return round2(sum / float64(len(totals)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
