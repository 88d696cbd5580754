package settle

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnbalanced = errors.New("balances do not sum to zero")

type Balance struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Transfer - From платит Amount игроку To
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// суммы party в целых центах, "меньше цента" - ровно ноль.
type party struct {
	name      string
	remaining int64
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

// Compute сводит самого крупного должника с самым крупным кредитором,
// пока одна из сторон не закончится. Балансы сначала округляются до центов,
// нулевые не участвуют.
func Compute(balances []Balance) []Transfer {
	var debtors, creditors []party
	for _, b := range balances {
		cents := toCents(b.Amount)
		switch {
		case cents < 0:
			debtors = append(debtors, party{name: b.Name, remaining: -cents})
		case cents > 0:
			creditors = append(creditors, party{name: b.Name, remaining: cents})
		}
	}
	sortParties(debtors)
	sortParties(creditors)

	transfers := make([]Transfer, 0, len(debtors)+len(creditors))
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].remaining, creditors[j].remaining)
		if amount > 0 {
			transfers = append(transfers, Transfer{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: fromCents(amount),
			})
		}
		debtors[i].remaining -= amount
		creditors[j].remaining -= amount

		if debtors[i].remaining == 0 {
			i++
		}
		if creditors[j].remaining == 0 {
			j++
		}
	}

	return transfers
}

// Check возвращает ErrUnbalanced, если сумма балансов отличается от нуля больше чем на цент.
func Check(balances []Balance) error {
	var sum int64
	for _, b := range balances {
		sum += toCents(b.Amount)
	}
	if sum > 1 || sum < -1 {
		return fmt.Errorf("%w: residual %.2f", ErrUnbalanced, fromCents(sum))
	}
	return nil
}

// sortParties по убыванию суммы, затем по имени.
func sortParties(ps []party) {
	sort.SliceStable(ps, func(a, b int) bool {
		if ps[a].remaining != ps[b].remaining {
			return ps[a].remaining > ps[b].remaining
		}
		return ps[a].name < ps[b].name
	})
}
