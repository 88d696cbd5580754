package niuniu

import "cardroom_backend/pkg/cards"

const handSize = 5

// Result - оценка руки из пяти карт.
// Triple - индексы трёх карт с суммой, кратной десяти,
// Pair - две оставшиеся.
type Result struct {
	Category   Category `json:"category"`
	Multiplier int      `json:"multiplier"`
	BullNumber int      `json:"bull_number"`
	Triple     []int    `json:"triple"`
	Pair       []int    `json:"pair"`
}

func newResult(c Category, triple, pair []int) Result {
	return Result{
		Category:   c,
		Multiplier: c.Multiplier(),
		BullNumber: c.BullNumber(),
		Triple:     triple,
		Pair:       pair,
	}
}

// Evaluate определяет категорию руки. Не пять карт - No Bull.
func Evaluate(hand []cards.Card) Result {
	if len(hand) != handSize {
		return newResult(NoBull, []int{}, []int{})
	}

	values := make([]int, handSize)
	total := 0
	allSmall := true
	allFace := true
	rankCount := make(map[cards.Rank]int, handSize)
	for i, c := range hand {
		values[i] = cards.Value(c)
		total += values[i]
		if values[i] > 4 {
			allSmall = false
		}
		if !cards.IsFace(c) {
			allFace = false
		}
		rankCount[c.Rank]++
	}

	// Особые руки
	if allSmall && total <= 10 {
		return newResult(FiveSmall, []int{0, 1, 2}, []int{3, 4})
	}
	for _, n := range rankCount {
		if n == 4 {
			return newResult(Bomb, []int{0, 1, 2}, []int{3, 4})
		}
	}
	if allFace {
		return newResult(FiveFace, []int{0, 1, 2}, []int{3, 4})
	}

	// Первая по индексам тройка с суммой, кратной десяти
	for i := 0; i < handSize-2; i++ {
		for j := i + 1; j < handSize-1; j++ {
			for k := j + 1; k < handSize; k++ {
				if (values[i]+values[j]+values[k])%10 != 0 {
					continue
				}
				pair := make([]int, 0, 2)
				for x := 0; x < handSize; x++ {
					if x != i && x != j && x != k {
						pair = append(pair, x)
					}
				}
				bull := (values[pair[0]] + values[pair[1]]) % 10
				return newResult(categoryForBull(bull), []int{i, j, k}, pair)
			}
		}
	}

	return newResult(NoBull, []int{}, []int{0, 1, 2, 3, 4})
}
