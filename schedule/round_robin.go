// Package schedule строит расписание группового этапа.
package schedule

import (
	"errors"
	"sort"
)

var ErrNotEnoughSides = errors.New("round robin needs at least two sides")

// Pairing описывает одну встречу расписания. Round начинается с 1.
type Pairing struct {
	Round int
	Home  int
	Away  int
}

// RoundRobin составляет круговой турнир методом вращения: каждая сторона
// встречается с каждой один раз за круг, в одном туре никто не играет дважды.
// При legs == 2 второй круг повторяет первый с обменом хозяев.
// При нечётном числе сторон одна сторона в каждом туре отдыхает.
func RoundRobin(sides []int, legs int) ([]Pairing, error) {
	if len(sides) < 2 {
		return nil, ErrNotEnoughSides
	}
	if legs != 2 {
		legs = 1
	}

	const bye = -1
	ring := append([]int(nil), sides...)
	if len(ring)%2 == 1 {
		ring = append(ring, bye)
	}
	n := len(ring)
	rounds := n - 1

	pairings := make([]Pairing, 0, legs*rounds*n/2)
	for r := 0; r < rounds; r++ {
		for i := 0; i < n/2; i++ {
			home, away := ring[i], ring[n-1-i]
			if home == bye || away == bye {
				continue
			}
			// Чередуем хозяев первой пары, иначе ring[0] всегда дома.
			if i == 0 && r%2 == 1 {
				home, away = away, home
			}
			pairings = append(pairings, Pairing{Round: r + 1, Home: home, Away: away})
		}
		// ring[0] неподвижен, остальные сдвигаются на одну позицию.
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}

	if legs == 2 {
		first := len(pairings)
		for _, p := range pairings[:first] {
			pairings = append(pairings, Pairing{Round: p.Round + rounds, Home: p.Away, Away: p.Home})
		}
	}

	sort.SliceStable(pairings, func(i, j int) bool {
		return pairings[i].Round < pairings[j].Round
	})
	return pairings, nil
}
