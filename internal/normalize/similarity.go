package normalize

import (
	"sort"
	"strings"
)

// Similarity computes a bounded [0,1] similarity between two normalized name
// keys. Tokens are sorted alphabetically before comparison so "kuda bank" and
// "bank kuda" score 1.0, then a matching-blocks sequence ratio (2*M/T, where
// M is the total matched length and T the combined length) is computed.
// The function is commutative and returns 0.0 when either key is empty.
//
// The ratio algorithm and the caller's 0.90 threshold together decide which
// companies merge; do not swap in a different string metric.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	sa := sortTokens(a)
	sb := sortTokens(b)

	return ratio(sa, sb)
}

func sortTokens(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// ratio returns 2*M/T over the matching blocks of a and b. Blocks are found
// by recursively taking the longest common substring and splitting the
// regions to its left and right, the same scheme difflib's SequenceMatcher
// uses without its junk heuristic (keys here are short ASCII strings).
func ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0.0
	}

	b2j := make(map[byte][]int, len(b))
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	type region struct{ alo, ahi, blo, bhi int }

	matched := 0
	queue := []region{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		r := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(a, b2j, r.alo, r.ahi, r.blo, r.bhi)
		if k == 0 {
			continue
		}
		matched += k
		queue = append(queue,
			region{r.alo, i, r.blo, j},
			region{i + k, r.ahi, j + k, r.bhi},
		)
	}

	return 2.0 * float64(matched) / float64(total)
}

// longestMatch finds the longest block a[besti:besti+bestk] == b[bestj:bestj+bestk]
// within a[alo:ahi] and b[blo:bhi]. Of equally long blocks, the one starting
// earliest in a (then earliest in b) wins.
func longestMatch(a string, b2j map[byte][]int, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj, bestk = alo, blo, 0

	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestk
}
