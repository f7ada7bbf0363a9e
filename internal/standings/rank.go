package standings

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
)

// RankStandings orders a group's teams by points and assigns contiguous
// 1-based ranks, breaking points ties with ResolveTies.
func RankStandings(teams []*TeamStats, coll *collate.Collator) []*TeamStats {
	buckets := make(map[int][]*TeamStats)
	for _, team := range teams {
		buckets[team.Points] = append(buckets[team.Points], team)
	}
	points := make([]int, 0, len(buckets))
	for p := range buckets {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b int) int { return cmp.Compare(b, a) })

	ranked := make([]*TeamStats, 0, len(teams))
	rank := 1
	for _, p := range points {
		bucket := buckets[p]
		if len(bucket) > 1 {
			bucket = ResolveTies(bucket, coll)
		}
		for _, team := range bucket {
			team.Rank = rank
			rank++
			ranked = append(ranked, team)
		}
	}
	return ranked
}
