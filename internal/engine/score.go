package engine

// lineRewards maps rows cleared in one lock to points awarded.
var lineRewards = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// ScoreFor returns the points for clearing the given number of rows at once.
// Any count outside 1-4 scores nothing.
func ScoreFor(lines int) int {
	return lineRewards[lines]
}
