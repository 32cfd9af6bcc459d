package utils

// MergeCand is one candidate application of a learned merge at a specific
// position in the token sequence.
type MergeCand struct {
	Rank       int // lower wins
	Pos        int // left index; lower wins on tie to enforce leftmost
	LeftToken  int
	RightToken int
	VerL       int
	VerR       int
}

// MergeQueue orders merge candidates by (rank, position).
type MergeQueue interface {
	Push(c MergeCand)
	Pop() (MergeCand, bool)
	Len() int
}
