package utils

// BucketQueue orders merge candidates by (rank, position) using one bucket
// per rank. Ranks are merge indices, so the bucket count is bounded by the
// number of learned merges and Pop is close to O(1).
type BucketQueue struct {
	buckets    [][]MergeCand
	current    int
	totalCount int
}

func NewBucketQueue(maxRank int) *BucketQueue {
	return &BucketQueue{
		buckets: make([][]MergeCand, maxRank+1),
	}
}

func (bq *BucketQueue) Len() int {
	return bq.totalCount
}

func (bq *BucketQueue) Push(c MergeCand) {
	rank := c.Rank
	if rank >= len(bq.buckets) {
		grown := make([][]MergeCand, rank+1)
		copy(grown, bq.buckets)
		bq.buckets = grown
	}
	if rank < bq.current {
		bq.current = rank
	}

	bucket := bq.buckets[rank]

	// keep each bucket sorted by position so equal-rank candidates pop leftmost first
	left, right := 0, len(bucket)
	for left < right {
		mid := (left + right) / 2
		if bucket[mid].Pos < c.Pos {
			left = mid + 1
		} else {
			right = mid
		}
	}
	insertPos := left

	if insertPos == len(bucket) {
		bucket = append(bucket, c)
	} else {
		bucket = append(bucket, MergeCand{})
		copy(bucket[insertPos+1:], bucket[insertPos:])
		bucket[insertPos] = c
	}
	bq.buckets[rank] = bucket
	bq.totalCount++
}

func (bq *BucketQueue) Pop() (MergeCand, bool) {
	for bq.current < len(bq.buckets) && len(bq.buckets[bq.current]) == 0 {
		bq.current++
	}

	if bq.current >= len(bq.buckets) {
		return MergeCand{}, false
	}

	bucket := bq.buckets[bq.current]
	c := bucket[0]
	bq.buckets[bq.current] = bucket[1:]
	bq.totalCount--

	return c, true
}
