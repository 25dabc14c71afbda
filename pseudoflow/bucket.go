package pseudoflow

// bucket is a queue of strong roots sharing a label, linked through node.bucketNext.
type bucket struct {
	head int32
	tail int32
}

func (s *Solver) addToStrongBucket(root int32) {
	nd := &s.nodes[root]
	b := &s.buckets[nd.label]
	nd.inBucket = true
	if s.opts.LifoBuckets || b.head == none {
		nd.bucketNext = b.head
		b.head = root
		if b.tail == none {
			b.tail = root
		}
		return
	}
	nd.bucketNext = none
	s.nodes[b.tail].bucketNext = root
	b.tail = root
}

func (s *Solver) popStrongBucket(label int) int32 {
	b := &s.buckets[label]
	root := b.head
	if root == none {
		return none
	}
	nd := &s.nodes[root]
	b.head = nd.bucketNext
	if b.head == none {
		b.tail = none
	}
	nd.bucketNext = none
	nd.inBucket = false
	return root
}
