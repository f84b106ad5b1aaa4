package contact

// Schedule partitions a trajectory of total frames into fragments of
// p.FragSize() frames each. Fragments cover [0,total) contiguously, with
// no gaps or overlap; the End of the last fragment is deliberately not
// clamped to total, since the Source already returns only the frames that
// exist. A total of zero or less yields no fragments.
func Schedule(total int, p *Params) []*Fragment {
	size := p.FragSize()
	stride := p.Stride()
	ret := make([]*Fragment, 0, total/size+1)
	for index, begin := 0, 0; begin < total; index, begin = index+1, begin+size {
		ret = append(ret, &Fragment{Index: index, Begin: begin, End: begin + size, Stride: stride})
	}
	return ret
}
