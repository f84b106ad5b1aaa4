package contact

import (
	"sync"
)

//runPool computes every fragment using cpus concurrent workers and blocks
//until all of them are done. The order in which fragments complete is
//unspecified; the returned slice is in completion order and must be sorted
//by the assembler. If any fragment fails, the first error is returned and
//no results are usable: there is no partial output and no retry, so a run
//is reproducible or it is nothing.
func runPool(src Source, labels map[int]string, frags []*Fragment, p *Params) ([]*Result, error) {
	cpus := p.Cpus()
	if cpus > len(frags) {
		cpus = len(frags)
	}
	jobs := make(chan *Fragment, len(frags))
	results := make(chan *Result, len(frags))
	errs := make(chan error, len(frags))
	var wg sync.WaitGroup
	wg.Add(cpus)
	for w := 0; w < cpus; w++ {
		go func() {
			defer wg.Done()
			for f := range jobs {
				r, err := f.compute(src, labels, p)
				if err != nil {
					errs <- err
					continue
				}
				results <- r
			}
		}()
	}
	for _, f := range frags {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
	close(results)
	close(errs)
	if err := <-errs; err != nil {
		return nil, errDecorate(err, "runPool")
	}
	ret := make([]*Result, 0, len(frags))
	for r := range results {
		ret = append(ret, r)
	}
	return ret, nil
}
