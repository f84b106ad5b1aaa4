package contact

//Defaults for a contact computation. The fragment size is a default, not a
//fixed constant: it can be set per-run through Params.
const (
	DefaultFragSize = 1000
	DefaultCpus     = 6
	DefaultSolvent  = "TIP3"
)

// Params holds the run parameters shared by all workers of a computation.
// It is logically immutable: set it up before calling TrajContacts and do
// not touch it afterwards, as workers read it concurrently.
type Params struct {
	itypes   []string
	stride   int
	solvent  string
	chain    string
	ligand   string
	cpus     int
	fragsize int
}

//DefaultParams returns a Params with the default options and no
//interaction types requested.
func DefaultParams() *Params {
	ret := new(Params)
	ret.stride = 1
	ret.solvent = DefaultSolvent
	ret.cpus = DefaultCpus
	ret.fragsize = DefaultFragSize
	return ret
}

//Returns the requested interaction types, and sets them
//to the given slice, if any.
func (r *Params) ITypes(itypes ...[]string) []string {
	ret := r.itypes
	if len(itypes) > 0 && itypes[0] != nil {
		r.itypes = itypes[0]
	}
	return ret
}

//Returns the frequency with which frames are skipped when reading the
//trajectory, and sets it, if a valid value is given.
func (r *Params) Stride(stride ...int) int {
	ret := r.stride
	if len(stride) > 0 && stride[0] > 0 {
		r.stride = stride[0]
	}
	return ret
}

//Returns the resname of the solvent in the simulation and sets it,
//if a value is given.
func (r *Params) Solvent(solvent ...string) string {
	ret := r.solvent
	if len(solvent) > 0 && solvent[0] != "" {
		r.solvent = solvent[0]
	}
	return ret
}

//Returns the chain of the protein on which the computation is performed
//(empty means all chains) and sets it, if a value is given.
func (r *Params) Chain(chain ...string) string {
	ret := r.chain
	if len(chain) > 0 {
		r.chain = chain[0]
	}
	return ret
}

//Returns the resname of the ligand for ligand-hydrogen-bond detection
//(empty means none) and sets it, if a value is given.
func (r *Params) Ligand(ligand ...string) string {
	ret := r.ligand
	if len(ligand) > 0 {
		r.ligand = ligand[0]
	}
	return ret
}

//Returns the current value of the Cpus option (the number of concurrent
//workers of the pool) and sets it, if a valid value is given.
func (r *Params) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//Returns the number of trajectory frames per fragment and sets it, if a
//valid value is given.
func (r *Params) FragSize(size ...int) int {
	ret := r.fragsize
	if len(size) > 0 && size[0] > 0 {
		r.fragsize = size[0]
	}
	return ret
}
