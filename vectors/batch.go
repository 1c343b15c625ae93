package vectors

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"nkey.mleku.dev/context"
)

// Failures collects the errors of the vectors that did not pass, keyed by
// vector name. It is safe to add to from many goroutines.
type Failures struct {
	m *xsync.MapOf[st, er]
}

// NewFailures creates an empty Failures.
func NewFailures() *Failures { return &Failures{m: xsync.NewMapOf[st, er]()} }

// Add records the failure of the named vector.
func (f *Failures) Add(name st, err er) { f.m.Store(name, err) }

// Get returns the failure recorded for the named vector, if any.
func (f *Failures) Get(name st) (err er, ok bo) { return f.m.Load(name) }

// Len is the number of failed vectors.
func (f *Failures) Len() no { return f.m.Size() }

// Failure is a failed vector and why.
type Failure struct {
	Name st
	Err  er
}

// Sorted returns the failures ordered by vector name.
func (f *Failures) Sorted() (fs []Failure) {
	f.m.Range(func(name st, err er) bool {
		fs = append(fs, Failure{name, err})
		return true
	})
	sort.Slice(fs, func(i, j no) bo { return fs[i].Name < fs[j].Name })
	return
}

// CheckAll checks the vectors with up to workers running at once, or one per
// vector if workers is not positive. Vector failures do not stop the batch,
// they are collected in the returned Failures; err is only set when c is
// canceled before every vector was checked.
func CheckAll(c context.T, vs []Vector, workers no) (f *Failures, err er) {
	f = NewFailures()
	g, ctx := errgroup.WithContext(c)
	if workers > 0 {
		g.SetLimit(workers)
	}
	var stopped bo
	for i := range vs {
		v := &vs[i]
		if ctx.Err() != nil {
			stopped = true
			break
		}
		g.Go(func() (err er) {
			if err = ctx.Err(); err != nil {
				return
			}
			if e := v.Check(); e != nil {
				log.T.F("%s", e)
				f.Add(v.Name, e)
			}
			return
		})
	}
	if err = g.Wait(); err == nil && stopped {
		err = c.Err()
	}
	log.D.F("checked %d vectors, %d failed", len(vs), f.Len())
	return
}
