package compression

import "sync"

// matchFinderPool is a pool of match finders; each holds about 288 KiB of chain tables.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder acquires a cleared match finder for src from the pool.
func acquireMatchFinder(src []byte, minDist int) *matchFinder {
	mf := matchFinderPool.Get().(*matchFinder)
	*mf = matchFinder{src: src, minDist: minDist}
	return mf
}

// releaseMatchFinder releases a match finder to the pool.
func releaseMatchFinder(mf *matchFinder) {
	if mf == nil {
		return
	}

	mf.src = nil
	matchFinderPool.Put(mf)
}
