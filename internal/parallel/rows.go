// Package parallel fans per-row pixel work out across goroutines.
//
// Every stage of the watercolor pipeline except color bleed and Lab K-means
// is independent per pixel, so splitting the image into contiguous row
// bands parallelizes it without changing the output.
package parallel

import "sync"

// minRowsPerWorker is the band size below which goroutine overhead
// outweighs the work; smaller images run inline.
const minRowsPerWorker = 16

// Rows invokes fn over disjoint half-open row ranges [start,end) covering
// [0,height). With workers <= 1 (or a small image) fn runs once, inline, on
// the full range; otherwise the ranges run concurrently and Rows returns
// after all of them complete.
//
// fn must be safe to run concurrently on disjoint row ranges.
func Rows(height, workers int, fn func(start, end int)) {
	if height <= 0 {
		return
	}
	if workers > height/minRowsPerWorker {
		workers = height / minRowsPerWorker
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	var wg sync.WaitGroup
	band := (height + workers - 1) / workers
	for start := 0; start < height; start += band {
		end := start + band
		if end > height {
			end = height
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
