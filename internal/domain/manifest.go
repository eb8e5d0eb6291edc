package domain

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	m "github.com/mouse-blink/stamp/internal/model"
)

// Manifest file names.
const (
	ManifestFile       = "Manifest.txt"
	StaticManifestFile = "Manifest.static"
)

var baseFiles = map[string]bool{"base.rb": true, "version.rb": true}

// SortManifest orders paths for a manifest: files sort before the contents
// of sibling directories, and lib/foo/base.rb or lib/foo/version.rb moves in
// front of lib/foo.rb when that file is present.
func SortManifest(paths []m.Path) []m.Path {
	split := lo.Map(paths, func(p m.Path, _ int) []string {
		segs := strings.Split(string(p), "/")
		if len(segs) > 1 && segs[0] == "." {
			segs = segs[1:]
		}

		return segs
	})

	split = lo.UniqBy(split, func(segs []string) string {
		return strings.Join(segs, "/")
	})

	slices.SortStableFunc(split, compareSegments)

	split = priorityToBase(split)

	return lo.Map(split, func(segs []string, _ int) m.Path {
		return m.Path(strings.Join(segs, "/"))
	})
}

func compareSegments(a, b []string) int {
	for i := 0; ; i++ {
		if len(a) == i+1 && len(a) < len(b) {
			return -1
		}

		if len(b) == i+1 && len(a) > len(b) {
			return 1
		}

		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}

		if i+1 >= len(a) || i+1 >= len(b) {
			return 0
		}
	}
}

// priorityToBase moves each base file before its <dir>.rb sibling. A base
// file without such a sibling stays where it sorted.
func priorityToBase(files [][]string) [][]string {
	key := func(segs []string) string { return strings.Join(segs, "/") }

	bases := lo.Filter(files, func(segs []string, _ int) bool {
		return len(segs) > 1 && baseFiles[segs[len(segs)-1]]
	})

	for _, base := range bases {
		parent := append([]string{}, base[:len(base)-1]...)
		parent[len(parent)-1] += ".rb"
		want := key(parent)

		target := slices.IndexFunc(files, func(segs []string) bool { return key(segs) == want })
		if target < 0 {
			continue
		}

		from := slices.IndexFunc(files, func(segs []string) bool { return key(segs) == key(base) })
		files = slices.Delete(files, from, from+1)

		if from < target {
			target--
		}

		files = slices.Insert(files, target, base)
	}

	return files
}
