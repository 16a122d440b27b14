package engine

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// scanTablebases counts the WDL/DTZ files reachable through a
// SyzygyPath value. The path is a list of directories separated by the
// platform list separator; directories are scanned concurrently. The
// conventional "<empty>" placeholder means no path is configured.
func scanTablebases(path string) (int, error) {
	if path == "" || path == "<empty>" {
		return 0, nil
	}
	var dirs = strings.Split(path, string(os.PathListSeparator))
	var counts = make([]int, len(dirs))
	var g errgroup.Group
	for i, dir := range dirs {
		g.Go(func() error {
			var entries, err = os.ReadDir(dir)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				switch filepath.Ext(entry.Name()) {
				case ".rtbw", ".rtbz":
					counts[i]++
				}
			}
			return nil
		})
	}
	var err = g.Wait()
	var total = 0
	for _, n := range counts {
		total += n
	}
	return total, err
}
