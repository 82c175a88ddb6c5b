package registry

import (
	"crypto/sha1"
	"encoding/hex"

	cmap "github.com/orcaman/concurrent-map"
	"github.com/peterbourgon/diskv/v3"
)

const lastReportKey = "last-report"

type ReportsOptions struct {
	BasePath string
}

// Reports persists the last batch report per solution, memory-cached
// and backed by diskv so `slnclean report` can show it later.
type Reports struct {
	m cmap.ConcurrentMap
	d *diskv.Diskv
}

func CreateReports(opts *ReportsOptions) *Reports {
	r := &Reports{
		m: cmap.New(),
	}
	r.d = diskv.New(diskv.Options{
		BasePath: opts.BasePath,
		AdvancedTransform: func(key string) *diskv.PathKey {
			return &diskv.PathKey{
				Path:     []string{solutionKey(key)},
				FileName: lastReportKey + ".json",
			}
		},
		InverseTransform: func(pathKey *diskv.PathKey) string {
			return pathKey.Path[0]
		},
		CacheSizeMax: 1024 * 1024,
	})
	return r
}

// solutionKey collapses an arbitrary solution path to a stable
// filesystem-safe key.
func solutionKey(solution string) string {
	sum := sha1.Sum([]byte(solution))
	return hex.EncodeToString(sum[:])
}

func (r *Reports) SetLast(solution string, reportJSON string) error {
	r.m.Set(solutionKey(solution), reportJSON)
	return r.d.Write(solution, []byte(reportJSON))
}

func (r *Reports) GetLast(solution string) (string, bool) {
	if v, ok := r.m.Get(solutionKey(solution)); ok {
		return v.(string), true
	}
	b, err := r.d.Read(solution)
	if err != nil {
		return "", false
	}
	r.m.Set(solutionKey(solution), string(b))
	return string(b), true
}
