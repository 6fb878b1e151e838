package memory

import (
	"context"
	"strings"

	"github.com/mwantia/querystore/operator"
)

// List enumerates the keys under prefix in lexicographic order. When the
// backend was built with start-after support and opts.StartAfter is set,
// enumeration resumes directly behind that key via a pivot ascent over
// the ordered index; otherwise opts.StartAfter is ignored.
func (mb *MemoryBackend) List(ctx context.Context, prefix string, opts operator.ListOptions) (operator.Lister, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pivot := prefix
	startAfter := ""
	if opts.StartAfter != "" && mb.info.Capabilities.Contains(operator.CapabilityListStartAfter) {
		startAfter = opts.StartAfter
		if startAfter > pivot {
			pivot = startAfter
		}
	}

	var entries []*operator.Entry
	seen := make(map[string]bool)

	mb.keys.Ascend(pivot, func(key string, obj *object) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		// Pivot ascent is inclusive, resumption is exclusive
		if startAfter != "" && key <= startAfter {
			return true
		}

		if opts.Recursive {
			entries = append(entries, &operator.Entry{Key: key, Meta: mb.metadata(obj)})
			return true
		}

		// One-level enumeration: collapse deeper keys into a single
		// directory-like entry per immediate child prefix.
		remainder := strings.TrimPrefix(key, prefix)
		if idx := strings.Index(remainder, "/"); idx >= 0 && idx < len(remainder)-1 {
			dir := prefix + remainder[:idx+1]
			if !seen[dir] {
				seen[dir] = true
				entries = append(entries, &operator.Entry{
					Key:  dir,
					Meta: &operator.Metadata{IsDir: true},
				})
			}
			return true
		}

		// Stored directory markers sort before their children, so the
		// marker claims the prefix before any child can synthesize it.
		if obj.isDir {
			if seen[key] {
				return true
			}
			seen[key] = true
		}

		entries = append(entries, &operator.Entry{Key: key, Meta: mb.metadata(obj)})
		return true
	})

	return operator.NewSliceLister(entries), nil
}
