package domain

import "strings"

// axis is an ordered, closed set of labels backing one dimension of a rate
// table. Position in keys is the table index. Lookups that miss resolve to
// index 0 rather than failing.
type axis[T ~string] struct {
	keys   []T
	labels []string
}

func newAxis[T ~string](keys []T, labels []string) axis[T] {
	if len(keys) != len(labels) {
		panic("domain: axis keys and labels differ in length")
	}
	return axis[T]{keys: keys, labels: labels}
}

func (a axis[T]) index(v T) int {
	for i, k := range a.keys {
		if k == v {
			return i
		}
	}
	return 0
}

func (a axis[T]) label(v T) string {
	return a.labels[a.index(v)]
}

func (a axis[T]) lookup(s string) (T, bool) {
	s = strings.TrimSpace(s)
	for i, k := range a.keys {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, a.labels[i]) {
			return k, true
		}
	}
	return a.keys[0], false
}

func (a axis[T]) parse(s string) T {
	v, _ := a.lookup(s)
	return v
}

func (a axis[T]) known(s string) bool {
	_, ok := a.lookup(s)
	return ok
}

func (a axis[T]) values() []T {
	out := make([]T, len(a.keys))
	copy(out, a.keys)
	return out
}
