package collections

type Set[V comparable] map[V]struct{}

// NewSet returns a Set containing the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Clone returns a shallow copy of the set
func (set Set[V]) Clone() Set[V] {
	clone := make(Set[V], len(set))
	for value := range set {
		clone.Add(value)
	}
	return clone
}

// Values returns the elements of the set as a slice, in no particular order
func (set Set[V]) Values() []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	return values
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for value := range set {
		if !other.Contains(value) {
			difference.Add(value)
		}
	}
	return difference
}

// Intersection returns a new Set containing all elements present in both sets
func (set Set[V]) Intersection(other Set[V]) Set[V] {
	intersection := make(Set[V])
	for value := range set {
		if other.Contains(value) {
			intersection.Add(value)
		}
	}
	return intersection
}

// IsSubsetOf returns whether every element of the calling set is present in
// the other set
func (set Set[V]) IsSubsetOf(other Set[V]) bool {
	for value := range set {
		if !other.Contains(value) {
			return false
		}
	}
	return true
}

// Equal returns whether both sets contain exactly the same elements
func (set Set[V]) Equal(other Set[V]) bool {
	return len(set) == len(other) && set.IsSubsetOf(other)
}
