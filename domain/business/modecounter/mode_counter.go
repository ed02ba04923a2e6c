package modecounter

import "sort"

// Entry a value and the amount of times it was seen
type Entry[T comparable] struct {
	Value T
	Count int
}

// ModeCounter counts occurrences of values and remembers the order in which each value was first seen.
// Ties for the mode are broken by that order: the value seen first wins.
type ModeCounter[T comparable] struct {
	counts map[T]int
	order  []T
}

func NewModeCounter[T comparable]() *ModeCounter[T] {
	return &ModeCounter[T]{
		counts: make(map[T]int),
	}
}

func (mc *ModeCounter[T]) Add(value T) {
	if _, ok := mc.counts[value]; !ok {
		mc.order = append(mc.order, value)
	}
	mc.counts[value] += 1
}

// Mode returns the most common value and its count. The boolean is false if nothing was added
func (mc *ModeCounter[T]) Mode() (T, int, bool) {
	var mode T
	maxCount := 0
	for _, value := range mc.order {
		if count := mc.counts[value]; count > maxCount {
			mode = value
			maxCount = count
		}
	}
	return mode, maxCount, maxCount > 0
}

// Entries returns every distinct value sorted by count in descending order. Values with the same
// count keep the order in which they were first seen
func (mc *ModeCounter[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], 0, len(mc.order))
	for _, value := range mc.order {
		entries = append(entries, Entry[T]{Value: value, Count: mc.counts[value]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
