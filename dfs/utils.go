package dfs

import (
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a reversed copy of s.
// Time Complexity: O(n).
func Reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare orders two equal-length sequences element by element:
// -1 if a < b, 0 if equal, +1 if a > b.
func Compare(a, b []string) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// JoinSig joins c with commas into a map-key signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation returns the lexicographically least rotation of s using
// Booth's failure-function scan over s doubled.
// Time Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if doubled[j] == doubled[k+i+1] {
			fail[j-k] = i + 1
			continue
		}
		// here i == -1
		if doubled[j] < doubled[k] {
			k = j
		}
		fail[j-k] = -1
	}

	return append([]string(nil), doubled[k:k+n]...)
}

// Canonical returns the least of the minimal rotations of a cycle and of its
// reverse, so both orientations of an undirected cycle compare equal.
func Canonical(cycle []string) []string {
	fwd := MinimalRotation(cycle)
	bwd := MinimalRotation(Reverse(cycle))
	if Compare(bwd, fwd) < 0 {
		return bwd
	}

	return fwd
}
