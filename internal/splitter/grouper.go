package splitter

import "github.com/mvp-joe/splitcs/internal/extraction"

// MemberGroup is an ordered, non-empty slice of one type's members that ends
// up in a single output file.
type MemberGroup []extraction.MemberDeclaration

// Policy partitions a type's members into groups. Every member lands in
// exactly one group and groups never come back empty.
type Policy interface {
	Name() string
	Group(members []extraction.MemberDeclaration) []MemberGroup
}

// PolicyFor picks round-robin for a positive count and the visibility split
// otherwise.
func PolicyFor(count int) Policy {
	if count > 0 {
		return RoundRobin{Count: count}
	}
	return ByVisibility{}
}

// RoundRobin deals members into Count groups by original index mod Count.
type RoundRobin struct {
	Count int
}

func (RoundRobin) Name() string { return "round_robin" }

func (p RoundRobin) Group(members []extraction.MemberDeclaration) []MemberGroup {
	k := p.Count
	if k < 1 {
		k = 1
	}
	buckets := make([]MemberGroup, k)
	for i, m := range members {
		buckets[i%k] = append(buckets[i%k], m)
	}
	return compact(buckets)
}

// ByVisibility puts exposed members in the first group and the rest in the
// second, preserving source order within each.
type ByVisibility struct{}

func (ByVisibility) Name() string { return "visibility" }

func (ByVisibility) Group(members []extraction.MemberDeclaration) []MemberGroup {
	var exposed, hidden MemberGroup
	for _, m := range members {
		if m.Exposed {
			exposed = append(exposed, m)
		} else {
			hidden = append(hidden, m)
		}
	}
	return compact([]MemberGroup{exposed, hidden})
}

func compact(groups []MemberGroup) []MemberGroup {
	out := make([]MemberGroup, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}
