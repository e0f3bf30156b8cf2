package segment

import (
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	txt := NewText("ab")
	if !txt.IsText() || txt.IsDelimiter() {
		t.Errorf("expected %v to be a text segment", txt)
	}
	dlm := NewDelimiter([]int{3})
	if !dlm.IsDelimiter() || dlm.IsText() {
		t.Errorf("expected %v to be a delimiter segment", dlm)
	}
	if s := Kind(7).String(); s != "Kind(7)" {
		t.Errorf("expected unknown kind to print as Kind(7), is %s", s)
	}
}

func TestBodies(t *testing.T) {
	segs := []Segment[string]{NewText("ab"), NewDelimiter(","), NewText("cd")}
	bodies := Bodies(segs)
	if len(bodies) != 3 || bodies[0] != "ab" || bodies[1] != "," || bodies[2] != "cd" {
		t.Errorf("expected bodies [ab , cd], have %v", bodies)
	}
	if len(Bodies[string](nil)) != 0 {
		t.Errorf("expected no bodies for empty segment list")
	}
}

func ExampleSegment_String() {
	fmt.Println(NewText([]rune("ab")), NewDelimiter(","), NewText([]int{1, 2}))
	// Output:
	// Text"ab" Delim"," Text[1 2]
}
