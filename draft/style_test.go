package draft

import "testing"

func TestStyleSet_AddRemoveKeepsSortedAndImmutable(t *testing.T) {
	base := NewStyleSet("UNDERLINE", "BOLD")
	if got, want := base.String(), "{BOLD,UNDERLINE}"; got != want {
		t.Fatalf("set=%s, want %s", got, want)
	}

	added := base.Add("RED")
	if base.Has("RED") {
		t.Fatalf("Add mutated the receiver")
	}
	if got, want := added.String(), "{BOLD,RED,UNDERLINE}"; got != want {
		t.Fatalf("added=%s, want %s", got, want)
	}

	removed := added.Remove("BOLD")
	if !added.Has("BOLD") {
		t.Fatalf("Remove mutated the receiver")
	}
	if got, want := removed.String(), "{RED,UNDERLINE}"; got != want {
		t.Fatalf("removed=%s, want %s", got, want)
	}
	if !removed.Remove("RED").Remove("UNDERLINE").IsEmpty() {
		t.Fatalf("expected empty set")
	}
}

func TestStyleSet_Equal(t *testing.T) {
	if !NewStyleSet("A", "B").Equal(NewStyleSet("B", "A", "B")) {
		t.Fatalf("sets with the same members should be equal")
	}
	if NewStyleSet("A").Equal(NewStyleSet()) {
		t.Fatalf("different sets compared equal")
	}
	if !(StyleSet{}).Equal(NewStyleSet()) {
		t.Fatalf("zero value should equal an empty set")
	}
}
