package strictness

import "testing"

type plain struct{}

type marked struct{}

func (marked) FactoryNeverFails() {}

func TestAdmits(t *testing.T) {
	t.Parallel()
	if got := Admits(plain{}); got != !Enabled {
		t.Fatalf("unmarked type: relaxed builds admit, strict builds refuse; got %v", got)
	}
	if !Admits(marked{}) {
		t.Fatalf("a Guaranteed type must be admitted under any build")
	}
}

func TestGuaranteedIsMarker(t *testing.T) {
	t.Parallel()
	var g Guaranteed = marked{}
	g.FactoryNeverFails()
}
