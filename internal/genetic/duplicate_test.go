package genetic

import (
	"testing"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

func TestIsDuplicateReflexiveAndSymmetric(t *testing.T) {
	var d DuplicateEliminator
	r := domain.Route{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}, {Lat: 5, Lon: 6}}
	s := r.Clone()

	if !d.IsDuplicate(r, r) {
		t.Error("route must be a duplicate of itself")
	}
	if !d.IsDuplicate(r, s) || !d.IsDuplicate(s, r) {
		t.Error("identical clones must be duplicates both ways")
	}
}

func TestIsDuplicateExactOnly(t *testing.T) {
	var d DuplicateEliminator
	r := domain.Route{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}, {Lat: 5, Lon: 6}}

	offByOne := r.Clone()
	offByOne[1].Lat += 1e-12
	if d.IsDuplicate(r, offByOne) {
		t.Error("no tolerance: a tiny coordinate difference is not a duplicate")
	}

	longer := append(r.Clone(), domain.Waypoint{Lat: 7, Lon: 8})
	if d.IsDuplicate(r, longer) {
		t.Error("routes of different length are never duplicates")
	}
}

func TestPruneKeepsFirstOccurrence(t *testing.T) {
	var d DuplicateEliminator
	a := domain.Route{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}
	b := domain.Route{{Lat: 0, Lon: 0}, {Lat: 2, Lon: 2}}

	pruned := d.Prune([]domain.Route{a, b, a.Clone(), b.Clone(), a})
	if len(pruned) != 2 {
		t.Fatalf("got %d routes, want 2", len(pruned))
	}
	if !pruned[0].Equal(a) || !pruned[1].Equal(b) {
		t.Error("pruning must preserve first-occurrence order")
	}
}
