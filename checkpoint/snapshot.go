package checkpoint

import (
	"github.com/compactroute/engine/hyperbolic"
	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/pie"
)

func pointFrom(r Record) hyperbolic.Point {
	return hyperbolic.Point{X: r.CoordX, Y: r.CoordY}
}

// FromRegistry builds one Record per node in reg that has an assigned
// routing coordinate, with its neighbor list read from view (addresses
// are left empty — no transport collaborator is wired in this build).
func FromRegistry(reg *pie.Registry, view *netview.View) ([]Record, error) {
	ids := reg.Nodes()
	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		coord, ok := reg.Routing(id)
		if !ok {
			continue
		}
		var neighbors []Neighbor
		if view != nil && view.HasNode(id) {
			nbIDs, err := view.NeighborIDs(id)
			if err != nil {
				return nil, err
			}
			neighbors = make([]Neighbor, len(nbIDs))
			for i, nb := range nbIDs {
				neighbors[i] = Neighbor{ID: nb}
			}
		}
		records = append(records, Record{
			Version:      CurrentVersion,
			NodeID:       id,
			CoordX:       coord.X,
			CoordY:       coord.Y,
			CoordVersion: coord.Version,
			Neighbors:    neighbors,
		})
	}
	return records, nil
}

// Restore rebuilds a Registry from previously persisted records. Per the
// checkpoint round-trip law, the result is equal to the original
// registry up to coordinate version: anchors are recomputed rather than
// restored from the record, since they are a pure function of node id.
func Restore(records []Record) (*pie.Registry, error) {
	routes := make(map[string]pie.Coordinate, len(records))
	for _, r := range records {
		if err := r.checkVersion(); err != nil {
			return nil, err
		}
		routes[r.NodeID] = pie.Coordinate{
			Point:   pointFrom(r),
			Version: r.CoordVersion,
		}
	}
	return pie.NewRegistryFromRoutes(routes), nil
}
