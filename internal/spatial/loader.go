// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package spatial

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"github.com/tomtom215/galleria/internal/geometry"
	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/metrics"
)

// Loader assembles graphs from raw drawing records.
type Loader struct {
	tol    geometry.Tolerances
	logger zerolog.Logger
}

// NewLoader creates a loader using the given geometric tolerances.
func NewLoader(tol geometry.Tolerances) *Loader {
	return &Loader{
		tol:    tol,
		logger: logging.WithComponent("spatial-loader"),
	}
}

// Load validates raw and returns the resulting graph. Invalid entities are
// dropped and reported through Graph.Diagnostics.
func (l *Loader) Load(raw RawGeometry) *Graph {
	b := &graphBuilder{
		tol:      l.tol,
		logger:   l.logger.With().Str("building_id", raw.BuildingID).Logger(),
		rooms:    make(map[string]*Room),
		polygons: make(map[string]*Room),
		doorKeys: make(map[doorKey]struct{}),
	}

	floors := b.planFloors(raw.Plans)
	b.addRooms(raw.Rooms, floors)
	b.addDoors(raw.Doors, floors)
	b.addLinks(raw.Links, floors)

	slices.SortFunc(b.doors, func(x, y Door) int { return cmp.Compare(x.ID, y.ID) })
	g := newGraph(raw.BuildingID, b.roomList, b.doors, b.stairways, b.diags)

	l.logger.Info().
		Str("building_id", raw.BuildingID).
		Int("floors", len(g.floors)).
		Int("rooms", len(b.roomList)).
		Int("doors", len(b.doors)).
		Int("stairways", len(b.stairways)).
		Int("dropped", len(b.diags)).
		Msg("building graph loaded")

	return g
}

type doorKey struct {
	a, b  string
	floor int
}

type graphBuilder struct {
	tol       geometry.Tolerances
	logger    zerolog.Logger
	rooms     map[string]*Room
	polygons  map[string]*Room
	roomList  []*Room
	doors     []Door
	doorKeys  map[doorKey]struct{}
	stairways []Stairway
	diags     []Diagnostic
}

func (b *graphBuilder) drop(entity, id string, reason Reason, detail string) {
	b.diags = append(b.diags, Diagnostic{Entity: entity, ID: id, Reason: reason, Detail: detail})
	metrics.LoaderEntitiesRejected.WithLabelValues(entity, string(reason)).Inc()
	b.logger.Debug().
		Str("entity", entity).
		Str("id", id).
		Str("reason", string(reason)).
		Str("detail", detail).
		Msg("dropping entity")
}

// planFloors maps plan ids to 0-based floor indexes by plan order.
func (b *graphBuilder) planFloors(plans []RawPlan) map[string]int {
	sorted := slices.Clone(plans)
	slices.SortStableFunc(sorted, func(x, y RawPlan) int {
		if c := cmp.Compare(x.Order, y.Order); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})

	floors := make(map[string]int, len(sorted))
	next := 0
	for _, p := range sorted {
		if _, dup := floors[p.ID]; dup {
			b.drop(EntityPlan, p.ID, ReasonDuplicateID, "plan listed twice")
			continue
		}
		floors[p.ID] = next
		next++
	}
	return floors
}

func (b *graphBuilder) addRooms(raw []RawRoom, floors map[string]int) {
	for _, rr := range raw {
		if _, dup := b.rooms[rr.ID]; dup || rr.ID == "" {
			b.drop(EntityRoom, rr.ID, ReasonDuplicateID, "missing or repeated room id")
			continue
		}
		floor, ok := floors[rr.PlanID]
		if !ok {
			b.drop(EntityRoom, rr.ID, ReasonUnknownPlan, rr.PlanID)
			continue
		}
		outline, err := geometry.NewRing(rr.Points)
		if err != nil {
			b.drop(EntityRoom, rr.ID, ReasonDegenerate, err.Error())
			continue
		}

		room := &Room{
			ID:        rr.ID,
			PolygonID: rr.PolygonID,
			Name:      rr.Name,
			PlanID:    rr.PlanID,
			Floor:     floor,
			Outline:   outline,
		}
		b.rooms[room.ID] = room
		if room.PolygonID != "" {
			if _, taken := b.polygons[room.PolygonID]; !taken {
				b.polygons[room.PolygonID] = room
			}
		}
		b.roomList = append(b.roomList, room)
	}
	slices.SortFunc(b.roomList, func(x, y *Room) int { return cmp.Compare(x.ID, y.ID) })
}

// lookup resolves a reference that may name a room or a polygon.
func (b *graphBuilder) lookup(ref string) *Room {
	if r, ok := b.rooms[ref]; ok {
		return r
	}
	return b.polygons[ref]
}

func (b *graphBuilder) addDoors(raw []RawDoor, floors map[string]int) {
	for _, rd := range raw {
		floor, ok := floors[rd.PlanID]
		if !ok {
			b.drop(EntityDoor, rd.ID, ReasonUnknownPlan, rd.PlanID)
			continue
		}
		center := orb.Point{rd.X, rd.Y}

		rooms := b.resolveDoorRooms(rd, center, floor)
		if len(rooms) < 2 {
			b.drop(EntityDoor, rd.ID, ReasonUnresolvedRooms, fmt.Sprintf("found %d of 2 rooms", len(rooms)))
			continue
		}
		a, c := rooms[0], rooms[1]
		if a.ID > c.ID {
			a, c = c, a
		}

		if a.Floor != c.Floor || a.Floor != floor {
			b.drop(EntityDoor, rd.ID, ReasonFloorMismatch,
				fmt.Sprintf("door on floor %d joins %s (floor %d) and %s (floor %d)", floor, a.ID, a.Floor, c.ID, c.Floor))
			continue
		}

		walls := geometry.SharedEdges(a.Outline, c.Outline, b.tol)
		if len(walls) == 0 {
			b.drop(EntityDoor, rd.ID, ReasonNotAdjacent, a.ID+"|"+c.ID)
			continue
		}
		if !geometry.OnAnySegment(center, walls, b.tol.PointOnSegment) {
			b.drop(EntityDoor, rd.ID, ReasonOffSharedWall, a.ID+"|"+c.ID)
			continue
		}

		key := doorKey{a: a.ID, b: c.ID, floor: floor}
		if _, dup := b.doorKeys[key]; dup {
			b.drop(EntityDoor, rd.ID, ReasonDuplicateDoor, a.ID+"|"+c.ID)
			continue
		}
		b.doorKeys[key] = struct{}{}

		id := rd.ID
		if id == "" {
			id = fmt.Sprintf("door:%s|%s", a.ID, c.ID)
		}
		b.doors = append(b.doors, Door{ID: id, RoomA: a.ID, RoomB: c.ID, Center: center, Floor: floor})
	}
}

// resolveDoorRooms returns up to two rooms for a door marker. Hints are used
// first; missing rooms are located by wall distance on the door's floor.
func (b *graphBuilder) resolveDoorRooms(rd RawDoor, center orb.Point, floor int) []*Room {
	rooms := make([]*Room, 0, 2)
	seen := make(map[string]bool, 2)
	for _, hint := range rd.RoomHints {
		r := b.lookup(hint)
		if r == nil || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		rooms = append(rooms, r)
		if len(rooms) == 2 {
			return rooms
		}
	}

	type candidate struct {
		room *Room
		dist float64
	}
	var nearby []candidate
	for _, r := range b.roomList {
		if r.Floor != floor || seen[r.ID] {
			continue
		}
		if d := geometry.DistanceToBoundary(r.Outline, center); d <= b.tol.DoorSnap {
			nearby = append(nearby, candidate{room: r, dist: d})
		}
	}
	slices.SortStableFunc(nearby, func(x, y candidate) int { return cmp.Compare(x.dist, y.dist) })

	for _, c := range nearby {
		if len(rooms) == 2 {
			break
		}
		rooms = append(rooms, c.room)
	}
	return rooms
}

type linkMarker struct {
	id   string
	kind LinkKind
	pos  Position
}

func (b *graphBuilder) addLinks(raw []RawLink, floors map[string]int) {
	groups := make(map[string][]linkMarker)

	for _, rl := range raw {
		if rl.GroupID == "" {
			b.drop(EntityLink, rl.ID, ReasonMissingGroup, "")
			continue
		}
		floor, ok := floors[rl.PlanID]
		if !ok {
			b.drop(EntityLink, rl.ID, ReasonUnknownPlan, rl.PlanID)
			continue
		}
		kind, ok := ParseLinkKind(rl.Kind)
		if !ok {
			b.drop(EntityLink, rl.ID, ReasonUnknownKind, rl.Kind)
			continue
		}
		pt := orb.Point{rl.X, rl.Y}
		room := b.containingRoom(floor, pt)
		if room == nil {
			b.drop(EntityLink, rl.ID, ReasonNoContainingRoom, fmt.Sprintf("floor %d (%.1f, %.1f)", floor, rl.X, rl.Y))
			continue
		}
		groups[rl.GroupID] = append(groups[rl.GroupID], linkMarker{
			id:   rl.ID,
			kind: kind,
			pos:  At(pt, room.ID, floor),
		})
	}

	groupIDs := make([]string, 0, len(groups))
	for id := range groups {
		groupIDs = append(groupIDs, id)
	}
	slices.Sort(groupIDs)

	for _, gid := range groupIDs {
		b.addLinkGroup(gid, groups[gid])
	}
}

func (b *graphBuilder) addLinkGroup(groupID string, markers []linkMarker) {
	byFloor := make([]linkMarker, 0, len(markers))
	taken := make(map[int]bool, len(markers))
	for _, m := range markers {
		if taken[m.pos.Floor] {
			b.drop(EntityLink, m.id, ReasonDuplicateFloor, fmt.Sprintf("group %s already has floor %d", groupID, m.pos.Floor))
			continue
		}
		taken[m.pos.Floor] = true
		byFloor = append(byFloor, m)
	}
	if len(byFloor) < 2 {
		b.drop(EntityLinkGroup, groupID, ReasonIncompleteGroup, fmt.Sprintf("%d valid marker(s)", len(byFloor)))
		return
	}

	slices.SortFunc(byFloor, func(x, y linkMarker) int { return cmp.Compare(x.pos.Floor, y.pos.Floor) })

	for i := 0; i+1 < len(byFloor); i++ {
		lower, upper := byFloor[i], byFloor[i+1]
		if upper.pos.Floor-lower.pos.Floor != 1 {
			b.drop(EntityLinkGroup, groupID, ReasonFloorGap,
				fmt.Sprintf("no marker between floors %d and %d", lower.pos.Floor, upper.pos.Floor))
			continue
		}
		b.stairways = append(b.stairways, Stairway{
			ID:      fmt.Sprintf("%s:%d-%d", groupID, lower.pos.Floor, upper.pos.Floor),
			GroupID: groupID,
			Kind:    lower.kind,
			Lower:   lower.pos,
			Upper:   upper.pos,
		})
	}
}

// containingRoom runs the point-in-polygon test over one floor's rooms.
func (b *graphBuilder) containingRoom(floor int, pt orb.Point) *Room {
	for _, r := range b.roomList {
		if r.Floor == floor && r.Contains(pt) {
			return r
		}
	}
	return nil
}
