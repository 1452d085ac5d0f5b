// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_placement.go - implementation of the PlaceNodes(kind, hs, ls) constructor.
//
// Canonical model:
//   - Plane is the integer grid [0,hs)×[0,hs); no two nodes share a point.
//   - PlacementRandom: every node uniform over the plane.
//   - PlacementHeavyTailed: the plane is cut into (hs/ls)² squares of side ls;
//     square populations follow a Pareto law, nodes are uniform inside their
//     square, and the resulting positions are shuffled over node indices.
//
// Contract:
//   - hs ≥ 1 and N ≤ hs² (else ErrTooFewVertices); hs² is never formed, so
//     planes wider than √MaxInt are accepted.
//   - Heavy-tailed: ls ≥ 1 (else ErrTooFewVertices) and hs % ls == 0 (else ErrOptionViolation).
//   - cfg.src must be non-nil (else ErrNeedRandSource).
//   - Occupied points are tracked in an R-tree; a collision redraws the point,
//     bounded by cfg.maxDrawAttempts per node (else ErrConstructFailed).
//
// Complexity:
//   - Time: O(N log N) expected for sparse planes.
//   - Space: O(N) for the occupancy index.

package builder

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvtopo/core"
)

// PlacementType selects how nodes are laid out in the plane.
type PlacementType int

const (
	// PlacementRandom places nodes uniformly over the plane.
	PlacementRandom PlacementType = 1
	// PlacementHeavyTailed clusters nodes in squares with Pareto populations.
	PlacementHeavyTailed PlacementType = 2
)

// String renders the placement for logs, flags and config files.
func (p PlacementType) String() string {
	switch p {
	case PlacementRandom:
		return "random"
	case PlacementHeavyTailed:
		return "heavy-tailed"
	default:
		return fmt.Sprintf("placement(%d)", int(p))
	}
}

// ParsePlacement maps "random" / "heavy-tailed" (or "ht") to a PlacementType.
func ParsePlacement(s string) (PlacementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "uniform":
		return PlacementRandom, nil
	case "heavy-tailed", "heavytailed", "ht":
		return PlacementHeavyTailed, nil
	default:
		return 0, fmt.Errorf("%s: %q: %w", MethodPlaceNodes, s, ErrUnsupportedPlacement)
	}
}

// PlaceNodes returns a Constructor assigning a unique integer position to
// every node of g.
func PlaceNodes(kind PlacementType, hs, ls int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()

		// 1) Validate parameters early.
		if kind != PlacementRandom && kind != PlacementHeavyTailed {
			return fmt.Errorf("%s: kind=%d: %w", MethodPlaceNodes, int(kind), ErrUnsupportedPlacement)
		}
		if err := validateMin(MethodPlaceNodes, "hs", hs, MinPlaneSide); err != nil {
			return err
		}
		if exceedsPlane(n, hs) {
			return fmt.Errorf("%s: n=%d exceeds plane capacity %d²: %w", MethodPlaceNodes, n, hs, ErrTooFewVertices)
		}
		if kind == PlacementHeavyTailed {
			if err := validateMin(MethodPlaceNodes, "ls", ls, MinPlaneSide); err != nil {
				return err
			}
			if hs%ls != 0 {
				return fmt.Errorf("%s: hs=%d not a multiple of ls=%d: %w", MethodPlaceNodes, hs, ls, ErrOptionViolation)
			}
		}
		if cfg.src == nil {
			return fmt.Errorf("%s: %w", MethodPlaceNodes, ErrNeedRandSource)
		}

		log := cfg.logger.Named("placement")
		log.Info("placing nodes", zap.Stringer("kind", kind), zap.Int("nodes", n), zap.Int("hs", hs), zap.Int("ls", ls))

		// 2) Compute positions.
		p := &placer{r: rand.New(cfg.src), maxAttempts: cfg.maxDrawAttempts}
		var (
			pts []orb.Point
			err error
		)
		if kind == PlacementRandom {
			pts, err = p.uniform(n, hs)
		} else {
			pts, err = p.heavyTailed(n, hs, ls, cfg.src)
		}
		if err != nil {
			return err
		}

		// 3) Commit positions in index order.
		for i, pt := range pts {
			if err = g.SetPosition(i, pt); err != nil {
				return fmt.Errorf("%s: SetPosition(%d): %w", MethodPlaceNodes, i, err)
			}
		}

		return nil
	}
}

// placer draws collision-free integer points.
type placer struct {
	r           *rand.Rand
	occupied    rtree.RTreeG[int]
	maxAttempts int
}

// uniform draws n distinct points over [0,hs)².
func (p *placer) uniform(n, hs int) ([]orb.Point, error) {
	pts := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		pt, err := p.drawIn(0, 0, hs, i)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}

	return pts, nil
}

// heavyTailed allots n nodes to (hs/ls)² squares by a Pareto law, draws
// points inside each square and shuffles them over node indices.
func (p *placer) heavyTailed(n, hs, ls int, src rand.Source) ([]orb.Point, error) {
	// Every visited square takes at least one node, so no more than n
	// squares are ever touched and neither count needs to exceed n.
	perSide := hs / ls
	counts, err := allotSquares(n, squareCapped(perSide, n), squareCapped(ls, n), distuv.Pareto{
		Xm:    placementParetoXm,
		Alpha: placementParetoAlpha,
		Src:   src,
	})
	if err != nil {
		return nil, err
	}

	pts := make([]orb.Point, 0, n)
	for s, c := range counts {
		x0, y0 := (s%perSide)*ls, (s/perSide)*ls
		for j := 0; j < c; j++ {
			pt, err := p.drawIn(x0, y0, ls, len(pts))
			if err != nil {
				return nil, err
			}
			pts = append(pts, pt)
		}
	}
	p.r.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	return pts, nil
}

// allotSquares distributes n nodes over squares of the given capacity,
// sweeping squares in order and granting each a Pareto-sized share until
// every node is allotted.
func allotSquares(n, squares, capacity int, law distuv.Pareto) ([]int, error) {
	counts := make([]int, squares)
	remaining := n
	for remaining > 0 {
		progressed := false
		for s := 0; s < squares && remaining > 0; s++ {
			room := capacity - counts[s]
			if room == 0 {
				continue
			}
			c := room
			if v := law.Rand(); v < float64(room) {
				c = int(v)
			}
			c = min(max(c, 1), remaining)
			counts[s] += c
			remaining -= c
			progressed = true
		}
		if !progressed {
			return nil, fmt.Errorf("%s: %d nodes left without room: %w", MethodPlaceNodes, remaining, ErrConstructFailed)
		}
	}

	return counts, nil
}

// drawIn draws a free point in [x0,x0+side)×[y0,y0+side) for node idx.
func (p *placer) drawIn(x0, y0, side, idx int) (orb.Point, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		key := [2]float64{float64(x0 + p.r.Intn(side)), float64(y0 + p.r.Intn(side))}
		if p.isOccupied(key) {
			continue
		}
		p.occupied.Insert(key, key, idx)

		return orb.Point(key), nil
	}

	return orb.Point{}, fmt.Errorf("%s: node %d: no free point after %d draws: %w",
		MethodPlaceNodes, idx, p.maxAttempts, ErrConstructFailed)
}

// isOccupied reports whether a node already sits on pt.
func (p *placer) isOccupied(pt [2]float64) bool {
	hit := false
	p.occupied.Search(pt, pt, func(_, _ [2]float64, _ int) bool {
		hit = true
		return false
	})

	return hit
}
