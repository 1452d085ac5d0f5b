package analysis

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvtopo/bfs"
	"github.com/katalvlaran/lvtopo/converters"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/dijkstra"
)

// DegreeBin is one row of the degree histogram.
type DegreeBin struct {
	Degree int `yaml:"degree"`
	Count  int `yaml:"count"`
}

// Report condenses a topology into the figures usually checked after generation.
type Report struct {
	Nodes int `yaml:"nodes"`
	Edges int `yaml:"edges"`

	DegreeMin       int         `yaml:"degree_min"`
	DegreeMax       int         `yaml:"degree_max"`
	DegreeMean      float64     `yaml:"degree_mean"`
	DegreeStdDev    float64     `yaml:"degree_stddev"`
	DegreeHistogram []DegreeBin `yaml:"degree_histogram"`

	// PowerLawExponent is γ in P(K ≥ k) ∝ k^-(γ-1), fitted on the log-log
	// CCDF. NaN when fewer than two distinct degrees exist.
	PowerLawExponent float64 `yaml:"power_law_exponent"`

	Components int `yaml:"components"`

	Hub             int     `yaml:"hub"`
	HubDegree       int     `yaml:"hub_degree"`
	HubEccentricity int     `yaml:"hub_eccentricity"`
	HubMeanDistance float64 `yaml:"hub_mean_distance"`
	HubMaxDistance  float64 `yaml:"hub_max_distance"`

	// HubLayers[d] counts routers first reached in flooding round d of a
	// broadcast injected at the hub. HubHalfCoverRound is the first round
	// by which half of all routers have it, -1 if they never do.
	HubLayers         []int `yaml:"hub_layers"`
	HubHalfCoverRound int   `yaml:"hub_half_cover_round"`

	MeanEdgeLength float64 `yaml:"mean_edge_length"`
	MeanBandwidth  float64 `yaml:"mean_bandwidth"`
}

// Summarize computes a Report for g. The hub is the node with the largest
// out-degree, lowest index on ties.
func Summarize(g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	r := &Report{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
	nodes := g.Nodes()

	// 1) Degree statistics.
	degrees := make([]float64, len(nodes))
	hist := make(map[int]int)
	r.DegreeMin = math.MaxInt
	for i, nd := range nodes {
		d := nd.OutDegree()
		degrees[i] = float64(d)
		hist[d]++
		r.DegreeMin = min(r.DegreeMin, d)
		if d > r.DegreeMax {
			r.DegreeMax, r.Hub = d, i
		}
	}
	r.HubDegree = r.DegreeMax
	r.DegreeMean = stat.Mean(degrees, nil)
	if len(degrees) > 1 {
		r.DegreeStdDev = stat.StdDev(degrees, nil)
	}
	r.DegreeHistogram = histogram(hist)
	r.PowerLawExponent = powerLawExponent(r.DegreeHistogram, len(nodes))

	// 2) Components through gonum.
	u, err := converters.ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	r.Components = len(topo.ConnectedComponents(u))

	// 3) Hop eccentricity of the hub.
	hop, err := bfs.BFS(g, r.Hub)
	if err != nil {
		return nil, fmt.Errorf("analysis: hub bfs: %w", err)
	}
	r.HubEccentricity = hop.Eccentricity()
	r.HubLayers = hop.Layers()
	r.HubHalfCoverRound = hop.CoverRound(0.5, r.Nodes)

	// 4) Geometric distances from the hub over reachable nodes.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(r.Hub))
	if err != nil {
		return nil, fmt.Errorf("analysis: hub dijkstra: %w", err)
	}
	reach := make([]float64, 0, len(dist))
	for v, d := range dist {
		if v == r.Hub || math.IsInf(d, 1) {
			continue
		}
		reach = append(reach, d)
		r.HubMaxDistance = math.Max(r.HubMaxDistance, d)
	}
	if len(reach) > 0 {
		r.HubMeanDistance = stat.Mean(reach, nil)
	}

	// 5) Link figures.
	if r.Edges > 0 {
		lengths := make([]float64, 0, r.Edges)
		bws := make([]float64, 0, r.Edges)
		for _, e := range g.Edges() {
			lengths = append(lengths, e.Length)
			if e.Conf != nil {
				bws = append(bws, e.Conf.Bandwidth)
			}
		}
		r.MeanEdgeLength = stat.Mean(lengths, nil)
		if len(bws) > 0 {
			r.MeanBandwidth = stat.Mean(bws, nil)
		}
	}

	return r, nil
}

// histogram flattens degree counts into rows sorted by degree.
func histogram(h map[int]int) []DegreeBin {
	out := make([]DegreeBin, 0, len(h))
	for d, c := range h {
		out = append(out, DegreeBin{Degree: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })

	return out
}

// powerLawExponent fits log P(K ≥ k) = α + β·log k over positive degrees
// and returns γ = 1 - β.
func powerLawExponent(bins []DegreeBin, n int) float64 {
	xs := make([]float64, 0, len(bins))
	ys := make([]float64, 0, len(bins))
	tail := n
	for _, b := range bins {
		if b.Degree > 0 {
			xs = append(xs, math.Log(float64(b.Degree)))
			ys = append(ys, math.Log(float64(tail)/float64(n)))
		}
		tail -= b.Count
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)

	return 1 - beta
}

// WriteText renders r as aligned "key: value" lines.
func (r *Report) WriteText(w io.Writer) error {
	lines := []struct {
		k string
		v any
	}{
		{"nodes", r.Nodes},
		{"edges", r.Edges},
		{"degree min/max", fmt.Sprintf("%d / %d", r.DegreeMin, r.DegreeMax)},
		{"degree mean±sd", fmt.Sprintf("%.3f ± %.3f", r.DegreeMean, r.DegreeStdDev)},
		{"power-law γ", fmt.Sprintf("%.3f", r.PowerLawExponent)},
		{"components", r.Components},
		{"hub", fmt.Sprintf("%d (degree %d, eccentricity %d)", r.Hub, r.HubDegree, r.HubEccentricity)},
		{"hub broadcast rounds", fmt.Sprintf("%v (half covered at %d)", r.HubLayers, r.HubHalfCoverRound)},
		{"hub distance mean/max", fmt.Sprintf("%.3f / %.3f", r.HubMeanDistance, r.HubMaxDistance)},
		{"mean edge length", fmt.Sprintf("%.3f", r.MeanEdgeLength)},
		{"mean bandwidth", fmt.Sprintf("%.3f", r.MeanBandwidth)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-22s %v\n", l.k+":", l.v); err != nil {
			return err
		}
	}

	return nil
}
