// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// model.go - the router-level Barabási–Albert model as a parameter record.
//
// A RouterBarabasiAlbertParams value fully describes one topology: plane
// sides, placement law, attachment width and bandwidth law. Generate turns
// it into a graph by composing PlaceNodes → BarabasiAlbert → AssignBandwidth.

package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtopo/core"
)

// RouterBarabasiAlbertParams holds every knob of the model.
type RouterBarabasiAlbertParams struct {
	N         int           `yaml:"n" mapstructure:"n" validate:"gte=2,gtfield=M"`
	HS        int           `yaml:"hs" mapstructure:"hs" validate:"gte=1"`
	LS        int           `yaml:"ls" mapstructure:"ls" validate:"gte=1"`
	Placement PlacementType `yaml:"placement" mapstructure:"placement" validate:"oneof=1 2"`
	M         int           `yaml:"m" mapstructure:"m" validate:"gte=1"`
	BWDist    BandwidthDist `yaml:"bw_dist" mapstructure:"bw_dist" validate:"oneof=1 2 3 4"`
	BWMin     float64       `yaml:"bw_min" mapstructure:"bw_min" validate:"gte=0"`
	BWMax     float64       `yaml:"bw_max" mapstructure:"bw_max" validate:"gtefield=BWMin"`
}

// DefaultParams returns the stock configuration: 1000 routers on a
// 1000×1000 plane, random placement, m=2, constant bandwidth 10.
func DefaultParams() RouterBarabasiAlbertParams {
	return RouterBarabasiAlbertParams{
		N:         1000,
		HS:        1000,
		LS:        100,
		Placement: PlacementRandom,
		M:         2,
		BWDist:    BandwidthConst,
		BWMin:     10,
		BWMax:     1024,
	}
}

var validate = validator.New()

// Validate checks field tags and the cross-field constraints the tags
// cannot express. Every failure wraps ErrInvalidParams.
func (p RouterBarabasiAlbertParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.ActualTag(), fe.Value()))
			}
			return fmt.Errorf("%s: %s: %w", MethodGenerate, strings.Join(msgs, "; "), ErrInvalidParams)
		}
		return fmt.Errorf("%s: %v: %w", MethodGenerate, err, ErrInvalidParams)
	}
	if exceedsPlane(p.N, p.HS) {
		return fmt.Errorf("%s: n=%d exceeds plane capacity %d²: %w", MethodGenerate, p.N, p.HS, ErrInvalidParams)
	}
	if p.Placement == PlacementHeavyTailed && p.HS%p.LS != 0 {
		return fmt.Errorf("%s: hs=%d not a multiple of ls=%d: %w", MethodGenerate, p.HS, p.LS, ErrInvalidParams)
	}

	return nil
}

// String renders the parameter line written into topology headers:
//
//	Model ( 2 ): N HS LS NP M BW BWMin BWMax
func (p RouterBarabasiAlbertParams) String() string {
	return fmt.Sprintf("Model ( %d ): %d %d %d %d %d %d %g %g",
		RouterBarabasiAlbertModelID,
		p.N, p.HS, p.LS, int(p.Placement), p.M, int(p.BWDist), p.BWMin, p.BWMax)
}

// expectedEdges is m(m+1)/2 seed edges plus m per joining node.
func (p RouterBarabasiAlbertParams) expectedEdges() int {
	return p.M*(p.M+1)/2 + (p.N-p.M-1)*p.M
}

// Generate validates p and builds the full topology.
// Options are those of BuildGraph; WithSeed or WithSource is required.
func Generate(p RouterBarabasiAlbertParams, opts ...BuilderOption) (*core.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log := newBuilderConfig(opts...).logger
	log.Info("generating topology", zap.Stringer("model", p))

	g, err := BuildGraph(p.N,
		[]core.GraphOption{core.WithEdgeCapacity(p.expectedEdges())},
		opts,
		PlaceNodes(p.Placement, p.HS, p.LS),
		BarabasiAlbert(p.M),
		AssignBandwidth(p.BWDist, p.BWMin, p.BWMax),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	log.Info("topology ready", zap.Int("nodes", g.NodeCount()), zap.Int("edges", g.EdgeCount()))

	return g, nil
}
