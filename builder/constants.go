// Package builder defines shared constants used by topology builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodPlaceNodes is the canonical name for the PlaceNodes constructor.
	MethodPlaceNodes = "PlaceNodes"
	// MethodAssignBandwidth is the canonical name for the AssignBandwidth constructor.
	MethodAssignBandwidth = "AssignBandwidth"
	// MethodGenerate is the canonical name for the model-level Generate entry point.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimums
//-----------------------------------------------------------------------------

// MinEdgesPerNode is the smallest meaningful m for preferential attachment.
const MinEdgesPerNode = 1

// MinPlaneSide is the smallest allowed side for the placement plane and its squares.
const MinPlaneSide = 1

//-----------------------------------------------------------------------------
// Model identity and distribution shapes
//-----------------------------------------------------------------------------

// RouterBarabasiAlbertModelID is the numeric model tag used by the serializer.
const RouterBarabasiAlbertModelID = 2

// progressEvery is the growth-loop interval between progress log lines.
const progressEvery = 1000

// placementParetoAlpha and placementParetoXm shape the per-square population
// law of heavy-tailed placement.
const (
	placementParetoAlpha = 1.0
	placementParetoXm    = 1.0
)

// bandwidthParetoAlpha shapes the heavy-tailed bandwidth law.
const bandwidthParetoAlpha = 1.2
