// Package domain contains the core types of the validation pipeline.
package domain

import "fmt"

// Layer identifies one stage of the validation pipeline. Layers form a
// total order and are always executed in ascending order.
type Layer int

const (
	// LayerParse is syntax validation.
	LayerParse Layer = iota + 1
	// LayerAnalyze is semantic analysis.
	LayerAnalyze
	// LayerTypeCheck is type checking. The toolchain performs it as part of
	// the analyze invocation, so it never triggers a call of its own.
	LayerTypeCheck
	// LayerLint is code quality checking. Lint findings are recorded but
	// never fail a run.
	LayerLint
	// LayerExecute runs the example and compares its exit code.
	LayerExecute
)

// AllLayers lists every layer in execution order.
var AllLayers = []Layer{LayerParse, LayerAnalyze, LayerTypeCheck, LayerLint, LayerExecute}

var layerNames = map[Layer]string{
	LayerParse:     "parse",
	LayerAnalyze:   "analyze",
	LayerTypeCheck: "typecheck",
	LayerLint:      "lint",
	LayerExecute:   "execute",
}

// String returns the lower-case layer name used in reports.
func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// Valid reports whether l is one of the five known layers.
func (l Layer) Valid() bool {
	return l >= LayerParse && l <= LayerExecute
}
