// File tree.go implements Reduce, the left-fold composition helper spec.md
// §6 describes as an "out of scope" ancillary collaborator ("a tree-walker
// that composes multiple booleans when evaluating ADD/SUB/CUT/XOR nodes over
// many polygons") and SPEC_FULL.md brings into scope, grounded in
// original_source's CSG tree evaluator.
package boolean

import "github.com/mikenye/geom2d/options"

// Reduce left-folds op over polys: ((polys[0] op polys[1]) op polys[2]) ...
// It is the building block a CSG tree walker uses to evaluate an interior
// node with more than two children without special-casing arity. An empty
// polys returns the empty Polygon; a single element is returned unchanged
// (no operation is applied).
func Reduce(op Operation, polys []Polygon, opts ...options.GeometryOptionsFunc) (Polygon, error) {
	if len(polys) == 0 {
		return Polygon{}, nil
	}
	acc := polys[0]
	for _, p := range polys[1:] {
		var err error
		acc, err = Run(acc, p, op, opts...)
		if err != nil {
			return Polygon{}, err
		}
	}
	return acc, nil
}
