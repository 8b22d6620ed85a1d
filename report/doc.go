// Package report turns finished runs into human- and machine-readable output.
//
// A Report holds one Run per independent solve of the same instance and,
// with more than one run, a Summary of the final lengths (percentiles via
// montanaflynn/stats). WriteText prints the classic
//
//	Initial distance: ...
//	Final distance: ...
//	Solution:
//	|x, y|x, y|...|
//
// block per run; WriteJSON emits the same content as one JSON document.
package report
