// Package testing provides test utilities for the recalibration library.
//
// This package offers helpers for exercising aggregation code without real
// sequencing data, plus an embedded NATS server for integration-testing the
// distrib package. It follows Go's convention of providing testing utilities
// in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - Residue: In-memory residue satisfying every built-in covariate's view
//   - NewIdentity: Covariate that groups residues by an explicit label
//   - NewTestLogger: types.Logger writing to testing.T
//   - StartEmbeddedNATS: Single in-process NATS server
//
// Example usage:
//
//	import (
//	    "testing"
//	    recaltest "github.com/noamBarkai/adam/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := recaltest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
