// Package structdiff implements deep structural comparison over a generic
// value model (null, bool, number, string, sequence, mapping).
//
// Arbitrary Go values are first normalized into the value model through
// their JSON representation; the comparison and diff walk then operate
// purely on the tagged union, so diffing never depends on the reflected
// shape of the inputs. Sequences compare element-wise in order; mappings
// compare by key, ignoring insertion order.
package structdiff
