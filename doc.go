// Package circuitgraph provides a directed acyclic graph representation of
// arithmetic expressions, and a synchronous solver to evaluate it.
//
// A graph is an append only arena of nodes: inputs, constants, additions and
// multiplications. Node identities are allocated in creation order and a node
// only ever references previously created nodes, so a graph is acyclic by
// construction and the identity order is a valid evaluation order.
//
// Values are arbitrary precision integers (math/big); there is no modular
// reduction. circuitgraph mirrors the shape of zk-SNARK circuit
// representations (wires, gates, witness solving) without any cryptographic
// machinery.
package circuitgraph

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
