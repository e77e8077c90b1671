// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"

	"github.com/pilpsolver/pilp/polyset"
)

// problem is the YAML shape a pilp problem file decodes into (§2.1): the
// parameter and variable names are purely cosmetic labels carried through
// to the printed result, everything else feeds directly into a
// polyset.BasicSet/BasicMap pair.
//
// Every row under domain/bmap is laid out [const, param coefficients...],
// and under bmap additionally followed by [var coefficients...] — the same
// convention polyset.Vec rows use throughout the solve path.
type problem struct {
	Params    []string  `yaml:"params"`
	Vars      []string  `yaml:"vars"`
	Max       bool      `yaml:"max"`
	Rational  bool      `yaml:"rational"`
	MaxSplits int       `yaml:"max_splits"`
	Domain    rowSet    `yaml:"domain"`
	Bmap      rowSet    `yaml:"bmap"`
}

// rowSet is the YAML shape of one basic-set/basic-map's constraint rows.
type rowSet struct {
	Eq   [][]int64 `yaml:"eq"`
	Ineq [][]int64 `yaml:"ineq"`
}

func toVec(row []int64) polyset.Vec {
	out := make(polyset.Vec, len(row))
	for i, x := range row {
		out[i] = big.NewInt(x)
	}
	return out
}

// buildDomain constructs the polyset.BasicSet p.Domain describes, over
// len(p.Params) dimensions.
func (p *problem) buildDomain() (*polyset.BasicSet, error) {
	nParam := len(p.Params)
	dom, err := polyset.NewBasicSet(nParam, len(p.Domain.Eq), len(p.Domain.Ineq), 0)
	if err != nil {
		return nil, fmt.Errorf("pilp: building domain: %w", err)
	}
	for _, row := range p.Domain.Eq {
		if err := dom.AppendEq(toVec(row)); err != nil {
			return nil, fmt.Errorf("pilp: domain equality: %w", err)
		}
	}
	for _, row := range p.Domain.Ineq {
		if err := dom.AppendIneq(toVec(row)); err != nil {
			return nil, fmt.Errorf("pilp: domain inequality: %w", err)
		}
	}
	return dom, nil
}

// buildMap constructs the polyset.BasicMap p.Bmap describes, over
// len(p.Params) input dimensions and len(p.Vars) output dimensions.
func (p *problem) buildMap() (*polyset.BasicMap, error) {
	nParam, nOut := len(p.Params), len(p.Vars)
	bmap, err := polyset.NewBasicMap(nParam, nOut, len(p.Bmap.Eq), len(p.Bmap.Ineq), 0)
	if err != nil {
		return nil, fmt.Errorf("pilp: building relation: %w", err)
	}
	for _, row := range p.Bmap.Eq {
		if err := bmap.AppendEq(toVec(row)); err != nil {
			return nil, fmt.Errorf("pilp: relation equality: %w", err)
		}
	}
	for _, row := range p.Bmap.Ineq {
		if err := bmap.AppendIneq(toVec(row)); err != nil {
			return nil, fmt.Errorf("pilp: relation inequality: %w", err)
		}
	}
	return bmap, nil
}
