// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

import (
	"math"
	"math/cmplx"
)

// Params carries the per-run scalar parameters of the semi-implicit update
// (spec.md §4.4): the time step, the complex-field relaxation scale u and
// the current scale gamma.
type Params struct {
	Dt    float64
	U     float64
	Gamma float64
}

// Step advances st by one time step under Operators built on the same
// mesh, the prescribed boundary flux muBoundary (one entry per boundary
// edge, +J on the input strip and -J on the output strip), the disorder
// scalar alpha (one per site) and the edge table (needed to pick out each
// edge's first endpoint for the supercurrent). This is the discrete
// gauge-invariant scheme of spec.md §4.4.
func Step(operators *Operators, st *State, muBoundary, alpha []float64, edges [][2]int, p Params) (*State, error) {
	n := len(st.Psi)
	sqGamma := p.Gamma * p.Gamma

	lpsiPsi := operators.Lpsi.MatVec(st.Psi)

	psiNew := make([]complex128, n)
	for i, psi := range st.Psi {
		r := real(psi)*real(psi) + imag(psi)*imag(psi)
		phase := cmplx.Exp(complex(0, -st.Mu[i]*p.Dt))
		z := phase * complex(sqGamma/2, 0) * psi

		inner := complex(p.Dt/p.U, 0) * complex(math.Sqrt(1+sqGamma*r), 0) *
			(complex(alpha[i]-r, 0)*psi + lpsiPsi[i])
		w := z*complex(r, 0) + phase*(psi+inner)

		aCoef := real(w)*real(z) + imag(w)*imag(z)
		absZ2 := real(z)*real(z) + imag(z)*imag(z)
		absW2 := real(w)*real(w) + imag(w)*imag(w)
		disc := (2*aCoef+1)*(2*aCoef+1) - 4*absZ2*absW2
		rNew := 2 * absW2 / (2*aCoef + 1 + math.Sqrt(disc))

		psiNew[i] = w - z*complex(rNew, 0)
	}

	gpsiPsi := operators.Gpsi.MatVec(psiNew)
	supercurrent := make([]float64, len(edges))
	for k, e := range edges {
		supercurrent[k] = imag(gpsiPsi[k] * cmplx.Conj(psiNew[e[0]]))
	}

	div := operators.Div.MatVec(supercurrent)
	nb := operators.NBmu.MatVec(muBoundary)
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = div[i] - nb[i]
	}
	muNew, err := operators.LmuSolver.Solve(rhs)
	if err != nil {
		return nil, err
	}

	normalCurrent := operators.Gmu.MatVec(muNew)
	for i := range normalCurrent {
		normalCurrent[i] = -normalCurrent[i]
	}

	return &State{
		Psi:           psiNew,
		Mu:            muNew,
		Supercurrent:  supercurrent,
		NormalCurrent: normalCurrent,
	}, nil
}

// Voltage returns mu[voltagePoints[0]] - mu[voltagePoints[1]] (spec.md
// §4.4).
func Voltage(mu []float64, voltagePoints [2]int) float64 {
	return mu[voltagePoints[0]] - mu[voltagePoints[1]]
}

// CheckFinite returns a NumericalFailureError naming the first non-finite
// entry found in psi or mu, or nil if both are entirely finite. Called at
// snapshot boundaries (spec.md §7).
func CheckFinite(step int, psi []complex128, mu []float64) error {
	for i, v := range psi {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return numericalFailure("tdgl: psi[%d] is non-finite (%v) at step %d", i, v, step)
		}
	}
	for i, v := range mu {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return numericalFailure("tdgl: mu[%d] is non-finite (%v) at step %d", i, v, step)
		}
	}
	return nil
}
