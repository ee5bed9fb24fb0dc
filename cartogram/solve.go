package cartogram

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// solveLeastSquares solves the normal equations A^T A x = A^T b for the
// overdetermined sparse system sys, via james-bowman/sparse for the sparse
// assembly and sparse-sparse multiply and gonum's Cholesky for the
// resulting small dense symmetric-positive-definite solve. A^T A is 2n x
// 2n for n vertices, small enough that densifying it for the
// factorization costs nothing noticeable next to the validator calls the
// back-off makes afterward.
//
// Complexity:
//   - Time: O(m³) for the dense Cholesky on the m = 2n unknowns; triplet
//     assembly and the sparse AᵀA/Aᵀb products are near-linear in the
//     number of nonzeros.
//   - Space: O(m²) for the densified normal-equations matrix.
func solveLeastSquares(sys system, numRows int) (*mat.VecDense, error) {
	dok := sparse.NewDOK(numRows, sys.numVars)
	for _, t := range sys.triplets {
		dok.Set(t.row, t.col, dok.At(t.row, t.col)+t.value)
	}
	a := dok.ToCSR()

	var ata sparse.CSR
	ata.Mul(a.T(), a)

	rhs := mat.NewVecDense(numRows, sys.rhs)
	var atb mat.VecDense
	atb.MulVec(a.T(), rhs)

	n := sys.numVars
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := ata.At(i, j)
			sym.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("cartogram: normal-equations matrix is not positive definite")
	}

	x := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(x, &atb); err != nil {
		return nil, fmt.Errorf("cartogram: solving least-squares system: %w", err)
	}
	return x, nil
}
