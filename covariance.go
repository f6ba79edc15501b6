package interpolate

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/mat"
)

// CovarianceMatrix builds K with K[i][j] = sill - gamma(distance(i, j)).
// The diagonal is the sill.
func CovarianceMatrix(pos []vec2d.T, v Variogram, dist DistanceFunc) *mat.SymDense {
	dist = distanceOrDefault(dist)
	n := len(pos)
	K := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			K.SetSym(i, j, v.Covariance(dist(pos[i], pos[j])))
		}
		K.SetSym(i, i, v.Covariance(0))
	}
	return K
}

// covarianceVector fills k with the covariances between q and every position.
func covarianceVector(k []float64, q vec2d.T, pos []vec2d.T, v Variogram, dist DistanceFunc) {
	for i := range pos {
		k[i] = v.Covariance(dist(q, pos[i]))
	}
}
