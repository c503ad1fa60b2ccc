package partition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointWith(t *testing.T) {
	p := Point3[float32]{1, 2, 3}

	q := p.With(1, 9)
	require.Equal(t, Point3[float32]{1, 9, 3}, q)
	require.Equal(t, Point3[float32]{1, 2, 3}, p)
}

func TestPointDim(t *testing.T) {
	require.Equal(t, 2, Point2[float64]{}.Dim())
	require.Equal(t, 3, Point3[float64]{}.Dim())
}
