package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/errors"
	"github.com/vastu-microservice/internal/pkg/geometry"
)

// square возвращает квадрат 10x10 с началом в (0, 0)
func square() []domain.Point {
	return []domain.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
}

func TestBoundingBox(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		bbox, err := geometry.BoundingBox(square())
		require.NoError(t, err)

		assert.Equal(t, 0.0, bbox.MinX)
		assert.Equal(t, 10.0, bbox.MaxX)
		assert.Equal(t, 10.0, bbox.Width)
		assert.Equal(t, 10.0, bbox.Height)
		assert.Equal(t, 5.0, bbox.CenterX)
		assert.Equal(t, 5.0, bbox.CenterY)
	})

	t.Run("offset rectangle", func(t *testing.T) {
		bbox, err := geometry.BoundingBox([]domain.Point{
			{X: -5, Y: 3},
			{X: 15, Y: 3},
			{X: 15, Y: 9},
			{X: -5, Y: 9},
		})
		require.NoError(t, err)

		assert.Equal(t, 20.0, bbox.Width)
		assert.Equal(t, 6.0, bbox.Height)
		assert.Equal(t, 5.0, bbox.CenterX)
		assert.Equal(t, 6.0, bbox.CenterY)
	})

	t.Run("empty input returns error", func(t *testing.T) {
		_, err := geometry.BoundingBox(nil)
		assert.ErrorIs(t, err, errors.ErrInvalidBoundary)
	})
}

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name     string
		points   []domain.Point
		expected float64
	}{
		{
			name:     "square 10x10",
			points:   square(),
			expected: 100,
		},
		{
			name: "reversed winding negates sign",
			points: []domain.Point{
				{X: 0, Y: 10},
				{X: 10, Y: 10},
				{X: 10, Y: 0},
				{X: 0, Y: 0},
			},
			expected: -100,
		},
		{
			name: "triangle",
			points: []domain.Point{
				{X: 0, Y: 0},
				{X: 4, Y: 0},
				{X: 0, Y: 3},
			},
			expected: 6,
		},
		{
			name:     "fewer than 3 points",
			points:   []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, geometry.SignedArea(tt.points), 1e-9)
		})
	}
}

func TestCentroid(t *testing.T) {
	t.Run("square centered at origin", func(t *testing.T) {
		c, err := geometry.Centroid([]domain.Point{
			{X: -1, Y: -1},
			{X: 1, Y: -1},
			{X: 1, Y: 1},
			{X: -1, Y: 1},
		})
		require.NoError(t, err)

		assert.InDelta(t, 0.0, c.X, 1e-9)
		assert.InDelta(t, 0.0, c.Y, 1e-9)
	})

	t.Run("square 10x10", func(t *testing.T) {
		c, err := geometry.Centroid(square())
		require.NoError(t, err)

		assert.InDelta(t, 5.0, c.X, 1e-9)
		assert.InDelta(t, 5.0, c.Y, 1e-9)
	})

	t.Run("L-shape differs from bbox center", func(t *testing.T) {
		// L-образный контур: центроид смещен к массивной части
		points := []domain.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 5},
			{X: 5, Y: 5},
			{X: 5, Y: 10},
			{X: 0, Y: 10},
		}
		c, err := geometry.Centroid(points)
		require.NoError(t, err)

		bbox, err := geometry.BoundingBox(points)
		require.NoError(t, err)

		assert.Greater(t, math.Abs(bbox.CenterX-c.X), 0.1)
		assert.Greater(t, math.Abs(bbox.CenterY-c.Y), 0.1)
	})

	t.Run("collinear points degenerate", func(t *testing.T) {
		_, err := geometry.Centroid([]domain.Point{
			{X: 0, Y: 0},
			{X: 5, Y: 5},
			{X: 10, Y: 10},
		})
		assert.ErrorIs(t, err, errors.ErrDegenerateBoundary)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := geometry.Centroid([]domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
		assert.ErrorIs(t, err, errors.ErrInvalidBoundary)
	})
}

func TestPointInPolygon(t *testing.T) {
	tests := []struct {
		name     string
		point    domain.Point
		expected bool
	}{
		{"center inside", domain.Point{X: 5, Y: 5}, true},
		{"near corner inside", domain.Point{X: 0.5, Y: 0.5}, true},
		{"outside right", domain.Point{X: 15, Y: 5}, false},
		{"outside above", domain.Point{X: 5, Y: -3}, false},
		{"far away", domain.Point{X: 100, Y: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, geometry.PointInPolygon(tt.point, square()))
		})
	}

	t.Run("concave polygon notch excluded", func(t *testing.T) {
		// U-образный контур, выемка сверху
		polygon := []domain.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 10},
			{X: 7, Y: 10},
			{X: 7, Y: 3},
			{X: 3, Y: 3},
			{X: 3, Y: 10},
			{X: 0, Y: 10},
		}

		assert.False(t, geometry.PointInPolygon(domain.Point{X: 5, Y: 7}, polygon))
		assert.True(t, geometry.PointInPolygon(domain.Point{X: 1.5, Y: 7}, polygon))
		assert.True(t, geometry.PointInPolygon(domain.Point{X: 5, Y: 1.5}, polygon))
	})

	t.Run("degenerate polygon is never hit", func(t *testing.T) {
		assert.False(t, geometry.PointInPolygon(
			domain.Point{X: 0, Y: 0},
			[]domain.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		))
	})
}

func TestDistanceToSegment(t *testing.T) {
	a := domain.Point{X: 0, Y: 0}
	b := domain.Point{X: 10, Y: 0}

	tests := []struct {
		name     string
		point    domain.Point
		expected float64
	}{
		{"perpendicular projection", domain.Point{X: 5, Y: 3}, 3},
		{"beyond start clamps to endpoint", domain.Point{X: -4, Y: 3}, 5},
		{"beyond end clamps to endpoint", domain.Point{X: 13, Y: 4}, 5},
		{"on segment", domain.Point{X: 7, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, geometry.DistanceToSegment(tt.point, a, b), 1e-9)
		})
	}

	t.Run("zero-length segment measures to point", func(t *testing.T) {
		d := geometry.DistanceToSegment(domain.Point{X: 3, Y: 4}, a, a)
		assert.InDelta(t, 5.0, d, 1e-9)
	})
}

func TestDistanceToBoundary(t *testing.T) {
	t.Run("inside square", func(t *testing.T) {
		d := geometry.DistanceToBoundary(domain.Point{X: 5, Y: 2}, square())
		assert.InDelta(t, 2.0, d, 1e-9)
	})

	t.Run("outside square", func(t *testing.T) {
		d := geometry.DistanceToBoundary(domain.Point{X: 13, Y: 5}, square())
		assert.InDelta(t, 3.0, d, 1e-9)
	})

	t.Run("empty polygon", func(t *testing.T) {
		assert.True(t, math.IsInf(geometry.DistanceToBoundary(domain.Point{}, nil), 1))
	})
}

func TestAngleFromCenter(t *testing.T) {
	center := domain.Point{X: 0, Y: 0}

	// Экранные координаты: -Y это север, рост угла по часовой стрелке
	tests := []struct {
		name     string
		point    domain.Point
		expected float64
	}{
		{"north", domain.Point{X: 0, Y: -1}, 0},
		{"east", domain.Point{X: 1, Y: 0}, 90},
		{"south", domain.Point{X: 0, Y: 1}, 180},
		{"west", domain.Point{X: -1, Y: 0}, 270},
		{"north-east", domain.Point{X: 1, Y: -1}, 45},
		{"south-west", domain.Point{X: -1, Y: 1}, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geometry.AngleFromCenter(center, tt.point)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestValidateBoundary(t *testing.T) {
	t.Run("valid square", func(t *testing.T) {
		assert.NoError(t, geometry.ValidateBoundary(square()))
	})

	t.Run("too few points", func(t *testing.T) {
		err := geometry.ValidateBoundary([]domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
		assert.ErrorIs(t, err, errors.ErrInvalidBoundary)
	})

	t.Run("zero area", func(t *testing.T) {
		err := geometry.ValidateBoundary([]domain.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 1},
			{X: 2, Y: 2},
		})
		assert.ErrorIs(t, err, errors.ErrDegenerateBoundary)
	})
}
