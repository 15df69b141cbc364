package core

import "math"

const perlinPointCount = 256

// Perlin holds gradient noise tables. The tables are built once from a Random
// source and never change, so one instance can be shared by concurrent renders.
type Perlin struct {
	randVec [perlinPointCount]Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds gradient and permutation tables from random
func NewPerlin(random Random) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = RandomUnit(random)
	}
	p.permX = generatePerm(random)
	p.permY = generatePerm(random)
	p.permZ = generatePerm(random)
	return p
}

// Noise returns smoothed gradient noise at point, roughly in [-1, 1]
func (p *Perlin) Noise(point Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise with halving weight and doubling
// frequency. The result is never negative.
func (p *Perlin) Turbulence(point Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// perlinInterp is trilinear interpolation with Hermite smoothing of the weights
func perlinInterp(c *[2][2][2]Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// generatePerm returns a Fisher-Yates shuffle of 0..255
func generatePerm(random Random) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.RandIntInterval(0, i+1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}
