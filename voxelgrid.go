package interpolate

import (
	"math"
)

type voxelKey struct {
	x, y int64
}

type voxel struct {
	lon, lat, value float64
	num             int
}

// Thin merges samples that fall into the same cellLon x cellLat cell into a
// single sample at their mean position carrying their mean value. Output
// order follows the first sample seen in each cell. Use it to remove
// coincident or near-coincident samples before fitting.
func Thin(samples []Sample, cellLon, cellLat float64) ([]Sample, error) {
	if !finite(cellLon) || cellLon <= 0 {
		return nil, &ConfigError{Field: "cellLon", Value: cellLon, Reason: "must be finite and > 0"}
	}
	if !finite(cellLat) || cellLat <= 0 {
		return nil, &ConfigError{Field: "cellLat", Value: cellLat, Reason: "must be finite and > 0"}
	}
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, nil
	}

	min := samples[0].Pos()
	for _, s := range samples[1:] {
		min[0] = math.Min(min[0], s.Lon)
		min[1] = math.Min(min[1], s.Lat)
	}

	index := make(map[voxelKey]int, len(samples))
	voxels := make([]voxel, 0, len(samples))
	for _, s := range samples {
		key := voxelKey{
			x: int64(math.Floor((s.Lon - min[0]) / cellLon)),
			y: int64(math.Floor((s.Lat - min[1]) / cellLat)),
		}
		i, ok := index[key]
		if !ok {
			i = len(voxels)
			index[key] = i
			voxels = append(voxels, voxel{})
		}
		v := &voxels[i]
		v.lon += s.Lon
		v.lat += s.Lat
		v.value += s.Value
		v.num++
	}

	out := make([]Sample, len(voxels))
	for i, v := range voxels {
		n := float64(v.num)
		out[i] = Sample{Lon: v.lon / n, Lat: v.lat / n, Value: v.value / n}
	}
	return out, nil
}
