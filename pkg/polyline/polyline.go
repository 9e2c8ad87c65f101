// Package polyline implements the encoded polyline format used by routing
// services: signed deltas in 5-bit groups offset into printable ASCII.
package polyline

import (
	"errors"
	"math"
	"strings"
)

// DefaultPrecision is the number of decimal digits used by OSRM and Google.
const DefaultPrecision = 5

var ErrMalformed = errors.New("malformed polyline")

type Point struct {
	Lat float64
	Lng float64
}

func Decode(encoded string, precision int) ([]Point, error) {
	factor := math.Pow10(precision)
	points := make([]Point, 0, len(encoded)/4)

	var lat, lng int64
	for i := 0; i < len(encoded); {
		dlat, n, err := decodeValue(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n

		dlng, n, err := decodeValue(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n

		lat += dlat
		lng += dlng
		points = append(points, Point{Lat: float64(lat) / factor, Lng: float64(lng) / factor})
	}
	return points, nil
}

func decodeValue(s string) (int64, int, error) {
	var result int64
	var shift uint
	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		if b < 0 || b > 0x3f || shift > 60 {
			return 0, 0, ErrMalformed
		}
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			if result&1 != 0 {
				return ^(result >> 1), i + 1, nil
			}
			return result >> 1, i + 1, nil
		}
	}
	return 0, 0, ErrMalformed
}

func Encode(points []Point, precision int) string {
	factor := math.Pow10(precision)

	var sb strings.Builder
	var prevLat, prevLng int64
	for _, p := range points {
		lat := int64(math.Round(p.Lat * factor))
		lng := int64(math.Round(p.Lng * factor))
		encodeValue(&sb, lat-prevLat)
		encodeValue(&sb, lng-prevLng)
		prevLat, prevLng = lat, lng
	}
	return sb.String()
}

func encodeValue(sb *strings.Builder, v int64) {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		sb.WriteByte(byte((0x20 | (u & 0x1f)) + 63))
		u >>= 5
	}
	sb.WriteByte(byte(u + 63))
}
