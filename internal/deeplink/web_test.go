package deeplink

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const earthRadius = 6378137.0

// mercator renders lat/lng as the "x,y" prefix of a web directions place segment.
func mercator(lat, lng float64) string {
	x := earthRadius * lng * math.Pi / 180
	y := earthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))

	return strconv.FormatFloat(x, 'f', -1, 64) + "," + strconv.FormatFloat(y, 'f', -1, 64)
}

func TestMercatorToWGS84(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		lat  float64
		lng  float64
	}{
		{name: "origin", x: 0, y: 0, lat: 0, lng: 0},
		{name: "antimeridian", x: math.Pi * earthRadius, y: 0, lat: 0, lng: 180},
		{name: "seoul", x: 14135367.72, y: 4518296.58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MercatorToWGS84(tt.x, tt.y)

			wantLng := tt.x / earthRadius * 180 / math.Pi
			wantLat := (2*math.Atan(math.Exp(tt.y/earthRadius)) - math.Pi/2) * 180 / math.Pi
			assert.InDelta(t, wantLat, p.Lat, 1e-9)
			assert.InDelta(t, wantLng, p.Lng, 1e-9)

			if tt.name != "seoul" {
				assert.InDelta(t, tt.lat, p.Lat, 1e-9)
				assert.InDelta(t, tt.lng, p.Lng, 1e-9)
			}
		})
	}
}

func TestNormalize_WebDirectionsV5(t *testing.T) {
	raw := "https://map.naver.com/v5/directions/" +
		mercator(37.1, 127.1) + ",Start,123,PLACE_POI/" +
		mercator(37.15, 127.15) + ",Middle,,/" +
		mercator(37.2, 127.2) + ",%EB%8F%84%EC%B0%A9,456,PLACE_POI/" +
		"walk?c=14,0,0,0,dh"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, SourceWeb, r.Source())
	assert.Equal(t, ModalityWalk, r.Modality)
	assert.Equal(t, raw, r.OpenURL)
	assert.Empty(t, r.NmapURL)

	require.NotNil(t, r.Start)
	assert.InDelta(t, 37.1, r.Start.Lat, 1e-6)
	assert.InDelta(t, 127.1, r.Start.Lng, 1e-6)
	assert.Equal(t, "Start", r.Start.Name)

	require.Len(t, r.Waypoints, 1)
	assert.InDelta(t, 37.15, r.Waypoints[0].Lat, 1e-6)
	assert.Equal(t, "Middle", r.Waypoints[0].Name)

	require.NotNil(t, r.Dest)
	assert.InDelta(t, 37.2, r.Dest.Lat, 1e-6)
	assert.InDelta(t, 127.2, r.Dest.Lng, 1e-6)
	assert.Equal(t, "도착", r.Dest.Name)
}

func TestNormalize_WebDirectionsP(t *testing.T) {
	raw := "https://map.naver.com/p/directions/" +
		mercator(37.1, 127.1) + ",Start,1,PLACE_POI/" +
		mercator(37.9, 127.9) + ",Goal,2,PLACE_POI/" +
		mercator(37.3, 127.3) + ",Via1,3,PLACE_POI/" +
		mercator(37.4, 127.4) + ",Via2,4,PLACE_POI/" +
		"bicycle"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, ModalityBike, r.Modality)
	require.NotNil(t, r.Start)
	assert.Equal(t, "Start", r.Start.Name)
	require.NotNil(t, r.Dest)
	assert.Equal(t, "Goal", r.Dest.Name)
	assert.InDelta(t, 37.9, r.Dest.Lat, 1e-6)
	require.Len(t, r.Waypoints, 2)
	assert.Equal(t, "Via1", r.Waypoints[0].Name)
	assert.Equal(t, "Via2", r.Waypoints[1].Name)
	assert.Empty(t, r.NmapURL)
}

func TestNormalize_WebDirectionsDegrades(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "single place", path: mercator(37.1, 127.1) + ",Only,1,PLACE_POI/car"},
		{name: "no places", path: "car"},
		{name: "unparsable segments", path: "abc,def,Start/1,2/" + mercator(37.2, 127.2) + ",End"},
		{name: "off the globe", path: "1e300,1e300,Far/" + mercator(37.2, 127.2) + ",End"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "https://map.naver.com/v5/directions/" + tt.path

			r, err := New().Normalize(context.Background(), raw)
			require.NoError(t, err)

			assert.Equal(t, SourceWeb, r.Source())
			assert.Nil(t, r.Start)
			assert.Nil(t, r.Dest)
			assert.Empty(t, r.Waypoints)
			assert.Empty(t, r.NmapURL)
			assert.Equal(t, raw, r.OpenURL)
		})
	}
}

func TestNormalize_WebDirectionsSkipsBadSegment(t *testing.T) {
	raw := "https://map.naver.com/v5/directions/" +
		mercator(37.1, 127.1) + ",Start/" +
		"-,-,Broken/" +
		mercator(37.2, 127.2) + ",End/"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	require.NotNil(t, r.Start)
	require.NotNil(t, r.Dest)
	assert.Equal(t, "End", r.Dest.Name)
	assert.Empty(t, r.Waypoints)
	assert.Equal(t, ModalityCar, r.Modality)
}

func TestSplitDirectionsPath(t *testing.T) {
	segments, modality := splitDirectionsPath("https://map.naver.com/v5/directions/a,b,c//d,e,f/walk/car?x=1#frag")
	assert.Equal(t, []string{"a,b,c", "d,e,f"}, segments)
	assert.Equal(t, ModalityCar, modality)

	segments, modality = splitDirectionsPath("https://map.naver.com/p/directions/a,b,c/d,e,f/bicycle?c=15")
	assert.Equal(t, []string{"a,b,c", "d,e,f"}, segments)
	assert.Equal(t, ModalityBike, modality)

	segments, modality = splitDirectionsPath("https://map.naver.com/v5/directions/a,b,c/d,e,f/BIKE")
	assert.Equal(t, []string{"a,b,c", "d,e,f"}, segments)
	assert.Equal(t, ModalityBike, modality)

	segments, modality = splitDirectionsPath("https://map.naver.com/v5/search/cafe")
	assert.Nil(t, segments)
	assert.Equal(t, ModalityCar, modality)
}
