package deeplink

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const directionsMarker = "/directions/"

// modalityPrefixes maps trailing path segments to a modality. The web client
// spells cycling as "bicycle".
var modalityPrefixes = []struct {
	prefix   string
	modality Modality
}{
	{prefix: "car", modality: ModalityCar},
	{prefix: "walk", modality: ModalityWalk},
	{prefix: "bicycle", modality: ModalityBike},
	{prefix: "bike", modality: ModalityBike},
}

// decodeWebDirections decodes map.naver.com/{v5,p}/directions/... URLs.
// Places are "x,y,name,id,type,..." segments in Web-Mercator meters. Segments that
// cannot be read are skipped, and no canonical nmap link is produced.
func decodeWebDirections(text, variant, raw string) *NormalizedRoute {
	result := bestEffort(SourceWeb, text, raw)

	segments, modality := splitDirectionsPath(text)
	result.Modality = modality

	places := make([]GeoPoint, 0, len(segments))
	for _, segment := range segments {
		if p, ok := parsePlace(segment); ok {
			places = append(places, p)
		}
	}

	if len(places) < 2 {
		return result
	}

	start := places[0]
	result.Start = &start

	// v5 lists places in traversal order; p puts the destination second.
	var dest GeoPoint
	switch variant {
	case VariantP:
		dest = places[1]
		result.Waypoints = append(result.Waypoints, places[2:]...)
	default:
		dest = places[len(places)-1]
		result.Waypoints = append(result.Waypoints, places[1:len(places)-1]...)
	}
	result.Dest = &dest

	return result
}

// splitDirectionsPath returns the place segments after "/directions/" and the
// modality named by trailing car/walk/bike segments.
func splitDirectionsPath(text string) ([]string, Modality) {
	path := text
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	i := strings.Index(strings.ToLower(path), directionsMarker)
	if i < 0 {
		return nil, ModalityCar
	}

	segments := make([]string, 0, 4)
	for _, s := range strings.Split(path[i+len(directionsMarker):], "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	modality := ModalityCar
	found := false
	for len(segments) > 0 {
		m, ok := modalityPrefix(segments[len(segments)-1])
		if !ok {
			break
		}
		if !found {
			modality = m
			found = true
		}
		segments = segments[:len(segments)-1]
	}

	return segments, modality
}

func modalityPrefix(segment string) (Modality, bool) {
	lower := strings.ToLower(segment)
	for _, p := range modalityPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.modality, true
		}
	}

	return "", false
}

func parsePlace(segment string) (GeoPoint, bool) {
	fields := strings.Split(segment, ",")
	if len(fields) < 3 {
		return GeoPoint{}, false
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return GeoPoint{}, false
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return GeoPoint{}, false
	}

	p := MercatorToWGS84(x, y)
	if !validLatLng(p.Lat, p.Lng) {
		return GeoPoint{}, false
	}
	p.Name = decodeName(fields[2])

	return p, true
}

func decodeName(s string) string {
	name, err := url.PathUnescape(s)
	if err != nil {
		return s
	}

	return name
}
