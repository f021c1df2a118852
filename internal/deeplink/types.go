// Package deeplink normalizes shared map links into one canonical route representation.
//
// Five link dialects are recognized: the nmap:// app scheme, Android intent:// URIs,
// the two map.naver.com web directions variants (v5 and p) and naver.me shortlinks.
// Any other naver.* URL is accepted as an unparsed best-effort web link.
package deeplink

import "strings"

// Modality is the travel mode carried by a route link.
type Modality string

const (
	ModalityCar  Modality = "car"
	ModalityWalk Modality = "walk"
	ModalityBike Modality = "bike"
)

// ParseModality maps a dialect modality word onto a Modality.
func ParseModality(s string) (Modality, bool) {
	switch Modality(strings.ToLower(s)) {
	case ModalityCar:
		return ModalityCar, true
	case ModalityWalk:
		return ModalityWalk, true
	case ModalityBike:
		return ModalityBike, true
	default:
		return ModalityCar, false
	}
}

// Source tags which decoder produced a NormalizedRoute.
type Source string

const (
	SourceNmap     Source = "nmap"
	SourceIntent   Source = "intent"
	SourceWeb      Source = "web"
	SourceWebShort Source = "web-short"
	SourceUnknown  Source = "unknown"
)

// Meta keys.
const (
	MetaSource      = "source"
	MetaRaw         = "raw"
	MetaError       = "error"
	MetaExpandedURL = "expandedUrl"
)

// MaxSchemaWaypoints is the number of v1..v5 waypoint slots of the schema dialects.
const MaxSchemaWaypoints = 5

// GeoPoint is a WGS-84 coordinate with an optional label.
type GeoPoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name,omitempty"`
}

// NormalizedRoute is the canonical output of the normalization pipeline.
// Dest is nil for most web-derived results and NmapURL is empty whenever Dest is nil.
type NormalizedRoute struct {
	Modality  Modality          `json:"modality"`
	Start     *GeoPoint         `json:"start"`
	Waypoints []GeoPoint        `json:"waypoints"`
	Dest      *GeoPoint         `json:"dest"`
	OpenURL   string            `json:"openUrl"`
	NmapURL   string            `json:"nmapUrl,omitempty"`
	Meta      map[string]string `json:"meta"`
}

// Source returns the decoder tag recorded in Meta.
func (r *NormalizedRoute) Source() Source {
	return Source(r.Meta[MetaSource])
}

// Points returns start, waypoints and dest in traversal order, skipping absent ends.
func (r *NormalizedRoute) Points() []GeoPoint {
	points := make([]GeoPoint, 0, len(r.Waypoints)+2)
	if r.Start != nil {
		points = append(points, *r.Start)
	}
	points = append(points, r.Waypoints...)
	if r.Dest != nil {
		points = append(points, *r.Dest)
	}

	return points
}

func newMeta(source Source, raw string) map[string]string {
	return map[string]string{
		MetaSource: string(source),
		MetaRaw:    raw,
	}
}

// bestEffort builds a result that only carries the link to open.
func bestEffort(source Source, openURL, raw string) *NormalizedRoute {
	return &NormalizedRoute{
		Modality:  ModalityCar,
		Waypoints: []GeoPoint{},
		OpenURL:   openURL,
		Meta:      newMeta(source, raw),
	}
}

func validLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
