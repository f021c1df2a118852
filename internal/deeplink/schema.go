package deeplink

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"ridingcourse/internal/errors"
)

var errCoordinateOutOfRange = errors.New("coordinate out of range")

// decodeSchema decodes the nmap and intent dialects, which share the nmap query parameters.
func decodeSchema(link *Link, source Source, raw, appName string) (*NormalizedRoute, error) {
	params := parseSchemaQuery(link.Query)

	waypoints := make([]GeoPoint, 0, MaxSchemaWaypoints)
	for i := 1; i <= MaxSchemaWaypoints; i++ {
		prefix := "v" + strconv.Itoa(i)
		// A malformed waypoint is dropped; it never fails the link.
		if p, err := parsePoint(params, prefix); err == nil && p != nil {
			waypoints = append(waypoints, *p)
		}
	}

	dest, err := parsePoint(params, "d")
	if err != nil {
		return nil, &MissingDestinationError{Field: "dlat/dlng", Err: err}
	}
	if dest == nil {
		return nil, &MissingDestinationError{Field: "dlat/dlng"}
	}

	// start is optional; a malformed one is treated as absent.
	start, _ := parsePoint(params, "s")

	modalityWord := strings.ToLower(link.ModalityWord)
	modality, _ := ParseModality(modalityWord)

	return &NormalizedRoute{
		Modality:  modality,
		Start:     start,
		Waypoints: waypoints,
		Dest:      dest,
		OpenURL:   link.Text,
		NmapURL:   buildNmapURL(modalityWord, start, *dest, waypoints, appName),
		Meta:      newMeta(source, raw),
	}, nil
}

// parseSchemaQuery decodes the query with '+' kept as a space; the last value of a repeated key wins.
func parseSchemaQuery(query string) map[string]string {
	// ParseQuery skips undecodable pairs and keeps going; the partial result is what we want.
	values, _ := url.ParseQuery(strings.ReplaceAll(query, "+", "%20"))

	params := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			params[key] = vs[len(vs)-1]
		}
	}

	return params
}

// parsePoint reads {prefix}lat, {prefix}lng and {prefix}name.
// It returns nil without error when either coordinate is absent.
func parsePoint(params map[string]string, prefix string) (*GeoPoint, error) {
	latText := params[prefix+"lat"]
	lngText := params[prefix+"lng"]
	if latText == "" || lngText == "" {
		return nil, nil
	}

	lat, err := parseCoordinate(latText)
	if err != nil {
		return nil, errors.Wrapf(err, "%slat", prefix)
	}
	lng, err := parseCoordinate(lngText)
	if err != nil {
		return nil, errors.Wrapf(err, "%slng", prefix)
	}
	if !validLatLng(lat, lng) {
		return nil, errors.Wrapf(errCoordinateOutOfRange, "%slat/%slng", prefix, prefix)
	}

	return &GeoPoint{Lat: lat, Lng: lng, Name: params[prefix+"name"]}, nil
}

func parseCoordinate(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errCoordinateOutOfRange
	}

	return f, nil
}
