package deeplink

import (
	"net/url"
	"strconv"
	"strings"
)

type queryParam struct {
	key   string
	value string
}

// encodeQuery joins ordered pairs into key=value&... with fully escaped values.
func encodeQuery(params []queryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(percentEncode(p.value))
	}

	return b.String()
}

// percentEncode escapes every byte outside the RFC 3986 unreserved set, '/' and ':' included.
// QueryEscape already does so except that it writes a space as '+'; a literal '+' is
// emitted as %2B, so swapping the remaining '+' for %20 is exact.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func appendPoint(params []queryParam, prefix string, p GeoPoint) []queryParam {
	params = append(params,
		queryParam{key: prefix + "lat", value: formatCoordinate(p.Lat)},
		queryParam{key: prefix + "lng", value: formatCoordinate(p.Lng)},
	)
	if p.Name != "" {
		params = append(params, queryParam{key: prefix + "name", value: p.Name})
	}

	return params
}

// buildNmapURL re-encodes a schema route into the app's canonical deep link.
// Waypoints are re-indexed from 1 in traversal order.
func buildNmapURL(modalityWord string, start *GeoPoint, dest GeoPoint, waypoints []GeoPoint, appName string) string {
	params := make([]queryParam, 0, 3*(len(waypoints)+2)+1)
	if start != nil {
		params = appendPoint(params, "s", *start)
	}
	params = appendPoint(params, "d", dest)
	for i, w := range waypoints {
		params = appendPoint(params, "v"+strconv.Itoa(i+1), w)
	}
	params = append(params, queryParam{key: "appname", value: appName})

	return "nmap://route/" + modalityWord + "?" + encodeQuery(params)
}
