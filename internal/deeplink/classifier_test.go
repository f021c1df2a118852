package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		dialect Dialect
		text    string
		variant string
	}{
		{
			name:    "nmap",
			raw:     "nmap://route/car?dlat=1&dlng=2",
			dialect: DialectNmap,
			text:    "nmap://route/car?dlat=1&dlng=2",
		},
		{
			name:    "intent",
			raw:     "intent://route/bike?dlat=1&dlng=2#Intent;scheme=nmap;end",
			dialect: DialectIntent,
			text:    "intent://route/bike?dlat=1&dlng=2#Intent;scheme=nmap;end",
		},
		{
			name:    "web directions v5",
			raw:     "https://map.naver.com/v5/directions/1,2,a/3,4,b/car",
			dialect: DialectWebDirections,
			text:    "https://map.naver.com/v5/directions/1,2,a/3,4,b/car",
			variant: VariantV5,
		},
		{
			name:    "web directions p",
			raw:     "HTTP://MAP.NAVER.COM/P/directions/1,2,a/3,4,b",
			dialect: DialectWebDirections,
			text:    "HTTP://MAP.NAVER.COM/P/directions/1,2,a/3,4,b",
			variant: VariantP,
		},
		{
			name:    "shortlink",
			raw:     "https://naver.me/G1abcd",
			dialect: DialectShortlink,
			text:    "https://naver.me/G1abcd",
		},
		{
			name:    "bare shortlink in prose",
			raw:     "코스 링크: naver.me/G1abcd.",
			dialect: DialectShortlink,
			text:    "https://naver.me/G1abcd",
		},
		{
			name:    "bare directions host",
			raw:     "map.naver.com/p/directions/1,2,a/3,4,b",
			dialect: DialectWebDirections,
			text:    "https://map.naver.com/p/directions/1,2,a/3,4,b",
			variant: VariantP,
		},
		{
			name:    "other naver url",
			raw:     "(https://m.place.naver.com/restaurant/1)",
			dialect: DialectWeb,
			text:    "https://m.place.naver.com/restaurant/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := Classify(tt.raw)
			require.NoError(t, err)

			assert.Equal(t, tt.dialect, link.Dialect)
			assert.Equal(t, tt.text, link.Text)
			assert.Equal(t, tt.variant, link.Variant)
		})
	}
}

func TestClassify_SchemaParts(t *testing.T) {
	link, err := Classify("intent://route/walk?dlat=1&dlng=2#Intent;end")
	require.NoError(t, err)

	assert.Equal(t, "walk", link.ModalityWord)
	assert.Equal(t, "dlat=1&dlng=2", link.Query)
}

func TestClassify_SchemeLinksKeptVerbatim(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		dialect Dialect
	}{
		{
			name:    "closing paren in query",
			raw:     "nmap://route/car?dlat=37.2&dlng=127.2&dname=Cafe(2F)",
			dialect: DialectNmap,
		},
		{
			name:    "apostrophe in query",
			raw:     "nmap://route/walk?dlat=37.2&dlng=127.2&dname=McDonald's%20Gangnam",
			dialect: DialectNmap,
		},
		{
			name:    "apostrophe in intent",
			raw:     "intent://route/walk?dlat=37.2&dlng=127.2&dname=A'B#Intent;scheme=nmap;end",
			dialect: DialectIntent,
		},
		{
			name:    "trailing period",
			raw:     "https://map.naver.com/p/directions/1,2,a/3,4,b.",
			dialect: DialectWebDirections,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := Classify("  " + tt.raw + "\n")
			require.NoError(t, err)

			assert.Equal(t, tt.dialect, link.Dialect)
			assert.Equal(t, tt.raw, link.Text)
		})
	}
}

func TestClassify_ProseTokenDropsQuotes(t *testing.T) {
	link, err := Classify(`공유: "nmap://route/car?dlat=1&dlng=2".`)
	require.NoError(t, err)

	assert.Equal(t, DialectNmap, link.Dialect)
	assert.Equal(t, "nmap://route/car?dlat=1&dlng=2", link.Text)
}

func TestClassify_NotRecognized(t *testing.T) {
	for _, raw := range []string{
		"banana",
		"nmap://place?lat=1&lng=2",
		"intent://route/car?dlat=1&dlng=2",
		"intent://route/car?dlat=1&dlng=2#intent;scheme=nmap;end",
		"https://www.google.com/maps/dir/a/b",
	} {
		t.Run(raw, func(t *testing.T) {
			link, err := Classify(raw)
			assert.Nil(t, link)

			var classErr *ClassificationError
			require.ErrorAs(t, err, &classErr)
			assert.Equal(t, raw, classErr.Raw)
		})
	}
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "web-directions", DialectWebDirections.String())
	assert.Equal(t, "unknown", Dialect(0).String())
}

func TestParseModality(t *testing.T) {
	m, ok := ParseModality("BIKE")
	assert.True(t, ok)
	assert.Equal(t, ModalityBike, m)

	m, ok = ParseModality("transit")
	assert.False(t, ok)
	assert.Equal(t, ModalityCar, m)
}
