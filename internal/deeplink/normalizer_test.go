package deeplink

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	expanded string
	err      error
	calls    int
	timeout  time.Duration
}

func (r *stubResolver) Resolve(_ context.Context, _ string, timeout time.Duration) (string, error) {
	r.calls++
	r.timeout = timeout

	return r.expanded, r.err
}

func TestNormalize_NmapConcreteCase(t *testing.T) {
	raw := "nmap://route/car?slat=37.1&slng=127.1&sname=Start&dlat=37.2&dlng=127.2&dname=End&v1lat=37.15&v1lng=127.15&appname=foo"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, ModalityCar, r.Modality)
	require.NotNil(t, r.Start)
	assert.Equal(t, 37.1, r.Start.Lat)
	assert.Equal(t, "Start", r.Start.Name)
	require.NotNil(t, r.Dest)
	assert.Equal(t, 127.2, r.Dest.Lng)
	assert.Equal(t, "End", r.Dest.Name)
	require.Len(t, r.Waypoints, 1)
	assert.Equal(t, GeoPoint{Lat: 37.15, Lng: 127.15}, r.Waypoints[0])
	assert.True(t, strings.HasPrefix(r.NmapURL, "nmap://route/car?"))
	assert.Equal(t,
		"nmap://route/car?slat=37.1&slng=127.1&sname=Start&dlat=37.2&dlng=127.2&dname=End&v1lat=37.15&v1lng=127.15&appname=com.ridingcourse.app",
		r.NmapURL)
	assert.Equal(t, raw, r.OpenURL)
	assert.Equal(t, SourceNmap, r.Source())
	assert.Equal(t, raw, r.Meta[MetaRaw])
}

func TestNormalize_NamesWithPunctuationSurvive(t *testing.T) {
	tests := []struct {
		raw  string
		name string
	}{
		{raw: "nmap://route/car?dlat=37.2&dlng=127.2&dname=Cafe(2F)", name: "Cafe(2F)"},
		{raw: "nmap://route/car?dlat=37.2&dlng=127.2&dname=McDonald's%20Gangnam", name: "McDonald's Gangnam"},
		{raw: "intent://route/walk?dlat=37.2&dlng=127.2&dname=A'B#Intent;scheme=nmap;end", name: "A'B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New().Normalize(context.Background(), tt.raw)
			require.NoError(t, err)

			require.NotNil(t, r.Dest)
			assert.Equal(t, tt.name, r.Dest.Name)
			assert.Equal(t, 37.2, r.Dest.Lat)
		})
	}
}

func TestNormalize_SchemaLinksAlwaysCarDestination(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		modality Modality
	}{
		{name: "car", raw: "nmap://route/car?dlat=37.2&dlng=127.2", modality: ModalityCar},
		{name: "walk", raw: "nmap://route/walk?dlat=-33.8&dlng=151.2", modality: ModalityWalk},
		{name: "bike", raw: "nmap://route/bike?dlat=0&dlng=0&dname=Null%20Island", modality: ModalityBike},
		{name: "upper case scheme", raw: "NMAP://route/Car?dlat=37.2&dlng=127.2", modality: ModalityCar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New().Normalize(context.Background(), tt.raw)
			require.NoError(t, err)
			require.NotNil(t, r.Dest)
			assert.Equal(t, tt.modality, r.Modality)
			assert.True(t, strings.HasPrefix(r.NmapURL, "nmap://route/"+string(tt.modality)+"?"), r.NmapURL)
		})
	}
}

func TestNormalize_IntentConcreteCase(t *testing.T) {
	raw := "intent://route/walk?dlat=37.2&dlng=127.2#Intent;scheme=nmap;package=com.nhn.android.nmap;end"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, ModalityWalk, r.Modality)
	require.NotNil(t, r.Dest)
	assert.Equal(t, 37.2, r.Dest.Lat)
	assert.Equal(t, "intent", r.Meta[MetaSource])
	assert.Equal(t, raw, r.OpenURL)
	assert.Equal(t, "nmap://route/walk?dlat=37.2&dlng=127.2&appname=com.ridingcourse.app", r.NmapURL)
}

func TestNormalize_MissingDestination(t *testing.T) {
	tests := []string{
		"nmap://route/car?slat=37.1&slng=127.1&appname=foo",
		"nmap://route/car?dlat=37.2",
		"nmap://route/car?dlng=127.2",
		"nmap://route/car?dlat=&dlng=127.2",
		"nmap://route/car?dlat=abc&dlng=127.2",
		"nmap://route/car?dlat=95&dlng=127.2",
		"nmap://route/car?dlat=NaN&dlng=127.2",
		"intent://route/car?slat=37.1&slng=127.1#Intent;end",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			r, err := New().Normalize(context.Background(), raw)
			require.Error(t, err)
			assert.Nil(t, r)

			var missing *MissingDestinationError
			assert.True(t, errors.As(err, &missing))
			assert.True(t, IsMissingDestinationError(err))
		})
	}
}

func TestNormalize_MissingDestinationInLenientMode(t *testing.T) {
	_, err := New(WithMode(ModeLenient)).Normalize(context.Background(), "nmap://route/car?slat=1&slng=2")
	assert.True(t, IsMissingDestinationError(err))
}

func TestNormalize_WaypointProbing(t *testing.T) {
	raw := "nmap://route/car?dlat=37.5&dlng=127.5" +
		"&v2lat=37.2&v2lng=127.2&v2name=Second" +
		"&v3lat=bad&v3lng=127.3" +
		"&v4lat=37.4" +
		"&v1lat=37.1&v1lng=127.1" +
		"&v5lat=37.5&v5lng=127.5&v5name=Fifth" +
		"&v6lat=37.6&v6lng=127.6"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	require.Len(t, r.Waypoints, 3)
	assert.Equal(t, 37.1, r.Waypoints[0].Lat)
	assert.Equal(t, "Second", r.Waypoints[1].Name)
	assert.Equal(t, "Fifth", r.Waypoints[2].Name)
	assert.LessOrEqual(t, len(r.Waypoints), MaxSchemaWaypoints)

	// Re-indexed contiguously from 1 in traversal order.
	assert.Contains(t, r.NmapURL, "v1lat=37.1&v1lng=127.1&v2lat=37.2&v2lng=127.2&v2name=Second&v3lat=37.5&v3lng=127.5&v3name=Fifth&appname=")
	assert.NotContains(t, r.NmapURL, "v4lat")
	assert.NotContains(t, r.NmapURL, "37.6")
}

func TestNormalize_MalformedStartIsDropped(t *testing.T) {
	r, err := New().Normalize(context.Background(), "nmap://route/car?slat=x&slng=127&dlat=37.2&dlng=127.2")
	require.NoError(t, err)
	assert.Nil(t, r.Start)
	assert.False(t, strings.Contains(r.NmapURL, "slat"))
}

func TestNormalize_PlusAndPercentDecoding(t *testing.T) {
	raw := "nmap://route/car?dlat=37.55&dlng=126.97&dname=%EC%84%9C%EC%9A%B8+%EC%97%AD&sname=a%2Bb&slat=37.1&slng=127.1"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, "서울 역", r.Dest.Name)
	assert.Equal(t, "a+b", r.Start.Name)
	assert.Contains(t, r.NmapURL, "dname=%EC%84%9C%EC%9A%B8%20%EC%97%AD")
	assert.Contains(t, r.NmapURL, "sname=a%2Bb")
}

func TestNormalize_RepeatedKeyLastValueWins(t *testing.T) {
	r, err := New().Normalize(context.Background(), "nmap://route/car?dlat=1&dlng=2&dlat=3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Dest.Lat)
}

func TestNormalize_RoundTripPreservesDestinationAndOrder(t *testing.T) {
	raw := "nmap://route/bike?dlat=37.123456789&dlng=127.987654321&dname=Goal" +
		"&v1lat=37.01&v1lng=127.01&v1name=One&v2lat=37.02&v2lng=127.02&v2name=Two"
	n := New()

	first, err := n.Normalize(context.Background(), raw)
	require.NoError(t, err)

	second, err := n.Normalize(context.Background(), first.NmapURL)
	require.NoError(t, err)

	assert.Equal(t, first.Dest, second.Dest)
	assert.Equal(t, first.Waypoints, second.Waypoints)
	assert.Equal(t, first.Modality, second.Modality)
	assert.Equal(t, first.NmapURL, second.NmapURL)
}

func TestNormalize_OpenURLIsIdempotent(t *testing.T) {
	for _, raw := range []string{
		"nmap://route/car?slat=37.1&slng=127.1&dlat=37.2&dlng=127.2&v2lat=37.15&v2lng=127.15",
		"intent://route/walk?dlat=37.2&dlng=127.2&dname=%ED%99%88#Intent;scheme=nmap;end",
	} {
		n := New()
		first, err := n.Normalize(context.Background(), raw)
		require.NoError(t, err)

		second, err := n.Normalize(context.Background(), first.OpenURL)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestNormalize_ExtractsLinkFromProse(t *testing.T) {
	raw := "  [네이버 지도]\n라이딩 코스 공유합니다 @nmap://route/bike?dlat=37.2&dlng=127.2&dname=End  "

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, ModalityBike, r.Modality)
	assert.Equal(t, "nmap://route/bike?dlat=37.2&dlng=127.2&dname=End", r.OpenURL)
	assert.Equal(t, raw, r.Meta[MetaRaw])
}

func TestNormalize_Unrecognized(t *testing.T) {
	for _, raw := range []string{"banana", "", "   ", "https://example.com/directions/1,2,a/3,4,b", "mailto:someone@naver.com"} {
		t.Run(raw, func(t *testing.T) {
			r, err := New().Normalize(context.Background(), raw)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, IsClassificationError(err))
			assert.Equal(t, "map-sharing link not recognized", err.Error())
		})
	}
}

func TestNormalize_LenientPlaceholder(t *testing.T) {
	n := New()

	r, err := n.NormalizeWithMode(context.Background(), " banana ", ModeLenient)
	require.NoError(t, err)

	assert.Equal(t, SourceUnknown, r.Source())
	assert.Equal(t, "map-sharing link not recognized", r.Meta[MetaError])
	assert.Equal(t, "banana", r.OpenURL)
	assert.Empty(t, r.NmapURL)
	assert.Nil(t, r.Dest)
	assert.NotNil(t, r.Waypoints)
	assert.Empty(t, r.Waypoints)

	r, err = New(WithMode(ModeLenient)).Normalize(context.Background(), "banana")
	require.NoError(t, err)
	assert.Equal(t, SourceUnknown, r.Source())
}

func TestNormalize_CatchAllWeb(t *testing.T) {
	raw := "https://m.map.naver.com/search2/site.naver?code=123"

	r, err := New().Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, SourceWeb, r.Source())
	assert.Equal(t, raw, r.OpenURL)
	assert.Empty(t, r.NmapURL)
	assert.Nil(t, r.Dest)
	assert.Nil(t, r.Start)
	assert.Empty(t, r.Waypoints)
	assert.Equal(t, ModalityCar, r.Modality)
}

func TestNormalize_ShortlinkWithoutResolver(t *testing.T) {
	r, err := New().Normalize(context.Background(), "naver.me/xYz123")
	require.NoError(t, err)

	assert.Equal(t, SourceWebShort, r.Source())
	assert.Equal(t, "https://naver.me/xYz123", r.OpenURL)
	assert.Empty(t, r.NmapURL)
	assert.Nil(t, r.Dest)
}

func TestNormalize_ShortlinkResolved(t *testing.T) {
	start := mercator(37.5665, 126.9780)
	dest := mercator(37.4563, 126.7052)
	expanded := "https://map.naver.com/v5/directions/" + start + ",Seoul/" + dest + ",Incheon/bike?c=15,0,0,0,dh"
	resolver := &stubResolver{expanded: expanded}

	r, err := New(WithResolver(resolver, 2*time.Second)).Normalize(context.Background(), "https://naver.me/abc")
	require.NoError(t, err)

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, 2*time.Second, resolver.timeout)
	assert.Equal(t, SourceWeb, r.Source())
	assert.Equal(t, "https://naver.me/abc", r.OpenURL)
	assert.Equal(t, expanded, r.Meta[MetaExpandedURL])
	assert.Equal(t, ModalityBike, r.Modality)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.Dest)
	assert.InDelta(t, 37.5665, r.Start.Lat, 1e-6)
	assert.Equal(t, "Incheon", r.Dest.Name)
	assert.Empty(t, r.NmapURL)
}

func TestNormalize_ShortlinkFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		resolver *stubResolver
	}{
		{name: "network error", resolver: &stubResolver{err: errors.New("dial tcp: i/o timeout")}},
		{name: "expanded elsewhere", resolver: &stubResolver{expanded: "https://map.naver.com/p/entry/place/123"}},
		{name: "empty expansion", resolver: &stubResolver{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(WithResolver(tt.resolver, 0)).Normalize(context.Background(), "see https://naver.me/abc!")
			require.NoError(t, err)

			assert.Equal(t, DefaultShortlinkTimeout, tt.resolver.timeout)
			assert.Equal(t, SourceWebShort, r.Source())
			assert.Equal(t, "https://naver.me/abc", r.OpenURL)
			assert.Empty(t, r.Waypoints)
			assert.Nil(t, r.Start)
			assert.Nil(t, r.Dest)
			assert.Empty(t, r.NmapURL)
			assert.NotContains(t, r.Meta, MetaExpandedURL)
		})
	}
}

func TestNormalize_CustomAppName(t *testing.T) {
	r, err := New(WithAppName("com.example/app")).Normalize(context.Background(), "nmap://route/car?dlat=1&dlng=2")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(r.NmapURL, "&appname=com.example%2Fapp"))
}

func TestNormalize_DestAbsentImpliesNoNmapURL(t *testing.T) {
	inputs := []string{
		"https://map.naver.com/v5/directions/14142058.54,4518168.75,Start",
		"https://map.naver.com/v5/search/cafe",
		"https://naver.me/abc",
		"nmap://route/car?dlat=1&dlng=2",
	}

	for _, raw := range inputs {
		r, err := New().Normalize(context.Background(), raw)
		require.NoError(t, err)
		if r.Dest == nil {
			assert.Empty(t, r.NmapURL, raw)
		}
	}
}
