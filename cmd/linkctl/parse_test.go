package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ridingcourse/internal/deeplink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := buildRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()

	return out.String(), err
}

func TestParseCmd_Nmap(t *testing.T) {
	out, err := execute(t, "", "parse", "--offline", "--app-name", "com.example",
		"nmap://route/bicycle?dlat=37.5&dlng=127.0&dname=Goal")
	require.NoError(t, err)

	var route deeplink.NormalizedRoute
	require.NoError(t, json.Unmarshal([]byte(out), &route))
	assert.Equal(t, deeplink.SourceNmap, route.Source())
	require.NotNil(t, route.Dest)
	assert.Equal(t, "Goal", route.Dest.Name)
	assert.Contains(t, route.NmapURL, "appname=com.example")
}

func TestParseCmd_OfflineShortlink(t *testing.T) {
	out, err := execute(t, "", "parse", "--offline", "https://naver.me/xAbC12")
	require.NoError(t, err)

	var route deeplink.NormalizedRoute
	require.NoError(t, json.Unmarshal([]byte(out), &route))
	assert.Equal(t, deeplink.SourceWebShort, route.Source())
	assert.Equal(t, "https://naver.me/xAbC12", route.OpenURL)
}

func TestParseCmd_Unrecognized(t *testing.T) {
	_, err := execute(t, "", "parse", "--offline", "banana")

	var classErr *deeplink.ClassificationError
	assert.ErrorAs(t, err, &classErr)

	out, err := execute(t, "", "parse", "--offline", "--lenient", "banana")
	require.NoError(t, err)
	assert.Contains(t, out, `"unknown"`)
}

func TestParseCmd_Stdin(t *testing.T) {
	stdin := "nmap://route/walk?dlat=1&dlng=2\n\nintent://route/car?dlat=3&dlng=4#Intent;scheme=nmap;end\n"

	out, err := execute(t, stdin, "parse", "--offline", "-")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var sources []deeplink.Source
	for dec.More() {
		var route deeplink.NormalizedRoute
		require.NoError(t, dec.Decode(&route))
		sources = append(sources, route.Source())
	}
	assert.Equal(t, []deeplink.Source{deeplink.SourceNmap, deeplink.SourceIntent}, sources)
}

func TestParseCmd_RequiresOneArg(t *testing.T) {
	_, err := execute(t, "", "parse")
	assert.Error(t, err)
}
