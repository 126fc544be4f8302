package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/http/httptest"
	"strings"
	"syscall"
	"testing"

	"github.com/corey/distance/internal/adapters/web"
	"github.com/corey/distance/internal/domain/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		serverURL = ""
		verbose = false
	})
	err := Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	out, err := runCmd(t, "calc", "3", "4", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "distance = 5")
}

func TestCalc_MissingArgsAreZero(t *testing.T) {
	out, err := runCmd(t, "calc", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "distance = 7")
	assert.Contains(t, out, "(7, 0, 0)")
}

func TestCalc_InvalidInput(t *testing.T) {
	_, err := runCmd(t, "calc", "abc")
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
}

func TestCalc_TooManyArgs(t *testing.T) {
	_, err := runCmd(t, "calc", "1", "2", "3", "4")
	assert.Error(t, err)
}

func TestCalc_NegativeCoordinates(t *testing.T) {
	tests := []struct {
		args  []string
		point string
		dist  string
	}{
		{[]string{"calc", "-3", "4"}, "(-3, 4, 0)", "distance = 5"},
		{[]string{"calc", "3", "-4", "0"}, "(3, -4, 0)", "distance = 5"},
		{[]string{"calc", "-3", "-4"}, "(-3, -4, 0)", "distance = 5"},
		{[]string{"calc", "-.6", "-.8"}, "(-0.6, -0.8, 0)", "distance = 1"},
		{[]string{"calc", "--", "-3", "-4"}, "(-3, -4, 0)", "distance = 5"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.point)
			assert.Contains(t, out, tt.dist)
		})
	}
}

func TestCalc_UnknownFlag(t *testing.T) {
	_, err := runCmd(t, "calc", "--bogus", "1")
	assert.ErrorContains(t, err, "unknown flag: --bogus")
}

func TestCalc_Help(t *testing.T) {
	out, err := runCmd(t, "calc", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "distance calc -3 -4")
}

func TestQuery_NegativeCoordinates(t *testing.T) {
	ts := httptest.NewServer(web.NewServer(nil).Handler())
	defer ts.Close()

	out, err := runCmd(t, "query", "--url", ts.URL, "-1", "-2", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "distance = 3")
	assert.Contains(t, out, "(-1, -2, 2)")

	out, err = runCmd(t, "query", "-3", "--url="+ts.URL, "4")
	require.NoError(t, err)
	assert.Contains(t, out, "distance = 5")
}

func TestQuery_MissingURLValue(t *testing.T) {
	_, err := runCmd(t, "query", "1", "--url")
	assert.ErrorContains(t, err, "--url")
}

func TestSplitCoordArgs(t *testing.T) {
	got, err := splitCoordArgs([]string{"-3", "4"}, false)
	require.NoError(t, err)
	assert.Equal(t, [3]string{"-3", "4", ""}, got.coords)

	_, err = splitCoordArgs([]string{"--url", "http://x"}, false)
	assert.Error(t, err, "--url is not a calc flag")

	_, err = splitCoordArgs([]string{"1", "2", "3", "4"}, false)
	assert.ErrorContains(t, err, "at most 3")

	assert.True(t, isNegativeNumber("-3"))
	assert.True(t, isNegativeNumber("-.5"))
	assert.False(t, isNegativeNumber("-v"))
	assert.False(t, isNegativeNumber("-"))
	assert.False(t, isNegativeNumber("3"))
}

func TestHealth_NoServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	url := "http://" + ln.Addr().String()
	ln.Close()

	out, err := runCmd(t, "health", "--url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "no distance server")
}

func TestIsAddrInUse(t *testing.T) {
	assert.False(t, isAddrInUse(nil))
	assert.True(t, isAddrInUse(fmt.Errorf("listen :3000: %w", syscall.EADDRINUSE)))
	assert.True(t, isAddrInUse(errors.New("bind: address already in use")))
	assert.False(t, isAddrInUse(errors.New("permission denied")))
}

func TestDiagnoseAddrInUse_UnknownHolder(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	msg := diagnoseAddrInUse(port)
	assert.Contains(t, msg, fmt.Sprintf("port %d is in use by another process", port))
}
