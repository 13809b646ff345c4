package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tt/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ShowsRunningTimer(t *testing.T) {
	env := testApp(t, "")
	_, err := executeCmd(t, env.app, "start", "Acme", "Web", "review")
	require.NoError(t, err)
	env.clock.Advance(20*time.Minute + 5*time.Second)

	d := teatest.New(t, newWatchModel(context.Background(), env.app.Timer, 900), teatest.WithSize(80, 24))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "Acme - Web")
	assert.Contains(t, view, "0:20:05")
	assert.Contains(t, view, "0h 30m")
	assert.Contains(t, view, "- review")
	assert.Contains(t, view, "stop timer")
	assert.False(t, d.Quitting)
}

func TestWatch_IdleView(t *testing.T) {
	env := testApp(t, "")

	d := teatest.New(t, newWatchModel(context.Background(), env.app.Timer, 900))
	d.DrainInit()

	assert.Contains(t, d.View(), "No timer running.")
}

func TestWatch_StopKeyCommitsAndQuits(t *testing.T) {
	env := testApp(t, "")
	_, err := executeCmd(t, env.app, "start", "Acme", "Web")
	require.NoError(t, err)
	env.clock.Advance(10 * time.Minute)

	d := teatest.New(t, newWatchModel(context.Background(), env.app.Timer, 900))
	d.DrainInit()
	d.PressKey('s')

	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Stopped: Acme - Web (Billed: 0h 15m)")
	assert.NotContains(t, d.View(), "stop timer")
	assert.Nil(t, currentSession(t, env.app))
}

func TestWatch_RefreshPicksUpChanges(t *testing.T) {
	env := testApp(t, "")

	d := teatest.New(t, newWatchModel(context.Background(), env.app.Timer, 900))
	d.DrainInit()
	require.Contains(t, d.View(), "No timer running.")

	_, err := executeCmd(t, env.app, "start", "Beta", "Ops")
	require.NoError(t, err)
	d.PressKey('r')

	assert.Contains(t, d.View(), "Beta - Ops")
}

func TestWatch_QuitLeavesTimerRunning(t *testing.T) {
	env := testApp(t, "")
	_, err := executeCmd(t, env.app, "start", "Acme", "Web")
	require.NoError(t, err)

	d := teatest.New(t, newWatchModel(context.Background(), env.app.Timer, 900))
	d.DrainInit()
	d.PressCtrlC()

	assert.True(t, d.Quitting)
	assert.NotNil(t, currentSession(t, env.app))
}
