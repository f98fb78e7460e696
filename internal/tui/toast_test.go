package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/leadsheet/internal/core/notify"
	"github.com/hay-kot/leadsheet/internal/core/styles"
	"github.com/hay-kot/leadsheet/pkg/tuitest"
)

func TestToastController_Push(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewToastController()
	c.now = func() time.Time { return now }

	c.Push(notify.Infof("Saved to %s", "a.yaml"))

	require.Len(t, c.Toasts(), 1)
	got := c.Toasts()[0]
	assert.Equal(t, "Saved to a.yaml", got.notification.Message)
	assert.Equal(t, now, got.notification.CreatedAt)
	assert.Equal(t, defaultToastTTL, got.remaining)
}

func TestToastController_Push_repeatRefreshes(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Infof("8 subdivisions"))
	c.Tick(time.Second)
	c.Push(notify.Infof("8 subdivisions"))

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, 2, c.Toasts()[0].count)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)

	c.Push(notify.Warnf("8 subdivisions"))
	assert.Len(t, c.Toasts(), 2)
}

func TestToastController_Push_evictsOldest(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Infof("%d", i))
	}

	require.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Infof("expires"))
	c.Push(notify.Infof("survives"))
	c.toasts[0].remaining = 50 * time.Millisecond

	c.Tick(toastTickInterval)

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
	assert.Equal(t, defaultToastTTL-toastTickInterval, c.Toasts()[0].remaining)
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Infof("a"))
	c.Push(notify.Infof("b"))

	c.DismissAll()

	assert.False(t, c.HasToasts())
}

func TestToastView_View(t *testing.T) {
	tests := []struct {
		n    notify.Notification
		icon string
	}{
		{notify.Errorf("boom"), styles.IconNotifyError},
		{notify.Warnf("careful"), styles.IconNotifyWarning},
		{notify.Infof("fine"), styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.n.Level), func(t *testing.T) {
			c := NewToastController()
			c.Push(tt.n)

			out := NewToastView(c).View(80)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, tt.n.Message)
		})
	}
}

func TestToastView_View_emptyAndOrder(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)
	assert.Empty(t, v.View(80))

	c.Push(notify.Infof("first"))
	c.Push(notify.Errorf("second"))

	out := v.View(80)
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestToastView_Overlay(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)

	row := strings.Repeat(".", 60)
	bg := strings.TrimSuffix(strings.Repeat(row+"\n", 20), "\n")
	assert.Equal(t, bg, v.Overlay(bg, 60, 20, 2))

	c.Push(notify.Infof("placed"))
	lines := strings.Split(tuitest.StripANSI(v.Overlay(bg, 60, 20, 2)), "\n")

	require.Len(t, lines, 20)
	assert.Equal(t, row, lines[19], "reserved lines stay uncovered")
	assert.Equal(t, row, lines[18])
	assert.Contains(t, lines[16], "placed")
	assert.True(t, strings.HasPrefix(lines[16], "..."), "toast sits on the right")
}
