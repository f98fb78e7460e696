package tui

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/leadsheet/internal/core/notify"
	"github.com/hay-kot/leadsheet/internal/core/styles"
)

const (
	defaultToastTTL   = 3 * time.Second
	defaultMaxToasts  = 4
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 40
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
	count        int
}

// ToastController tracks the transient messages shown over the chart.
type ToastController struct {
	toasts  []toast
	ticking bool
	now     func() time.Time
}

func NewToastController() *ToastController {
	return &ToastController{now: time.Now}
}

// Push adds a notification. Repeating the newest message refreshes it
// instead of stacking a copy; past defaultMaxToasts the oldest is evicted.
func (c *ToastController) Push(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = c.now()
	}

	if last := len(c.toasts) - 1; last >= 0 {
		newest := &c.toasts[last]
		if newest.notification.Level == n.Level && newest.notification.Message == n.Message {
			newest.notification.CreatedAt = n.CreatedAt
			newest.remaining = defaultToastTTL
			newest.count++
			return
		}
	}

	c.toasts = append(c.toasts, toast{notification: n, remaining: defaultToastTTL, count: 1})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick ages every toast by d and drops the expired ones.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// DismissAll removes every toast.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the active toasts, oldest first.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

func (c *ToastController) Ticking() bool {
	return c.ticking
}

func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView draws the controller's toasts.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toasts stacked vertically, newest at the bottom, each at
// most width cells wide.
func (v *ToastView) View(width int) string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	w := toastWidth
	if width > 0 {
		w = min(w, width-2)
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t, w))
	}
	return strings.Join(rendered, "\n")
}

func renderToast(t toast, width int) string {
	var (
		icon  string
		style lipgloss.Style
	)

	switch t.notification.Level {
	case notify.LevelError:
		icon, style = styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		icon, style = styles.IconNotifyWarning, styles.ToastWarningStyle
	default:
		icon, style = styles.IconNotifyInfo, styles.ToastInfoStyle
	}

	content := icon + " " + t.notification.Message
	if t.count > 1 {
		content += " ×" + strconv.Itoa(t.count)
	}
	return style.Width(width).Render(content)
}

// Overlay composites the toasts over background in its lower-right corner,
// leaving the bottom reserved lines uncovered.
func (v *ToastView) Overlay(background string, width, height, reserved int) string {
	content := v.View(width)
	if content == "" {
		return background
	}

	layer := lipgloss.NewLayer(content)
	x := max(width-lipgloss.Width(content)-1, 0)
	y := max(height-reserved-lipgloss.Height(content), 0)
	layer.X(x).Y(y).Z(2)

	return lipgloss.NewCompositor(lipgloss.NewLayer(background), layer).Render()
}
