package k8st

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/projectcalico/k8st/internal/logutil"
)

// suiteClock supplies the elapsed-time prefix for log banners. The zero
// point is pinned by the first elapsed call; later callers only read it, so
// successive prefixes are non-decreasing within one clock's lifetime.
type suiteClock struct {
	once  sync.Once
	start time.Time
}

func newSuiteClock() *suiteClock {
	return &suiteClock{}
}

// elapsed returns the duration since the clock's zero point, pinning the
// zero point to now on the first call. Never negative.
func (c *suiteClock) elapsed(now time.Time) time.Duration {
	c.once.Do(func() {
		c.start = now
	})
	d := now.Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}

// LogBanner formats the message with fmt.Sprintf, prefixes it with the
// elapsed time since the suite's first banner (HH:MM:SS, zero-padded), and
// emits it at Info level inside a fixed-width ASCII box sized to the
// message:
//
//	+----------------------+
//	| 00:01:42 message ... |
//	+----------------------+
func (t *TestContext) LogBanner(format string, args ...any) {
	t.logBanner(slog.LevelInfo, format, args...)
}

// LogBannerAt is LogBanner at an explicit severity.
func (t *TestContext) LogBannerAt(level slog.Level, format string, args ...any) {
	t.logBanner(level, format, args...)
}

func (t *TestContext) logBanner(level slog.Level, format string, args ...any) {
	elapsed := t.clock.elapsed(time.Now())
	hours := int(elapsed / time.Hour)
	minutes := int(elapsed/time.Minute) % 60
	seconds := int(elapsed/time.Second) % 60

	msg := fmt.Sprintf("%02d:%02d:%02d ", hours, minutes, seconds) + fmt.Sprintf(format, args...)
	border := "+" + strings.Repeat("-", len(msg)+2) + "+"

	logutil.Logger().Log(context.Background(), level,
		"\n"+border+"\n| "+msg+" |\n"+border)
}
