package director

import (
	"bufio"
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// ListenPause flips paused on every line read from in, until in is
// exhausted.
func ListenPause(in io.Reader, paused *atomic.Bool, log logrus.FieldLogger) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		isPaused := !paused.Load()
		paused.Store(isPaused)

		if isPaused {
			log.Info("Paused; press Enter to resume")
		} else {
			log.Info("Resumed")
		}
	}
	return scanner.Err()
}
