package output

import (
	"context"
	"sync"
	"time"

	"github.com/robmorgan/lumen/logger"
	"github.com/sirupsen/logrus"
)

// Frames holds the latest rendered DMX frame for each universe.
type Frames struct {
	universes map[int][]byte
	lock      sync.Mutex
}

// NewFrames creates an empty frame buffer.
func NewFrames() *Frames {
	return &Frames{universes: map[int][]byte{}}
}

// Store replaces the frame of a universe.
func (f *Frames) Store(universe int, data []byte) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.universes[universe] = data
}

// Snapshot returns a copy of every stored frame.
func (f *Frames) Snapshot() map[int][]byte {
	f.lock.Lock()
	defer f.lock.Unlock()

	out := make(map[int][]byte, len(f.universes))
	for k, v := range f.universes {
		out[k] = append([]byte(nil), v...)
	}
	return out
}

// OLAClient is the interface for communicating with OLA
type OLAClient interface {
	SendDmx(universe int, values []byte) (status bool, err error)
	Close()
}

// SendDMXWorker sends OLA the latest frame of every universe on each tick. It
// owns client and closes it when ctx is done.
func SendDMXWorker(ctx context.Context, client OLAClient, tick time.Duration, frames *Frames, wg *sync.WaitGroup) error {
	defer wg.Done()
	defer client.Close()

	log := logger.GetProjectLogger()

	t := time.NewTimer(tick)
	defer t.Stop()
	log.WithFields(logrus.Fields{"tick": tick}).Info("SendDMXWorker started")

	for {
		select {
		case <-ctx.Done():
			log.Info("SendDMXWorker shutdown")
			return ctx.Err()
		case <-t.C:
			for universe, data := range frames.Snapshot() {
				if _, err := client.SendDmx(universe, data); err != nil {
					log.WithFields(logrus.Fields{"universe": universe}).Warnf("could not send dmx: %v", err)
				}
			}
			t.Reset(tick)
		}
	}
}
