// Package journal is a persistent event outbox.
// Append is durable once it returns, Run delivers entries in order at least once.
package journal

import (
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/helpers"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/spq"
)

const modName string = "journal"

// OnlyForTesting opens journal in memory.
const OnlyForTesting = spq.OnlyForTesting

type HandleFunc func(e *Entry) error

type Journal struct {
	Log   *log2.Log
	Retry helpers.Backoff

	q     *spq.Queue
	alive *alive.Alive
}

func Open(log *log2.Log, path string) (*Journal, error) {
	q, err := spq.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "%s open path=%s", modName, path)
	}
	return &Journal{
		Log:   log,
		Retry: helpers.Backoff{Min: 100 * time.Millisecond, Max: 30 * time.Second, K: 2},
		q:     q,
		alive: alive.NewAlive(),
	}, nil
}

func (self *Journal) Append(b *event.Buffer, mem event.Memory) error {
	if err := self.q.MarshalPush(NewEntry(b, mem)); err != nil {
		return errors.Annotatef(err, "%s append type=%s", modName, b.Type().String())
	}
	return nil
}

// Close stops Run and waits for it to return.
func (self *Journal) Close() error {
	self.alive.Stop()
	err := self.q.Close()
	self.alive.Wait()
	return err
}

// Run calls fn for each entry, oldest first, until Close.
// Entry is deleted after fn returns nil, otherwise retried with backoff.
// Corrupt entries are logged and deleted.
func (self *Journal) Run(fn HandleFunc) {
	if !self.alive.Add(1) {
		return
	}
	defer self.alive.Done()
	stopch := self.alive.StopChan()
	for {
		box, err := self.q.Peek()
		switch err {
		case nil:
		case spq.ErrClosed:
			return
		default:
			self.Log.Errorf("CRITICAL %s peek err=%v", modName, err)
			select {
			case <-time.After(self.Retry.Max):
				continue
			case <-stopch:
				return
			}
		}

		var e Entry
		if err := box.Unmarshal(&e); err != nil {
			self.Log.Errorf("%s skip corrupt b=%x err=%v", modName, box.Bytes(), err)
			self.delete(box)
			continue
		}
		if err := fn(&e); err != nil {
			self.Log.Errorf("%s handle type=%s err=%v", modName, e.Buf.Type().String(), err)
			self.Retry.Failure()
			select {
			case <-time.After(self.Retry.DelayBefore()):
			case <-stopch:
				return
			}
			continue
		}
		self.Retry.Reset()
		self.delete(box)
	}
}

func (self *Journal) delete(box spq.Box) {
	if err := self.q.Delete(box); err != nil && err != spq.ErrClosed {
		self.Log.Errorf("%s delete err=%v", modName, err)
	}
}
