package tele

import (
	"fmt"
	"sync"
)

type Stat struct {
	Sent          uint32
	SendFail      uint32
	Injected      uint32
	InjectInvalid uint32
	InjectDropped uint32
}

func (s Stat) String() string {
	return fmt.Sprintf("sent=%d send_fail=%d injected=%d inject_invalid=%d inject_dropped=%d",
		s.Sent, s.SendFail, s.Injected, s.InjectInvalid, s.InjectDropped)
}

type lockedStat struct {
	sync.Mutex
	Stat
}

func (self *lockedStat) modify(f func(*Stat)) {
	self.Lock()
	f(&self.Stat)
	self.Unlock()
}

func (self *lockedStat) copy() Stat {
	self.Lock()
	defer self.Unlock()
	return self.Stat
}
