package fakes

import (
	"sync"

	"github.com/jruby-gems/rubygoals"
)

type Installer struct {
	InstallCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			GemRequest rubygoals.GemRequest
		}
		Returns struct {
			Error error
		}
		Stub func(rubygoals.GemRequest) error
	}
}

func (f *Installer) Install(param1 rubygoals.GemRequest) error {
	f.InstallCall.mutex.Lock()
	defer f.InstallCall.mutex.Unlock()
	f.InstallCall.CallCount++
	f.InstallCall.Receives.GemRequest = param1
	if f.InstallCall.Stub != nil {
		return f.InstallCall.Stub(param1)
	}
	return f.InstallCall.Returns.Error
}
