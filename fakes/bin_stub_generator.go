package fakes

import (
	"sync"

	"github.com/jruby-gems/rubygoals"
)

type BinStubGenerator struct {
	GenerateCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			StubConfig rubygoals.StubConfig
		}
		Returns struct {
			Error error
		}
		Stub func(rubygoals.StubConfig) error
	}
}

func (f *BinStubGenerator) Generate(param1 rubygoals.StubConfig) error {
	f.GenerateCall.mutex.Lock()
	defer f.GenerateCall.mutex.Unlock()
	f.GenerateCall.CallCount++
	f.GenerateCall.Receives.StubConfig = param1
	if f.GenerateCall.Stub != nil {
		return f.GenerateCall.Stub(param1)
	}
	return f.GenerateCall.Returns.Error
}
