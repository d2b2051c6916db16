package fakes

import "sync"

type ExecutableMarker struct {
	MarkExecutableCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Path string
		}
		Returns struct {
			Error error
		}
		Stub func(string) error
	}
}

func (f *ExecutableMarker) MarkExecutable(param1 string) error {
	f.MarkExecutableCall.mutex.Lock()
	defer f.MarkExecutableCall.mutex.Unlock()
	f.MarkExecutableCall.CallCount++
	f.MarkExecutableCall.Receives.Path = param1
	if f.MarkExecutableCall.Stub != nil {
		return f.MarkExecutableCall.Stub(param1)
	}
	return f.MarkExecutableCall.Returns.Error
}
