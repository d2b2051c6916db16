package fakes

import "sync"

type ChangeDetector struct {
	ShouldRunCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Descriptor string
			OutputDir  string
		}
		Returns struct {
			Bool  bool
			Error error
		}
		Stub func(string, string) (bool, error)
	}
}

func (f *ChangeDetector) ShouldRun(param1 string, param2 string) (bool, error) {
	f.ShouldRunCall.mutex.Lock()
	defer f.ShouldRunCall.mutex.Unlock()
	f.ShouldRunCall.CallCount++
	f.ShouldRunCall.Receives.Descriptor = param1
	f.ShouldRunCall.Receives.OutputDir = param2
	if f.ShouldRunCall.Stub != nil {
		return f.ShouldRunCall.Stub(param1, param2)
	}
	return f.ShouldRunCall.Returns.Bool, f.ShouldRunCall.Returns.Error
}
