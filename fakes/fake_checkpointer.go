// This file was generated by counterfeiter
package fakes

import (
	"sync"

	"code.cloudfoundry.org/cryo"
)

type FakeCheckpointer struct {
	SupportedStub        func() bool
	supportedMutex       sync.RWMutex
	supportedArgsForCall []struct{}
	supportedReturns     struct {
		result1 bool
	}
	CheckpointStub        func(support *cryo.Support) cryo.Result
	checkpointMutex       sync.RWMutex
	checkpointArgsForCall []struct {
		support *cryo.Support
	}
	checkpointReturns struct {
		result1 cryo.Result
	}
}

func (fake *FakeCheckpointer) Supported() bool {
	fake.supportedMutex.Lock()
	fake.supportedArgsForCall = append(fake.supportedArgsForCall, struct{}{})
	fake.supportedMutex.Unlock()
	if fake.SupportedStub != nil {
		return fake.SupportedStub()
	}
	return fake.supportedReturns.result1
}

func (fake *FakeCheckpointer) SupportedCallCount() int {
	fake.supportedMutex.RLock()
	defer fake.supportedMutex.RUnlock()
	return len(fake.supportedArgsForCall)
}

func (fake *FakeCheckpointer) SupportedReturns(result1 bool) {
	fake.SupportedStub = nil
	fake.supportedReturns = struct {
		result1 bool
	}{result1}
}

func (fake *FakeCheckpointer) Checkpoint(support *cryo.Support) cryo.Result {
	fake.checkpointMutex.Lock()
	fake.checkpointArgsForCall = append(fake.checkpointArgsForCall, struct {
		support *cryo.Support
	}{support})
	fake.checkpointMutex.Unlock()
	if fake.CheckpointStub != nil {
		return fake.CheckpointStub(support)
	}
	return fake.checkpointReturns.result1
}

func (fake *FakeCheckpointer) CheckpointCallCount() int {
	fake.checkpointMutex.RLock()
	defer fake.checkpointMutex.RUnlock()
	return len(fake.checkpointArgsForCall)
}

func (fake *FakeCheckpointer) CheckpointArgsForCall(i int) *cryo.Support {
	fake.checkpointMutex.RLock()
	defer fake.checkpointMutex.RUnlock()
	return fake.checkpointArgsForCall[i].support
}

func (fake *FakeCheckpointer) CheckpointReturns(result1 cryo.Result) {
	fake.CheckpointStub = nil
	fake.checkpointReturns = struct {
		result1 cryo.Result
	}{result1}
}

var _ cryo.Checkpointer = new(FakeCheckpointer)
