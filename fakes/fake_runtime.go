// This file was generated by counterfeiter
package fakes

import (
	"sync"

	"code.cloudfoundry.org/cryo"
)

type FakeRuntime struct {
	CheckpointAllowedStub        func() bool
	checkpointAllowedMutex       sync.RWMutex
	checkpointAllowedArgsForCall []struct{}
	checkpointAllowedReturns     struct {
		result1 bool
	}
	AcquireExclusiveAccessStub        func()
	acquireExclusiveAccessMutex       sync.RWMutex
	acquireExclusiveAccessArgsForCall []struct{}
	ReleaseExclusiveAccessStub        func()
	releaseExclusiveAccessMutex       sync.RWMutex
	releaseExclusiveAccessArgsForCall []struct{}
	PrepareCheckpointStub             func() error
	prepareCheckpointMutex            sync.RWMutex
	prepareCheckpointArgsForCall      []struct{}
	prepareCheckpointReturns          struct {
		result1 error
	}
	ResumeFromCheckpointStub        func() error
	resumeFromCheckpointMutex       sync.RWMutex
	resumeFromCheckpointArgsForCall []struct{}
	resumeFromCheckpointReturns     struct {
		result1 error
	}
}

func (fake *FakeRuntime) CheckpointAllowed() bool {
	fake.checkpointAllowedMutex.Lock()
	fake.checkpointAllowedArgsForCall = append(fake.checkpointAllowedArgsForCall, struct{}{})
	fake.checkpointAllowedMutex.Unlock()
	if fake.CheckpointAllowedStub != nil {
		return fake.CheckpointAllowedStub()
	}
	return fake.checkpointAllowedReturns.result1
}

func (fake *FakeRuntime) CheckpointAllowedCallCount() int {
	fake.checkpointAllowedMutex.RLock()
	defer fake.checkpointAllowedMutex.RUnlock()
	return len(fake.checkpointAllowedArgsForCall)
}

func (fake *FakeRuntime) CheckpointAllowedReturns(result1 bool) {
	fake.CheckpointAllowedStub = nil
	fake.checkpointAllowedReturns = struct {
		result1 bool
	}{result1}
}

func (fake *FakeRuntime) AcquireExclusiveAccess() {
	fake.acquireExclusiveAccessMutex.Lock()
	fake.acquireExclusiveAccessArgsForCall = append(fake.acquireExclusiveAccessArgsForCall, struct{}{})
	fake.acquireExclusiveAccessMutex.Unlock()
	if fake.AcquireExclusiveAccessStub != nil {
		fake.AcquireExclusiveAccessStub()
	}
}

func (fake *FakeRuntime) AcquireExclusiveAccessCallCount() int {
	fake.acquireExclusiveAccessMutex.RLock()
	defer fake.acquireExclusiveAccessMutex.RUnlock()
	return len(fake.acquireExclusiveAccessArgsForCall)
}

func (fake *FakeRuntime) ReleaseExclusiveAccess() {
	fake.releaseExclusiveAccessMutex.Lock()
	fake.releaseExclusiveAccessArgsForCall = append(fake.releaseExclusiveAccessArgsForCall, struct{}{})
	fake.releaseExclusiveAccessMutex.Unlock()
	if fake.ReleaseExclusiveAccessStub != nil {
		fake.ReleaseExclusiveAccessStub()
	}
}

func (fake *FakeRuntime) ReleaseExclusiveAccessCallCount() int {
	fake.releaseExclusiveAccessMutex.RLock()
	defer fake.releaseExclusiveAccessMutex.RUnlock()
	return len(fake.releaseExclusiveAccessArgsForCall)
}

func (fake *FakeRuntime) PrepareCheckpoint() error {
	fake.prepareCheckpointMutex.Lock()
	fake.prepareCheckpointArgsForCall = append(fake.prepareCheckpointArgsForCall, struct{}{})
	fake.prepareCheckpointMutex.Unlock()
	if fake.PrepareCheckpointStub != nil {
		return fake.PrepareCheckpointStub()
	}
	return fake.prepareCheckpointReturns.result1
}

func (fake *FakeRuntime) PrepareCheckpointCallCount() int {
	fake.prepareCheckpointMutex.RLock()
	defer fake.prepareCheckpointMutex.RUnlock()
	return len(fake.prepareCheckpointArgsForCall)
}

func (fake *FakeRuntime) PrepareCheckpointReturns(result1 error) {
	fake.PrepareCheckpointStub = nil
	fake.prepareCheckpointReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeRuntime) ResumeFromCheckpoint() error {
	fake.resumeFromCheckpointMutex.Lock()
	fake.resumeFromCheckpointArgsForCall = append(fake.resumeFromCheckpointArgsForCall, struct{}{})
	fake.resumeFromCheckpointMutex.Unlock()
	if fake.ResumeFromCheckpointStub != nil {
		return fake.ResumeFromCheckpointStub()
	}
	return fake.resumeFromCheckpointReturns.result1
}

func (fake *FakeRuntime) ResumeFromCheckpointCallCount() int {
	fake.resumeFromCheckpointMutex.RLock()
	defer fake.resumeFromCheckpointMutex.RUnlock()
	return len(fake.resumeFromCheckpointArgsForCall)
}

func (fake *FakeRuntime) ResumeFromCheckpointReturns(result1 error) {
	fake.ResumeFromCheckpointStub = nil
	fake.resumeFromCheckpointReturns = struct {
		result1 error
	}{result1}
}

var _ cryo.Runtime = new(FakeRuntime)
