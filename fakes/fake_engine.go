// This file was generated by counterfeiter
package fakes

import (
	"sync"

	"code.cloudfoundry.org/cryo"
)

type FakeEngine struct {
	SupportedStub        func() bool
	supportedMutex       sync.RWMutex
	supportedArgsForCall []struct{}
	supportedReturns     struct {
		result1 bool
	}
	InitStub        func() error
	initMutex       sync.RWMutex
	initArgsForCall []struct{}
	initReturns     struct {
		result1 error
	}
	SetImagesDirStub        func(fd int)
	setImagesDirMutex       sync.RWMutex
	setImagesDirArgsForCall []struct {
		fd int
	}
	SetWorkDirStub        func(fd int)
	setWorkDirMutex       sync.RWMutex
	setWorkDirArgsForCall []struct {
		fd int
	}
	SetShellJobStub        func(shellJob bool)
	setShellJobMutex       sync.RWMutex
	setShellJobArgsForCall []struct {
		shellJob bool
	}
	SetLogLevelStub        func(level int)
	setLogLevelMutex       sync.RWMutex
	setLogLevelArgsForCall []struct {
		level int
	}
	SetLogFileStub        func(name string)
	setLogFileMutex       sync.RWMutex
	setLogFileArgsForCall []struct {
		name string
	}
	SetLeaveRunningStub        func(leaveRunning bool)
	setLeaveRunningMutex       sync.RWMutex
	setLeaveRunningArgsForCall []struct {
		leaveRunning bool
	}
	SetExtUnixSupportStub        func(extUnixSupport bool)
	setExtUnixSupportMutex       sync.RWMutex
	setExtUnixSupportArgsForCall []struct {
		extUnixSupport bool
	}
	SetFileLocksStub        func(fileLocks bool)
	setFileLocksMutex       sync.RWMutex
	setFileLocksArgsForCall []struct {
		fileLocks bool
	}
	DumpStub        func() error
	dumpMutex       sync.RWMutex
	dumpArgsForCall []struct{}
	dumpReturns     struct {
		result1 error
	}
}

func (fake *FakeEngine) Supported() bool {
	fake.supportedMutex.Lock()
	fake.supportedArgsForCall = append(fake.supportedArgsForCall, struct{}{})
	fake.supportedMutex.Unlock()
	if fake.SupportedStub != nil {
		return fake.SupportedStub()
	}
	return fake.supportedReturns.result1
}

func (fake *FakeEngine) SupportedCallCount() int {
	fake.supportedMutex.RLock()
	defer fake.supportedMutex.RUnlock()
	return len(fake.supportedArgsForCall)
}

func (fake *FakeEngine) SupportedReturns(result1 bool) {
	fake.SupportedStub = nil
	fake.supportedReturns = struct {
		result1 bool
	}{result1}
}

func (fake *FakeEngine) Init() error {
	fake.initMutex.Lock()
	fake.initArgsForCall = append(fake.initArgsForCall, struct{}{})
	fake.initMutex.Unlock()
	if fake.InitStub != nil {
		return fake.InitStub()
	}
	return fake.initReturns.result1
}

func (fake *FakeEngine) InitCallCount() int {
	fake.initMutex.RLock()
	defer fake.initMutex.RUnlock()
	return len(fake.initArgsForCall)
}

func (fake *FakeEngine) InitReturns(result1 error) {
	fake.InitStub = nil
	fake.initReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeEngine) SetImagesDir(fd int) {
	fake.setImagesDirMutex.Lock()
	fake.setImagesDirArgsForCall = append(fake.setImagesDirArgsForCall, struct {
		fd int
	}{fd})
	fake.setImagesDirMutex.Unlock()
	if fake.SetImagesDirStub != nil {
		fake.SetImagesDirStub(fd)
	}
}

func (fake *FakeEngine) SetImagesDirCallCount() int {
	fake.setImagesDirMutex.RLock()
	defer fake.setImagesDirMutex.RUnlock()
	return len(fake.setImagesDirArgsForCall)
}

func (fake *FakeEngine) SetImagesDirArgsForCall(i int) int {
	fake.setImagesDirMutex.RLock()
	defer fake.setImagesDirMutex.RUnlock()
	return fake.setImagesDirArgsForCall[i].fd
}

func (fake *FakeEngine) SetWorkDir(fd int) {
	fake.setWorkDirMutex.Lock()
	fake.setWorkDirArgsForCall = append(fake.setWorkDirArgsForCall, struct {
		fd int
	}{fd})
	fake.setWorkDirMutex.Unlock()
	if fake.SetWorkDirStub != nil {
		fake.SetWorkDirStub(fd)
	}
}

func (fake *FakeEngine) SetWorkDirCallCount() int {
	fake.setWorkDirMutex.RLock()
	defer fake.setWorkDirMutex.RUnlock()
	return len(fake.setWorkDirArgsForCall)
}

func (fake *FakeEngine) SetWorkDirArgsForCall(i int) int {
	fake.setWorkDirMutex.RLock()
	defer fake.setWorkDirMutex.RUnlock()
	return fake.setWorkDirArgsForCall[i].fd
}

func (fake *FakeEngine) SetShellJob(shellJob bool) {
	fake.setShellJobMutex.Lock()
	fake.setShellJobArgsForCall = append(fake.setShellJobArgsForCall, struct {
		shellJob bool
	}{shellJob})
	fake.setShellJobMutex.Unlock()
	if fake.SetShellJobStub != nil {
		fake.SetShellJobStub(shellJob)
	}
}

func (fake *FakeEngine) SetShellJobCallCount() int {
	fake.setShellJobMutex.RLock()
	defer fake.setShellJobMutex.RUnlock()
	return len(fake.setShellJobArgsForCall)
}

func (fake *FakeEngine) SetShellJobArgsForCall(i int) bool {
	fake.setShellJobMutex.RLock()
	defer fake.setShellJobMutex.RUnlock()
	return fake.setShellJobArgsForCall[i].shellJob
}

func (fake *FakeEngine) SetLogLevel(level int) {
	fake.setLogLevelMutex.Lock()
	fake.setLogLevelArgsForCall = append(fake.setLogLevelArgsForCall, struct {
		level int
	}{level})
	fake.setLogLevelMutex.Unlock()
	if fake.SetLogLevelStub != nil {
		fake.SetLogLevelStub(level)
	}
}

func (fake *FakeEngine) SetLogLevelCallCount() int {
	fake.setLogLevelMutex.RLock()
	defer fake.setLogLevelMutex.RUnlock()
	return len(fake.setLogLevelArgsForCall)
}

func (fake *FakeEngine) SetLogLevelArgsForCall(i int) int {
	fake.setLogLevelMutex.RLock()
	defer fake.setLogLevelMutex.RUnlock()
	return fake.setLogLevelArgsForCall[i].level
}

func (fake *FakeEngine) SetLogFile(name string) {
	fake.setLogFileMutex.Lock()
	fake.setLogFileArgsForCall = append(fake.setLogFileArgsForCall, struct {
		name string
	}{name})
	fake.setLogFileMutex.Unlock()
	if fake.SetLogFileStub != nil {
		fake.SetLogFileStub(name)
	}
}

func (fake *FakeEngine) SetLogFileCallCount() int {
	fake.setLogFileMutex.RLock()
	defer fake.setLogFileMutex.RUnlock()
	return len(fake.setLogFileArgsForCall)
}

func (fake *FakeEngine) SetLogFileArgsForCall(i int) string {
	fake.setLogFileMutex.RLock()
	defer fake.setLogFileMutex.RUnlock()
	return fake.setLogFileArgsForCall[i].name
}

func (fake *FakeEngine) SetLeaveRunning(leaveRunning bool) {
	fake.setLeaveRunningMutex.Lock()
	fake.setLeaveRunningArgsForCall = append(fake.setLeaveRunningArgsForCall, struct {
		leaveRunning bool
	}{leaveRunning})
	fake.setLeaveRunningMutex.Unlock()
	if fake.SetLeaveRunningStub != nil {
		fake.SetLeaveRunningStub(leaveRunning)
	}
}

func (fake *FakeEngine) SetLeaveRunningCallCount() int {
	fake.setLeaveRunningMutex.RLock()
	defer fake.setLeaveRunningMutex.RUnlock()
	return len(fake.setLeaveRunningArgsForCall)
}

func (fake *FakeEngine) SetLeaveRunningArgsForCall(i int) bool {
	fake.setLeaveRunningMutex.RLock()
	defer fake.setLeaveRunningMutex.RUnlock()
	return fake.setLeaveRunningArgsForCall[i].leaveRunning
}

func (fake *FakeEngine) SetExtUnixSupport(extUnixSupport bool) {
	fake.setExtUnixSupportMutex.Lock()
	fake.setExtUnixSupportArgsForCall = append(fake.setExtUnixSupportArgsForCall, struct {
		extUnixSupport bool
	}{extUnixSupport})
	fake.setExtUnixSupportMutex.Unlock()
	if fake.SetExtUnixSupportStub != nil {
		fake.SetExtUnixSupportStub(extUnixSupport)
	}
}

func (fake *FakeEngine) SetExtUnixSupportCallCount() int {
	fake.setExtUnixSupportMutex.RLock()
	defer fake.setExtUnixSupportMutex.RUnlock()
	return len(fake.setExtUnixSupportArgsForCall)
}

func (fake *FakeEngine) SetExtUnixSupportArgsForCall(i int) bool {
	fake.setExtUnixSupportMutex.RLock()
	defer fake.setExtUnixSupportMutex.RUnlock()
	return fake.setExtUnixSupportArgsForCall[i].extUnixSupport
}

func (fake *FakeEngine) SetFileLocks(fileLocks bool) {
	fake.setFileLocksMutex.Lock()
	fake.setFileLocksArgsForCall = append(fake.setFileLocksArgsForCall, struct {
		fileLocks bool
	}{fileLocks})
	fake.setFileLocksMutex.Unlock()
	if fake.SetFileLocksStub != nil {
		fake.SetFileLocksStub(fileLocks)
	}
}

func (fake *FakeEngine) SetFileLocksCallCount() int {
	fake.setFileLocksMutex.RLock()
	defer fake.setFileLocksMutex.RUnlock()
	return len(fake.setFileLocksArgsForCall)
}

func (fake *FakeEngine) SetFileLocksArgsForCall(i int) bool {
	fake.setFileLocksMutex.RLock()
	defer fake.setFileLocksMutex.RUnlock()
	return fake.setFileLocksArgsForCall[i].fileLocks
}

func (fake *FakeEngine) Dump() error {
	fake.dumpMutex.Lock()
	fake.dumpArgsForCall = append(fake.dumpArgsForCall, struct{}{})
	fake.dumpMutex.Unlock()
	if fake.DumpStub != nil {
		return fake.DumpStub()
	}
	return fake.dumpReturns.result1
}

func (fake *FakeEngine) DumpCallCount() int {
	fake.dumpMutex.RLock()
	defer fake.dumpMutex.RUnlock()
	return len(fake.dumpArgsForCall)
}

func (fake *FakeEngine) DumpReturns(result1 error) {
	fake.DumpStub = nil
	fake.dumpReturns = struct {
		result1 error
	}{result1}
}

var _ cryo.Engine = new(FakeEngine)
