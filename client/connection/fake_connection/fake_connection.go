package fake_connection

import (
	"sync"

	"code.cloudfoundry.org/cryo"
)

type FakeConnection struct {
	lock *sync.RWMutex

	pinged     bool
	WhenPinged func() error

	WhenQueryingSupported func() (bool, error)

	checkpointed      []cryo.CheckpointSpec
	WhenCheckpointing func(spec cryo.CheckpointSpec) (cryo.Result, error)
}

func New() *FakeConnection {
	return &FakeConnection{
		lock: &sync.RWMutex{},

		WhenPinged: func() error {
			return nil
		},

		WhenQueryingSupported: func() (bool, error) {
			return true, nil
		},

		WhenCheckpointing: func(cryo.CheckpointSpec) (cryo.Result, error) {
			return cryo.SuccessResult(), nil
		},
	}
}

func (connection *FakeConnection) Ping() error {
	connection.lock.Lock()
	connection.pinged = true
	connection.lock.Unlock()

	return connection.WhenPinged()
}

func (connection *FakeConnection) Pinged() bool {
	connection.lock.RLock()
	defer connection.lock.RUnlock()

	return connection.pinged
}

func (connection *FakeConnection) Supported() (bool, error) {
	return connection.WhenQueryingSupported()
}

func (connection *FakeConnection) Checkpoint(spec cryo.CheckpointSpec) (cryo.Result, error) {
	connection.lock.Lock()
	connection.checkpointed = append(connection.checkpointed, spec)
	connection.lock.Unlock()

	return connection.WhenCheckpointing(spec)
}

func (connection *FakeConnection) Checkpointed() []cryo.CheckpointSpec {
	connection.lock.RLock()
	defer connection.lock.RUnlock()

	return connection.checkpointed
}
