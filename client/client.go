// Package client is the programmatic client for a cryo server.
package client

import (
	"code.cloudfoundry.org/cryo"
	"code.cloudfoundry.org/cryo/client/connection"
)

type Client interface {
	// Ping checks that the server is reachable.
	Ping() error

	// Supported queries whether the server can take checkpoints at all.
	Supported() (bool, error)

	// Checkpoint runs one checkpoint attempt on the server. The returned
	// Result reports the attempt's outcome; the error is reserved for
	// transport and protocol failures.
	Checkpoint(spec cryo.CheckpointSpec) (cryo.Result, error)
}

type client struct {
	connection connection.Connection
}

func New(connection connection.Connection) Client {
	return &client{
		connection: connection,
	}
}

func (client *client) Ping() error {
	return client.connection.Ping()
}

func (client *client) Supported() (bool, error) {
	return client.connection.Supported()
}

func (client *client) Checkpoint(spec cryo.CheckpointSpec) (cryo.Result, error) {
	return client.connection.Checkpoint(spec)
}
