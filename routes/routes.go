package routes

import "github.com/tedsuo/rata"

const (
	Ping      = "Ping"
	Supported = "Supported"

	Checkpoint = "Checkpoint"
)

var Routes = rata.Routes{
	{Path: "/ping", Method: "GET", Name: Ping},
	{Path: "/supported", Method: "GET", Name: Supported},

	{Path: "/checkpoints", Method: "POST", Name: Checkpoint},
}
