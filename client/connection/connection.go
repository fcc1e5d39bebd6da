// Package connection speaks the cryo server's HTTP protocol.
package connection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tedsuo/rata"

	"code.cloudfoundry.org/cryo"
	"code.cloudfoundry.org/cryo/routes"
)

type Connection interface {
	Ping() error
	Supported() (bool, error)
	Checkpoint(spec cryo.CheckpointSpec) (cryo.Result, error)
}

type connection struct {
	req *rata.RequestGenerator

	httpClient *http.Client
}

func New(network, address string) Connection {
	dialer := func(string, string) (net.Conn, error) {
		return net.DialTimeout(network, address, time.Second)
	}

	return &connection{
		req: rata.NewRequestGenerator("http://cryo", routes.Routes),

		httpClient: &http.Client{
			Transport: &http.Transport{
				Dial: dialer,
			},
		},
	}
}

func (c *connection) Ping() error {
	return c.do(routes.Ping, nil, &struct{}{})
}

func (c *connection) Supported() (bool, error) {
	response := &struct {
		Supported bool `json:"supported"`
	}{}

	err := c.do(routes.Supported, nil, response)
	if err != nil {
		return false, err
	}

	return response.Supported, nil
}

// Checkpoint decodes a Result from both success and failure statuses: the
// server reports every well-formed attempt as a typed result, whatever its
// outcome. Only transport faults and non-result responses become errors.
func (c *connection) Checkpoint(spec cryo.CheckpointSpec) (cryo.Result, error) {
	request, err := c.request(routes.Checkpoint, spec)
	if err != nil {
		return cryo.Result{}, err
	}

	httpResp, err := c.httpClient.Do(request)
	if err != nil {
		return cryo.Result{}, err
	}

	defer httpResp.Body.Close()

	if !strings.HasPrefix(httpResp.Header.Get("Content-Type"), "application/json") {
		return cryo.Result{}, badResponseError(httpResp)
	}

	var result cryo.Result
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return cryo.Result{}, err
	}

	return result, nil
}

func (c *connection) do(handler string, req, res interface{}) error {
	request, err := c.request(handler, req)
	if err != nil {
		return err
	}

	httpResp, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}

	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return badResponseError(httpResp)
	}

	return json.NewDecoder(httpResp.Body).Decode(res)
}

func (c *connection) request(handler string, msg interface{}) (*http.Request, error) {
	var body io.Reader
	contentType := ""

	if msg != nil {
		buf := new(bytes.Buffer)

		if err := json.NewEncoder(buf).Encode(msg); err != nil {
			return nil, err
		}

		body = buf
		contentType = "application/json"
	}

	request, err := c.req.CreateRequest(handler, nil, body)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	return request, nil
}

func badResponseError(httpResp *http.Response) error {
	errResponse, err := io.ReadAll(httpResp.Body)
	if err != nil || len(errResponse) == 0 {
		return fmt.Errorf("bad response: %s", httpResp.Status)
	}

	return fmt.Errorf("%s", errResponse)
}
