package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"path"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/cryo"
	"code.cloudfoundry.org/cryo/client"
	"code.cloudfoundry.org/cryo/client/connection"
	"code.cloudfoundry.org/cryo/fakes"
	"code.cloudfoundry.org/cryo/server"
)

var _ = Describe("The cryo server", func() {
	var (
		tmpdir     string
		socketPath string
		imageDir   string

		checkpointer *fakes.FakeCheckpointer
		logger       *lagertest.TestLogger

		apiServer *server.CryoServer
		apiClient client.Client
		isRunning bool
	)

	BeforeEach(func() {
		var err error
		tmpdir, err = os.MkdirTemp("", "cryo-server-test")
		Expect(err).ToNot(HaveOccurred())

		socketPath = path.Join(tmpdir, "cryo.sock")
		imageDir = path.Join(tmpdir, "images")
		Expect(os.Mkdir(imageDir, 0755)).To(Succeed())

		checkpointer = new(fakes.FakeCheckpointer)
		checkpointer.SupportedReturns(true)
		checkpointer.CheckpointReturns(cryo.SuccessResult())

		logger = lagertest.NewTestLogger("test")

		apiServer = server.New("unix", socketPath, checkpointer, logger)
		apiClient = client.New(connection.New("unix", socketPath))
	})

	JustBeforeEach(func() {
		Expect(apiServer.Start()).To(Succeed())
		isRunning = true

		Eventually(func() error { return apiClient.Ping() }).Should(Succeed())
	})

	AfterEach(func() {
		if isRunning {
			apiServer.Stop()
			isRunning = false
		}
		os.RemoveAll(tmpdir)
	})

	It("listens on the given socket path and chmods it to 0777", func() {
		stat, err := os.Stat(socketPath)
		Expect(err).ToNot(HaveOccurred())

		Expect(int(stat.Mode() & 0777)).To(Equal(0777))
	})

	It("stops accepting connections once stopped", func() {
		apiServer.Stop()
		isRunning = false

		Expect(apiClient.Ping()).To(HaveOccurred())
	})

	Context("when a stale socket file is already there", func() {
		BeforeEach(func() {
			socket, err := os.Create(socketPath)
			Expect(err).ToNot(HaveOccurred())
			socket.WriteString("oops")
			socket.Close()
		})

		It("deletes it and starts anyway", func() {
			Expect(apiClient.Ping()).To(Succeed())
		})
	})

	Describe("Supported", func() {
		It("reports the checkpointer's answer", func() {
			supported, err := apiClient.Supported()
			Expect(err).ToNot(HaveOccurred())
			Expect(supported).To(BeTrue())
		})

		Context("when checkpointing is unavailable", func() {
			BeforeEach(func() {
				checkpointer.SupportedReturns(false)
			})

			It("says so", func() {
				supported, err := apiClient.Supported()
				Expect(err).ToNot(HaveOccurred())
				Expect(supported).To(BeFalse())
			})
		})
	})

	Describe("Checkpoint", func() {
		It("builds the configuration from the posted spec and runs the attempt", func() {
			result, err := apiClient.Checkpoint(cryo.CheckpointSpec{
				ImageDir: imageDir,
				LogLevel: 2,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Type()).To(Equal(cryo.Success))

			Expect(checkpointer.CheckpointCallCount()).To(Equal(1))
			spec := checkpointer.CheckpointArgsForCall(0).Spec()
			Expect(spec.ImageDir).To(Equal(imageDir))
			Expect(spec.LogLevel).To(Equal(2))
		})

		Context("when the spec fails validation", func() {
			It("rejects it without running an attempt", func() {
				_, err := apiClient.Checkpoint(cryo.CheckpointSpec{
					ImageDir: imageDir,
					LogLevel: 9,
				})
				Expect(err).To(HaveOccurred())

				Expect(checkpointer.CheckpointCallCount()).To(Equal(0))
			})

			It("rejects a missing image directory", func() {
				_, err := apiClient.Checkpoint(cryo.CheckpointSpec{
					ImageDir: path.Join(imageDir, "nope"),
				})
				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the attempt fails", func() {
			BeforeEach(func() {
				checkpointer.CheckpointReturns(cryo.FailureResult(
					cryo.SystemCheckpointFailure,
					errors.New("dump exploded"),
				))
			})

			It("still delivers the typed result", func() {
				result, err := apiClient.Checkpoint(cryo.CheckpointSpec{ImageDir: imageDir})
				Expect(err).ToNot(HaveOccurred())

				Expect(result.Type()).To(Equal(cryo.SystemCheckpointFailure))
				Expect(result.Cause()).To(MatchError("dump exploded"))
			})
		})

		Context("when checkpointing is unsupported", func() {
			BeforeEach(func() {
				checkpointer.CheckpointReturns(cryo.FailureResult(cryo.UnsupportedOperation, nil))
			})

			It("delivers the unsupported result", func() {
				result, err := apiClient.Checkpoint(cryo.CheckpointSpec{ImageDir: imageDir})
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Type()).To(Equal(cryo.UnsupportedOperation))
				Expect(result.Cause()).To(BeNil())
			})
		})
	})

	Describe("HTTP status mapping", func() {
		var httpClient *http.Client

		BeforeEach(func() {
			httpClient = &http.Client{
				Transport: &http.Transport{
					Dial: func(string, string) (net.Conn, error) {
						return net.Dial("unix", socketPath)
					},
				},
			}
		})

		postCheckpoint := func() *http.Response {
			body, err := json.Marshal(cryo.CheckpointSpec{ImageDir: imageDir})
			Expect(err).ToNot(HaveOccurred())

			request, err := http.NewRequest("POST", "http://cryo/checkpoints", bytes.NewReader(body))
			Expect(err).ToNot(HaveOccurred())
			request.Header.Set("Content-Type", "application/json")

			response, err := httpClient.Do(request)
			Expect(err).ToNot(HaveOccurred())

			return response
		}

		It("answers a successful attempt with 200", func() {
			response := postCheckpoint()
			defer response.Body.Close()

			Expect(response.StatusCode).To(Equal(http.StatusOK))
		})

		Context("when the attempt is unsupported", func() {
			BeforeEach(func() {
				checkpointer.CheckpointReturns(cryo.FailureResult(cryo.UnsupportedOperation, nil))
			})

			It("answers 501", func() {
				response := postCheckpoint()
				defer response.Body.Close()

				Expect(response.StatusCode).To(Equal(http.StatusNotImplemented))
			})
		})

		Context("when the attempt rejects its arguments", func() {
			BeforeEach(func() {
				checkpointer.CheckpointReturns(cryo.FailureResult(
					cryo.InvalidArguments,
					errors.New("bad image dir"),
				))
			})

			It("answers 400", func() {
				response := postCheckpoint()
				defer response.Body.Close()

				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})

		Context("when the attempt fails in the engine or the runtime", func() {
			BeforeEach(func() {
				checkpointer.CheckpointReturns(cryo.FailureResult(
					cryo.SystemCheckpointFailure,
					errors.New("dump exploded"),
				))
			})

			It("answers 500", func() {
				response := postCheckpoint()
				defer response.Body.Close()

				Expect(response.StatusCode).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("on tcp", func() {
		var tcpServer *server.CryoServer
		var tcpPort string

		JustBeforeEach(func() {
			listener, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).ToNot(HaveOccurred())
			_, tcpPort, err = net.SplitHostPort(listener.Addr().String())
			Expect(err).ToNot(HaveOccurred())
			listener.Close()

			tcpServer = server.New("tcp", "127.0.0.1:"+tcpPort, checkpointer, logger)
			Expect(tcpServer.Start()).To(Succeed())
		})

		AfterEach(func() {
			tcpServer.Stop()
		})

		It("serves the same protocol", func() {
			tcpClient := client.New(connection.New("tcp", "127.0.0.1:"+tcpPort))
			Eventually(func() error { return tcpClient.Ping() }).Should(Succeed())
		})
	})
})
