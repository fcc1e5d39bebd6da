package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"

	"code.cloudfoundry.org/cryo"
)

var ErrInvalidContentType = errors.New("content-type must be application/json")

func (s *CryoServer) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, &struct{}{})
}

func (s *CryoServer) handleSupported(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, &struct {
		Supported bool `json:"supported"`
	}{
		Supported: s.checkpointer.Supported(),
	})
}

func (s *CryoServer) handleCheckpoint(w http.ResponseWriter, r *http.Request) {
	var spec cryo.CheckpointSpec
	if !s.readRequest(&spec, w, r) {
		return
	}

	hLog := s.logger.Session("checkpoint", lager.Data{
		"image_dir": spec.ImageDir,
		"work_dir":  spec.WorkDir,
	})

	support, err := cryo.NewSupportFromSpec(spec)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err, hLog)
		return
	}

	hLog.Debug("checkpointing")

	started := time.Now()
	result := s.checkpointer.Checkpoint(support)
	recordAttempt(result.Type(), time.Since(started))

	if result.Succeeded() {
		hLog.Info("checkpointed")
	} else {
		hLog.Info("checkpoint-failed", lager.Data{
			"result": result.Type().String(),
		})
	}

	s.writeResponse(w, statusForResult(result.Type()), result)
}

func statusForResult(resultType cryo.ResultType) int {
	switch resultType {
	case cryo.Success:
		return http.StatusOK
	case cryo.UnsupportedOperation:
		return http.StatusNotImplemented
	case cryo.InvalidArguments:
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func (s *CryoServer) writeError(w http.ResponseWriter, statusCode int, err error, logger lager.Logger) {
	logger.Error("failed", err)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)
	w.Write([]byte(err.Error()))
}

func (s *CryoServer) writeResponse(w http.ResponseWriter, statusCode int, msg interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(msg)
}

func (s *CryoServer) readRequest(msg interface{}, w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		s.writeError(w, http.StatusBadRequest, ErrInvalidContentType, s.logger)
		return false
	}

	err := json.NewDecoder(r.Body).Decode(msg)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err, s.logger)
		return false
	}

	return true
}
