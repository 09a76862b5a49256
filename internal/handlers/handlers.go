package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// errEncode marks a payload that could not be marshalled; nothing has been
// written to the response yet.
var errEncode = errors.New("unable to encode response")

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	return sendJSONStatus(w, http.StatusOK, v)
}

func sendJSONStatus(w http.ResponseWriter, status int, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errEncode, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, logger *logrus.Logger, v any) {
	_, err := SendJSON(w, v)
	if err == nil {
		return
	}
	if errors.Is(err, errEncode) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	logger.WithFields(logrus.Fields{
		"response": v,
	}).WithError(err).Error("unable to send response")
}

func sendErrorOrLog(w http.ResponseWriter, logger *logrus.Logger, status int, e error) {
	_, err := sendJSONStatus(w, status, wrapError(e))
	if err != nil {
		logger.WithField("sent_error", e).WithError(err).Error("unable to send error message")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
