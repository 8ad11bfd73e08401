package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)

	return zap.New(core), logs
}

func newEngine(register func(group *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	register(engine.Group("/api/v1"))

	return engine
}

func serve(handler http.Handler, method string, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewBuffer(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	if reader != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	return serveRequest(handler, request)
}

func serveRequest(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}
