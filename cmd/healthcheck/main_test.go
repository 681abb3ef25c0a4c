package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lastwords/last-words-api/internal/mock"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  models.HealthStatus
		err     error
		wantErr bool
	}{
		{name: "healthy", status: models.HealthStatus{Status: models.StatusHealthy}},
		{name: "other status", status: models.HealthStatus{Status: "starting"}, wantErr: true},
		{name: "request failed", err: errors.New("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mock.NewMockAPIClient(gomock.NewController(t))
			client.EXPECT().Health(gomock.Any()).Return(tt.status, tt.err)

			err := check(context.Background(), client)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode int
	}{
		{name: "healthy", status: http.StatusOK, body: `{"status":"healthy"}`, wantCode: 0},
		{name: "unhealthy body", status: http.StatusOK, body: `{"status":"degraded"}`, wantCode: 1},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			assert.Equal(t, tt.wantCode, run([]string{"-url", srv.URL}))
		})
	}
}

func TestRun_BadFlag(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-nope"}))
}
