// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"syscall"
	"time"
)

// Version is reported by the health and status endpoints.
const Version = "1.0.0"

// Health check states.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// minFreeSpace is the free space below which the uploads disk is degraded.
const minFreeSpace = 100 * 1024 * 1024

// HealthHandler handles health check requests.
type HealthHandler struct {
	db         *sql.DB
	uploadsDir string
	startTime  time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *sql.DB, uploadsDir string) *HealthHandler {
	return &HealthHandler{
		db:         db,
		uploadsDir: uploadsDir,
		startTime:  time.Now(),
	}
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAlloc     string `json:"mem_alloc"`
	MemSys       string `json:"mem_sys"`
}

// Health handles GET /health. ?verbose=true adds runtime information.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase(r.Context())
	diskCheck := h.checkDiskSpace()

	status := HealthStatus{
		Status:    overall(dbCheck, diskCheck),
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   Version,
		Checks: map[string]Check{
			"database": dbCheck,
			"disk":     diskCheck,
		},
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = getSystemInfo()
	}

	code := http.StatusOK
	if status.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Liveness handles GET /health/live - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready - checks if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase(r.Context())
	if dbCheck.Status != StatusHealthy {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": dbCheck.Message,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// overall is unhealthy if any check is, degraded if any check is degraded.
func overall(checks ...Check) string {
	status := StatusHealthy
	for _, c := range checks {
		switch c.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			status = StatusDegraded
		}
	}
	return status
}

// checkDatabase verifies database connectivity.
func (h *HealthHandler) checkDatabase(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.PingContext(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{
			Status:  StatusUnhealthy,
			Message: err.Error(),
			Latency: latency.String(),
		}
	}

	return Check{
		Status:  StatusHealthy,
		Message: "Connected",
		Latency: latency.String(),
	}
}

// checkDiskSpace checks available disk space in the uploads directory.
func (h *HealthHandler) checkDiskSpace() Check {
	if _, err := os.Stat(h.uploadsDir); os.IsNotExist(err) {
		return Check{
			Status:  StatusHealthy,
			Message: "Uploads directory does not exist yet",
		}
	}

	var stat syscall.Statfs_t
	if err := syscall.Statfs(h.uploadsDir, &stat); err != nil {
		return Check{
			Status:  StatusUnhealthy,
			Message: "Failed to check disk space: " + err.Error(),
		}
	}

	availableBytes := stat.Bavail * uint64(stat.Bsize)
	available := formatBytes(availableBytes)

	if availableBytes < minFreeSpace {
		return Check{
			Status:  StatusDegraded,
			Message: "Low disk space: " + available + " available",
		}
	}

	return Check{
		Status:  StatusHealthy,
		Message: available + " available",
	}
}

func getSystemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     formatBytes(m.Alloc),
		MemSys:       formatBytes(m.Sys),
	}
}

func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
