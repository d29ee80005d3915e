package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		entry.GroupID = pathSegmentAfter(r.URL.Path, "groups")
		entry.PackageID = pathSegmentAfter(r.URL.Path, "packages")

		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func pathSegmentAfter(path, segment string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == segment && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/packages"):
		switch {
		case strings.Contains(path, "/confirm"):
			return "handleConfirmArrival"
		case method == http.MethodPost:
			return "handleDeclarePackage"
		case pathSegmentAfter(path, "packages") != "":
			return "handleGetPackage"
		default:
			return "handleListPackages"
		}
	case strings.HasPrefix(path, "/groups"):
		switch {
		case strings.Contains(path, "/history"):
			return "handleGroupHistory"
		case strings.Contains(path, "/quote"):
			return "handleQuote"
		case strings.Contains(path, "/request"):
			return "handleRequestConsolidation"
		case strings.Contains(path, "/cancel"):
			return "handleCancel"
		case strings.Contains(path, "/advance"):
			return "handleAdvance"
		case strings.Contains(path, "/tracking"):
			return "handleSetTracking"
		case strings.Contains(path, "/packages") && method == http.MethodPost:
			return "handleAddPackage"
		case strings.Contains(path, "/packages") && method == http.MethodDelete:
			return "handleRemovePackage"
		case method == http.MethodPost:
			return "handleCreateGroup"
		case pathSegmentAfter(path, "groups") != "":
			return "handleGetGroup"
		default:
			return "handleListGroups"
		}
	case strings.HasPrefix(path, "/payments"):
		return "handlePaymentConfirmation"
	}

	return "unknown"
}
