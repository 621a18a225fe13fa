// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/events", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, size, duration_ms). The request id is taken from X-Request-ID or
generated, and echoed back in the response header.

# Logger

NewLogger returns a text logger when writing to a terminal and a JSON logger
otherwise:

	level, _ := middleware.ParseLevel(cfg.LogLevel)
	slog.SetDefault(middleware.NewLogger(os.Stdout, level))

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows any origin with methods GET, POST, OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "event_date is required")

Error bodies have the shape {"error": "..."}.

Parse JSON request bodies:

	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
