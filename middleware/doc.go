// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap plain HTTP handlers with request logging:

	r.Get("/api/health", middleware.WithLogging(handler))

Logs completion with status, response size and duration_ms. Do not wrap
the websocket route; the upgrade needs the raw ResponseWriter.

# CORS Middleware

Allow the configured frontend origins:

	r.Use(middleware.CORS(cfg.CORSOrigins))

Preflights from unlisted origins get 403. The websocket upgrader uses
OriginAllowed with the same list.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Connection logs record a salted hash of it, never the raw address.
*/
package middleware
