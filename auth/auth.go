// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

var ErrInvalidRole = errors.New("invalid role")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewConnectionID identifies one websocket connection for its lifetime.
// Students reuse it as their roster id.
func NewConnectionID() (string, error) {
	return GenerateID(10)
}

// NewPollID returns a fresh UUID v4 for a poll
func NewPollID() string {
	return uuid.NewString()
}

// NewMessageID returns a fresh UUID v4 for a chat message
func NewMessageID() string {
	return uuid.NewString()
}

// OptionID is the id of the option at position index within its poll
func OptionID(index int) string {
	return "option-" + strconv.Itoa(index)
}

// ParseRole accepts exactly "teacher" or "student"
func ParseRole(s string) (models.Role, error) {
	switch models.Role(s) {
	case models.RoleTeacher:
		return models.RoleTeacher, nil
	case models.RoleStudent:
		return models.RoleStudent, nil
	}
	return models.RoleNone, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
