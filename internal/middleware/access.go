package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

const (
	HeaderUserID   = "x-user-id"
	HeaderUserRole = "x-user-role"

	RoleAdmin = "admin"
)

var (
	errMissingUserID   = fmt.Errorf("%w: missing %s header", custom_errors.ErrUnauthenticated, HeaderUserID)
	errMalformedUserID = fmt.Errorf("%w: malformed %s header", custom_errors.ErrUnauthenticated, HeaderUserID)
	errMissingRole     = fmt.Errorf("%w: missing %s header", custom_errors.ErrUnauthenticated, HeaderUserRole)
)

type callerKey struct{}

// Caller is the identity the upstream gateway attached to the request.
type Caller struct {
	UserID string
	Role   string
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}

// UserFromHeaders returns the caller carried by the identity headers.
func UserFromHeaders(h http.Header) (Caller, error) {
	userID := h.Get(HeaderUserID)
	if userID == "" {
		return Caller{}, errMissingUserID
	}
	if !model.IsValidUserID(userID) {
		return Caller{}, errMalformedUserID
	}
	return Caller{UserID: userID, Role: h.Get(HeaderUserRole)}, nil
}

// CheckAdminRole fails with ErrUnauthenticated for an empty role and ErrForbidden for any
// role other than admin.
func CheckAdminRole(role string) error {
	if role == "" {
		return errMissingRole
	}
	if role != RoleAdmin {
		return custom_errors.ErrForbidden
	}
	return nil
}

// ExtractUser requires the x-user-id header and stores the caller in the request context.
func ExtractUser(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := UserFromHeaders(r.Header)
			if err != nil {
				rejectAccess(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// RequireAdmin answers 401 without a role header and 403 for any role other than admin.
func RequireAdmin(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := r.Header.Get(HeaderUserRole)
			if err := CheckAdminRole(role); err != nil {
				rejectAccess(w, r, log, err)
				return
			}

			caller := Caller{UserID: r.Header.Get(HeaderUserID), Role: role}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func rejectAccess(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	log.Debug("Access rejected", slog.String("path", r.URL.Path), slog.String("error", err.Error()))

	switch {
	case errors.Is(err, errMissingUserID):
		writeMessage(w, http.StatusUnauthorized, "Missing user ID")
	case errors.Is(err, errMalformedUserID):
		writeMessage(w, http.StatusUnauthorized, "Invalid user ID")
	case errors.Is(err, errMissingRole):
		writeMessage(w, http.StatusUnauthorized, "Missing user Role")
	case errors.Is(err, custom_errors.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Access denied")
	default:
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
