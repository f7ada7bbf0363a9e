package web

import (
	"net/http"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const adminKeyHashEnv = "ADMIN_KEY_HASH"

// RequireAdminKey guards mutating routes with a bearer key checked against
// a bcrypt hash from the environment. Without a configured hash the admin
// surface stays off.
func RequireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash := strings.TrimSpace(os.Getenv(adminKeyHashEnv))
		if hash == "" {
			http.Error(w, "admin api disabled", http.StatusForbidden)
			return
		}
		key := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
		if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
			http.Error(w, "invalid admin key", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
