package utils

import (
	"strings"
	"time"
	"unicode"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

// JWT secret key, loaded from the environment in main.
var JwtKey = []byte("change_me")

// adminCodeHash holds the bcrypt hash of the administrator access code,
// set once at boot so the plaintext code is not kept around.
var adminCodeHash []byte

// Claims represents the JWT claims issued at login.
type Claims struct {
	Phone string `json:"phone,omitempty"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a signed token for an authenticated actor.
func GenerateJWT(phone, name, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Phone: phone,
		Name:  name,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// SetAdminCode hashes and stores the administrator access code.
func SetAdminCode(code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminCodeHash = hash
	return nil
}

// CheckAdminCode compares a submitted code against the stored hash.
func CheckAdminCode(code string) bool {
	if len(adminCodeHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(adminCodeHash, []byte(code)) == nil
}

// NormalizeName lowercases a name and strips diacritics so the operator
// can type their name with or without accents at admin login.
func NormalizeName(name string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(name)))
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
