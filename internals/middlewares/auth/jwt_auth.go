// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "gymku_backend/internals/helpers/auth"
	dbtime "gymku_backend/internals/helpers/dbtime"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi token HMAC lalu meng-hydrate locals yang diharapkan
// helper tenant-context: user_id, role, academy_*_ids, academy_id aktif,
// dan academy_timezone untuk normalisasi hari lokal.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// 3) user_id: id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}

		// kontak (email/phone) untuk fallback matching kelas instructor
		if ct := strClaim(claims, "contact"); ct != "" {
			c.Locals(helperAuth.LocUserContact, ct)
		} else if em := strClaim(claims, "email"); em != "" {
			c.Locals(helperAuth.LocUserContact, em)
		}

		// 4) role + daftar academy per peran
		if r := strClaim(claims, "role"); r != "" {
			c.Locals(helperAuth.LocRole, strings.ToLower(r))
		}
		if ids := readStringSlice(claims["academy_admin_ids"]); len(ids) > 0 {
			c.Locals(helperAuth.LocAcademyAdminIDs, ids)
		}
		if ids := readStringSlice(claims["academy_instructor_ids"]); len(ids) > 0 {
			c.Locals(helperAuth.LocAcademyInstructorIDs, ids)
		}
		if ids := readStringSlice(claims["academy_ids"]); len(ids) > 0 {
			c.Locals(helperAuth.LocAcademyIDs, ids)
		}

		// 5) academy aktif: klaim eksplisit → instructor → admin → union
		active := strClaim(claims, "academy_id")
		if active == "" {
			for _, key := range []string{"academy_instructor_ids", "academy_admin_ids", "academy_ids"} {
				if ids := readStringSlice(claims[key]); len(ids) > 0 {
					active = ids[0]
					break
				}
			}
		}
		if active != "" {
			c.Locals(helperAuth.LocActiveAcademyID, active)
		}

		// 6) timezone academy untuk normalisasi hari (kalau dibawa token)
		if tz := strClaim(claims, "academy_timezone"); tz != "" {
			c.Locals(dbtime.LocAcademyTimezone, tz)
			if loc, err := time.LoadLocation(tz); err == nil {
				c.Locals(dbtime.LocAcademyLoc, loc)
			}
		}

		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
