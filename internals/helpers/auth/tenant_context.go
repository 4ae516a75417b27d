// file: internals/helpers/auth/tenant_context.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocRole        = "role"         // string
	LocUserID      = "user_id"      // string | uuid
	LocUserContact = "user_contact" // string, email/phone dari klaim

	LocAcademyIDs           = "academy_ids"            // []string | []uuid.UUID
	LocAcademyAdminIDs      = "academy_admin_ids"      // []string | []uuid.UUID
	LocAcademyInstructorIDs = "academy_instructor_ids" // []string | []uuid.UUID
	LocActiveAcademyID      = "academy_id"             // string
	LocAcademyTimezone      = "academy_timezone"       // string, mis. "Asia/Jakarta"
)

/* ============================================
   Typed errors (auth taxonomy)
   ============================================ */

var (
	ErrUnauthenticated = errors.New("caller tidak terautentikasi")
	ErrTenantMissing   = errors.New("token tidak membawa academy_id")
)

/* ============================================
   Tenant context
   ============================================ */

// TenantScope dibawa eksplisit ke setiap pemanggilan service/repo.
// Isolasi tenant ditegakkan lewat parameter ini, bukan konvensi path.
type TenantScope struct {
	AcademyID uuid.UUID
}

type TenantContext struct {
	AcademyID uuid.UUID
	UserID    uuid.UUID
	Role      string
}

func (tc TenantContext) Scope() TenantScope { return TenantScope{AcademyID: tc.AcademyID} }

// ResolveTenantContext membaca locals hasil hydrate AuthJWT dan mengembalikan
// triple {academy, user, role}. Komponen lain menerima triple ini sebagai
// parameter yang sudah tervalidasi — tidak pernah menurunkan ulang dari token.
func ResolveTenantContext(c *fiber.Ctx) (TenantContext, error) {
	userID, err := localUUID(c, LocUserID)
	if err != nil {
		return TenantContext{}, ErrUnauthenticated
	}

	academyID, err := firstUUIDFromLocals(c, LocActiveAcademyID)
	if err != nil {
		// fallback: instructor → admin → union
		for _, key := range []string{LocAcademyInstructorIDs, LocAcademyAdminIDs, LocAcademyIDs} {
			if id, e := firstUUIDFromLocals(c, key); e == nil {
				academyID = id
				err = nil
				break
			}
		}
	}
	if err != nil {
		return TenantContext{}, ErrTenantMissing
	}

	role := ""
	if v, ok := c.Locals(LocRole).(string); ok {
		role = strings.ToLower(strings.TrimSpace(v))
	}

	return TenantContext{AcademyID: academyID, UserID: userID, Role: role}, nil
}

// UserContact membaca kontak (email/phone) dari locals; boleh kosong.
func UserContact(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserContact).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// FiberError memetakan error resolver ke error transport.
func FiberError(err error) error {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrTenantMissing):
		return fiber.NewError(fiber.StatusUnauthorized, "Academy tidak ditemukan di token")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* ============================================
   Locals parsing (toleran [] / string / uuid)
   ============================================ */

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch t := c.Locals(key).(type) {
	case uuid.UUID:
		return t, nil
	case string:
		return uuid.Parse(strings.TrimSpace(t))
	case nil:
		return uuid.Nil, errors.New(key + " tidak ditemukan di token")
	}
	return uuid.Nil, errors.New("format " + key + " tidak valid di token")
}

func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, errors.New(key + " tidak ditemukan di token")
	}

	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case []uuid.UUID:
		if len(t) > 0 {
			return t[0], nil
		}
	case []string:
		if len(t) > 0 && strings.TrimSpace(t[0]) != "" {
			return uuid.Parse(strings.TrimSpace(t[0]))
		}
	case []interface{}:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return uuid.Parse(strings.TrimSpace(s))
			}
		}
	case string:
		if strings.TrimSpace(t) != "" {
			return uuid.Parse(strings.TrimSpace(t))
		}
	}
	return uuid.Nil, errors.New(key + " kosong di token")
}
